package server

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// AssetsPrefix is the URL prefix static files are served under.
const AssetsPrefix = "/assets/"

// assetRelPath returns a sanitized relative path for an asset request.
// It rejects traversal and absolute-path tricks so serving cannot escape
// the assets directory.
func assetRelPath(urlPath string) (string, bool) {
	rel := strings.TrimPrefix(urlPath, AssetsPrefix)
	if rel == "" || rel == urlPath {
		return "", false
	}

	// NUL can appear via %00.
	if strings.IndexByte(rel, 0) != -1 {
		return "", false
	}
	if strings.Contains(rel, "\\") {
		return "", false
	}

	// A leading "/" after prefix stripping is an absolute-path attempt,
	// e.g. "/assets//etc/passwd".
	if strings.HasPrefix(rel, "/") {
		return "", false
	}

	// Reject dot-segments before cleaning so traversal attempts are not
	// cleaned into a different, allowed path.
	for _, seg := range strings.Split(rel, "/") {
		if seg == "." || seg == ".." {
			return "", false
		}
	}

	clean := path.Clean(rel)
	if clean == "." || clean == "" || strings.HasPrefix(clean, "../") {
		return "", false
	}

	osPath := filepath.FromSlash(clean)
	if filepath.IsAbs(osPath) || filepath.VolumeName(osPath) != "" {
		return "", false
	}

	return clean, true
}

// serveAsset serves one file from the configured assets directory.
func (s *Server) serveAsset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	rel, ok := assetRelPath(r.URL.Path)
	if !ok || s.config.AssetsDir == "" {
		http.NotFound(w, r)
		return
	}

	f, err := os.Open(filepath.Join(s.config.AssetsDir, filepath.FromSlash(rel)))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	// Previewed assets change between saves.
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	http.ServeContent(w, r, rel, info.ModTime(), f)
}
