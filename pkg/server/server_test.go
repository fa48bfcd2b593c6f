package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blueprint-dev/blueprint/internal/dev"
)

const aboutDoc = `title: About Us
body:
  tag: main
  children:
    heading:
      tag: h1
      content: About
    intro:
      tag: p
      content: We build pages from plans.
`

func writeDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func newTestServer(t *testing.T, config Config) *Server {
	t.Helper()
	if config.DocumentsDir == "" {
		config.DocumentsDir = t.TempDir()
	}
	return New(config)
}

func get(t *testing.T, s *Server, path string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	res := rec.Result()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	res.Body.Close()
	return res, string(body)
}

func TestServeDocument(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "about.yaml", aboutDoc)
	s := newTestServer(t, Config{DocumentsDir: dir})

	for _, path := range []string{"/about", "/about.html"} {
		res, body := get(t, s, path)
		if res.StatusCode != http.StatusOK {
			t.Fatalf("GET %s: status = %d, want 200", path, res.StatusCode)
		}
		if ct := res.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Errorf("GET %s: Content-Type = %q", path, ct)
		}
		for _, want := range []string{"<!DOCTYPE html>", "<title>About Us</title>", "<h1>About</h1>", "<p>We build pages from plans.</p>"} {
			if !strings.Contains(body, want) {
				t.Errorf("GET %s: body missing %q:\n%s", path, want, body)
			}
		}
	}
}

func TestServeIndexDocument(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "index.yaml", `title: Home
body:
  tag: main
  content: Welcome home.
`)
	s := newTestServer(t, Config{DocumentsDir: dir})

	res, body := get(t, s, "/")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}
	if !strings.Contains(body, "<title>Home</title>") {
		t.Errorf("body missing index title:\n%s", body)
	}
}

func TestListingWithoutIndex(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "about.yaml", aboutDoc)
	writeDoc(t, dir, "contact.yaml", "body:\n  tag: main\n  content: hi\n")
	s := newTestServer(t, Config{DocumentsDir: dir})

	res, body := get(t, s, "/")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}
	for _, want := range []string{`<ul id="documents">`, `href="/about"`, ">About Us<", `href="/contact"`, ">contact<"} {
		if !strings.Contains(body, want) {
			t.Errorf("listing missing %q:\n%s", want, body)
		}
	}
}

func TestDocumentNotFound(t *testing.T) {
	s := newTestServer(t, Config{})

	res, body := get(t, s, "/missing")
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", res.StatusCode)
	}
	if !strings.Contains(body, "E142") {
		t.Errorf("error page missing code E142:\n%s", body)
	}
}

func TestBrokenDocumentServesErrorPage(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "broken.yaml", "body:\n  content: no tag here\n")
	s := newTestServer(t, Config{DocumentsDir: dir})

	res, body := get(t, s, "/broken")
	if res.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", res.StatusCode)
	}
	if !strings.Contains(body, "E002") {
		t.Errorf("error page missing code E002:\n%s", body)
	}
}

func TestDocumentPathRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "about.yaml", aboutDoc)
	s := newTestServer(t, Config{DocumentsDir: dir})

	for _, name := range []string{"", "..", "../about", "a/b", `a\b`, "..about.."} {
		if got := s.documentPath(name); got != "" {
			t.Errorf("documentPath(%q) = %q, want empty", name, got)
		}
	}
	if got := s.documentPath("about"); got == "" {
		t.Error("documentPath(about) = empty, want resolved path")
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, Config{})

	res, body := get(t, s, "/healthz")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}
	if body != "ok" {
		t.Errorf("body = %q, want ok", body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, Config{})

	res, _ := get(t, s, "/metrics")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}
}

func TestHotReloadScriptInjection(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "about.yaml", aboutDoc)

	s := newTestServer(t, Config{DocumentsDir: dir, HotReload: true})
	_, body := get(t, s, "/about")
	if !strings.Contains(body, dev.ReloadPath) {
		t.Error("hot reload enabled but client script not injected")
	}

	plain := newTestServer(t, Config{DocumentsDir: dir})
	_, body = get(t, plain, "/about")
	if strings.Contains(body, dev.ReloadPath) {
		t.Error("hot reload disabled but client script injected")
	}
}

func TestPageConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "about.yaml", aboutDoc)
	s := newTestServer(t, Config{
		DocumentsDir: dir,
		PageLang:     "de",
		PageHead:     []string{`<meta name="generator" content="blueprint">`},
	})

	_, body := get(t, s, "/about")
	if !strings.Contains(body, `<html lang="de">`) {
		t.Errorf("body missing default lang:\n%s", body)
	}
	if !strings.Contains(body, `<meta name="generator" content="blueprint">`) {
		t.Errorf("body missing configured head fragment:\n%s", body)
	}
}
