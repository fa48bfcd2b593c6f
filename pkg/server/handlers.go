package server

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/blueprint-dev/blueprint/el"
	"github.com/blueprint-dev/blueprint/internal/dev"
	blueprinterrors "github.com/blueprint-dev/blueprint/internal/errors"
	"github.com/blueprint-dev/blueprint/pkg/document"
	"github.com/blueprint-dev/blueprint/pkg/middleware"
	"github.com/blueprint-dev/blueprint/pkg/render"
)

// handleIndex serves the index document when one exists, otherwise a
// listing of all documents.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if s.documentPath("index") != "" {
		s.servePage(w, "index")
		return
	}
	s.serveListing(w)
}

// handleDocument serves a single document by name.
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	name = strings.TrimSuffix(name, ".html")
	s.servePage(w, name)
}

// documentPath resolves a document name to a file, or "" if absent.
// Names with path separators are rejected.
func (s *Server) documentPath(name string) string {
	if name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return ""
	}
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(s.config.DocumentsDir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// servePage loads, produces, and renders one document.
func (s *Server) servePage(w http.ResponseWriter, name string) {
	start := time.Now()

	path := s.documentPath(name)
	if path == "" {
		s.serveError(w, http.StatusNotFound, blueprinterrors.New("E142").
			WithDetail("No document named "+name))
		return
	}

	doc, err := document.Load(path)
	if err != nil {
		middleware.RecordRender(name, time.Since(start), err)
		s.serveError(w, http.StatusInternalServerError, err)
		return
	}

	bp, err := doc.Blueprint()
	if err != nil {
		middleware.RecordRender(name, time.Since(start), err)
		s.serveError(w, http.StatusInternalServerError, err)
		return
	}

	elem, err := bp.Produce()
	if err != nil {
		middleware.RecordRender(name, time.Since(start), err)
		s.serveError(w, http.StatusInternalServerError, blueprinterrors.New("E021").Wrap(err))
		return
	}

	page := doc.Page()
	if page.Lang == "" {
		page.Lang = s.config.PageLang
	}
	page.Head = append(page.Head, s.config.PageHead...)
	if s.config.HotReload {
		page.BodyScript = strings.TrimSpace(dev.ClientScript)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.RenderPage(w, page, elem); err != nil {
		s.logger.Error("render failed", "document", name, "error", err)
	}
	middleware.RecordRender(name, time.Since(start), nil)
}

// serveListing renders an index of available documents.
func (s *Server) serveListing(w http.ResponseWriter) {
	docs, err := document.LoadDir(s.config.DocumentsDir)
	if err != nil {
		s.serveError(w, http.StatusInternalServerError, err)
		return
	}

	items := make([]*el.Blueprint, 0, len(docs))
	for _, doc := range docs {
		title := doc.Title
		if title == "" {
			title = doc.Name()
		}
		items = append(items, el.Li(nil,
			el.A(el.Combine(el.Attr("href", "/"+doc.Name()), el.PostText(title))),
		))
	}

	body := el.Body(nil,
		el.H1("Documents"),
		el.Ul(el.ID("documents"), items),
	)

	s.writeBlueprint(w, http.StatusOK, "Documents", body)
}

// serveError renders an HTML error page.
func (s *Server) serveError(w http.ResponseWriter, status int, err error) {
	detail := err.Error()
	var be *blueprinterrors.BlueprintError
	if errors.As(err, &be) {
		middleware.RecordDocumentError(be.Code)
		detail = be.FormatCompact()
		if be.Detail != "" {
			detail += "\n" + be.Detail
		}
		if be.Suggestion != "" {
			detail += "\nHint: " + be.Suggestion
		}
	}

	body := el.Body(el.StyleProp("font-family", "monospace"),
		el.H1("Document Error"),
		el.Pre(detail),
	)

	s.writeBlueprint(w, status, "Error", body)
}

// writeBlueprint renders a body blueprint as a full page.
func (s *Server) writeBlueprint(w http.ResponseWriter, status int, title string, body *el.Blueprint) {
	elem, err := body.Produce()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	page := render.PageConfig{Title: title, Lang: s.config.PageLang}
	if s.config.HotReload {
		page.BodyScript = strings.TrimSpace(dev.ClientScript)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.renderer.RenderPage(w, page, elem); err != nil {
		s.logger.Error("render failed", "error", err)
	}
}
