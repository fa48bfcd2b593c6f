package publish

import (
	"context"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/blueprint-dev/blueprint/internal/errors"
	"github.com/blueprint-dev/blueprint/pkg/document"
	"github.com/blueprint-dev/blueprint/pkg/render"
)

// Publisher renders documents and stores the resulting pages.
type Publisher struct {
	store    Store
	renderer *render.Renderer
	logger   *slog.Logger

	// Head fragments appended to every published page, after the
	// document's own head entries.
	ExtraHead []string

	// DefaultLang is used when a document does not set its own lang.
	DefaultLang string
}

// NewPublisher creates a publisher. A nil renderer gets default settings;
// a nil logger falls back to slog.Default().
func NewPublisher(store Store, renderer *render.Renderer, logger *slog.Logger) *Publisher {
	if renderer == nil {
		renderer = render.New(render.Config{})
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		store:    store,
		renderer: renderer,
		logger:   logger,
	}
}

// PublishDocument renders one document and stores it as <name>.html.
func (p *Publisher) PublishDocument(ctx context.Context, doc *document.Document) (*Artifact, error) {
	start := time.Now()

	bp, err := doc.Blueprint()
	if err != nil {
		return nil, err
	}

	elem, err := bp.Produce()
	if err != nil {
		return nil, errors.New("E021").Wrap(err)
	}

	page := doc.Page()
	page.Head = append(page.Head, p.ExtraHead...)
	if page.Lang == "" {
		page.Lang = p.DefaultLang
	}

	html, err := p.renderer.RenderPageToString(page, elem)
	if err != nil {
		return nil, errors.New("E040").Wrap(err)
	}

	key := doc.Name() + ".html"
	artifact, err := p.store.Put(ctx, doc.Name(), key, "text/html; charset=utf-8", strings.NewReader(html))
	if err != nil {
		return nil, errors.New("E061").
			WithDetail("Storing " + key + " failed").
			Wrap(err)
	}

	p.logger.Info("published",
		"document", doc.Name(),
		"key", artifact.Key,
		"size", artifact.Size,
		"duration", time.Since(start),
	)
	return artifact, nil
}

// PublishAssets stores every file under dir as-is, preserving relative
// paths below an assets/ key prefix. A missing directory publishes nothing.
func (p *Publisher) PublishAssets(ctx context.Context, dir string) ([]*Artifact, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	var artifacts []*Artifact
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		key := "assets/" + filepath.ToSlash(rel)

		contentType := mime.TypeByExtension(filepath.Ext(path))
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		artifact, err := p.store.Put(ctx, rel, key, contentType, f)
		if err != nil {
			return errors.New("E061").
				WithDetail("Storing " + key + " failed").
				Wrap(err)
		}
		artifacts = append(artifacts, artifact)
		return nil
	})
	if err != nil {
		return artifacts, err
	}
	return artifacts, nil
}

// PublishDir renders and stores every document in a directory.
func (p *Publisher) PublishDir(ctx context.Context, dir string) ([]*Artifact, error) {
	docs, err := document.LoadDir(dir)
	if err != nil {
		return nil, err
	}

	artifacts := make([]*Artifact, 0, len(docs))
	for _, doc := range docs {
		artifact, err := p.PublishDocument(ctx, doc)
		if err != nil {
			return artifacts, err
		}
		artifacts = append(artifacts, artifact)
	}
	return artifacts, nil
}
