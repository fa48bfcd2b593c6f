package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/blueprint-dev/blueprint/internal/config"
	"github.com/blueprint-dev/blueprint/internal/dev"
	"github.com/blueprint-dev/blueprint/pkg/document"
	"github.com/blueprint-dev/blueprint/pkg/render"
	"github.com/blueprint-dev/blueprint/pkg/server"
)

func previewCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Start the preview server",
		Long: `Start the preview server with hot reload.

The server renders documents on request, watches the documents
directory for changes, and refreshes connected browsers when a
document is saved. Document errors appear as a browser overlay.

Examples:
  blueprint preview
  blueprint preview --port=8080
  blueprint preview --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(port, host)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from blueprint.yaml)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from blueprint.yaml)")

	return cmd
}

func runPreview(port int, host string) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Server.Port = port
	}
	if host != "" {
		cfg.Server.Host = host
	}

	printBanner()
	fmt.Println("  preview")
	fmt.Println()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	srv := server.New(server.Config{
		Addr:         cfg.ServerAddress(),
		DocumentsDir: cfg.DocumentsPath(),
		AssetsDir:    cfg.AssetsPath(),
		HotReload:    cfg.Server.HotReload,
		Render: render.Config{
			Pretty: cfg.Render.Pretty,
			Indent: cfg.Render.Indent,
		},
		PageLang: cfg.Page.Lang,
		PageHead: cfg.Page.Head,
		Logger:   logger,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.Server.HotReload {
		watcher, err := dev.NewWatcher(dev.WatcherConfig{
			Paths:    cfg.WatchPaths(),
			Ignore:   cfg.Watch.Ignore,
			Debounce: time.Duration(cfg.Watch.DebounceMillis) * time.Millisecond,
			Logger:   logger,
		})
		if err != nil {
			return err
		}
		watcher.OnChange(func(change dev.Change) {
			notifyChange(srv, change)
		})
		if err := watcher.Start(ctx); err != nil {
			return err
		}
		defer watcher.Stop()
	}

	info("Serving %s on %s", cfg.DocumentsPath(), cfg.ServerURL())
	fmt.Println()

	return srv.Run(ctx)
}

// notifyChange validates a changed document before broadcasting so broken
// saves surface as an overlay instead of a blank reload.
func notifyChange(srv *server.Server, change dev.Change) {
	ext := strings.ToLower(filepath.Ext(change.Path))
	if ext != ".yaml" && ext != ".yml" {
		return
	}
	if change.Op != dev.OpRemove {
		if doc, err := document.Load(change.Path); err != nil {
			srv.NotifyError(err)
			return
		} else if _, err := doc.Blueprint(); err != nil {
			srv.NotifyError(err)
			return
		}
	}
	srv.NotifyChange(change.Path)
}
