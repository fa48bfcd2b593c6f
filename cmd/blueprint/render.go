package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/blueprint-dev/blueprint/internal/config"
	"github.com/blueprint-dev/blueprint/pkg/publish"
	"github.com/blueprint-dev/blueprint/pkg/render"
)

func renderCmd() *cobra.Command {
	var (
		output string
		pretty bool
		clean  bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render all documents to the output directory",
		Long: `Render every document in the documents directory to static HTML.

Pages are written to the output directory configured in
blueprint.yaml (or the --output override), one <name>.html file
per document.

Examples:
  blueprint render
  blueprint render --output=dist
  blueprint render --pretty`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(output, cmd.Flags().Changed("pretty"), pretty, clean)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from blueprint.yaml)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the rendered HTML")
	cmd.Flags().BoolVar(&clean, "clean", false, "Remove the output directory before rendering")

	return cmd
}

func runRender(output string, prettySet, pretty, clean bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if output != "" {
		cfg.Output = output
	}
	if prettySet {
		cfg.Render.Pretty = pretty
	}

	fmt.Println("  Rendering documents...")
	fmt.Println()

	if clean {
		info("Cleaning %s...", cfg.OutputPath())
		if err := os.RemoveAll(cfg.OutputPath()); err != nil {
			return err
		}
	}

	store, err := publish.NewDiskStore(cfg.OutputPath())
	if err != nil {
		return err
	}

	publisher := publish.NewPublisher(store, render.New(render.Config{
		Pretty: cfg.Render.Pretty,
		Indent: cfg.Render.Indent,
	}), nil)
	publisher.ExtraHead = cfg.Page.Head
	publisher.DefaultLang = cfg.Page.Lang

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	artifacts, err := publisher.PublishDir(ctx, cfg.DocumentsPath())
	for _, artifact := range artifacts {
		success("%s (%d bytes)", artifact.Key, artifact.Size)
	}
	if err != nil {
		return err
	}

	assets, err := publisher.PublishAssets(ctx, cfg.AssetsPath())
	if err != nil {
		return err
	}
	if len(assets) > 0 {
		info("Copied %d assets", len(assets))
	}

	fmt.Println()
	success("Rendered %d documents to %s", len(artifacts), cfg.OutputPath())
	return nil
}
