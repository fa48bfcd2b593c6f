package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/blueprint-dev/blueprint/internal/config"
	"github.com/blueprint-dev/blueprint/internal/errors"
	"github.com/blueprint-dev/blueprint/pkg/publish"
	"github.com/blueprint-dev/blueprint/pkg/render"
)

func publishCmd() *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Render and publish all documents",
		Long: `Render every document and publish the pages to the configured
backend.

The disk backend writes pages to a local directory. The s3 backend
uploads them to an S3 bucket using the ambient AWS credentials.

Examples:
  blueprint publish
  blueprint publish --backend=s3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(backend)
		},
	}

	cmd.Flags().StringVarP(&backend, "backend", "b", "", "Publish backend: disk or s3 (default from blueprint.yaml)")

	return cmd
}

func runPublish(backend string) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if backend != "" {
		cfg.Publish.Backend = backend
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, err := newStore(ctx, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("  Publishing to %s...\n", cfg.Publish.Backend)
	fmt.Println()

	publisher := publish.NewPublisher(store, render.New(render.Config{
		Pretty: cfg.Render.Pretty,
		Indent: cfg.Render.Indent,
	}), nil)
	publisher.ExtraHead = cfg.Page.Head
	publisher.DefaultLang = cfg.Page.Lang

	artifacts, err := publisher.PublishDir(ctx, cfg.DocumentsPath())
	for _, artifact := range artifacts {
		success("%s uploaded to %s", artifact.Key, artifact.URL)
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
	success("Published %d documents", len(artifacts))
	return nil
}

// newStore builds the publish store selected by the configuration.
func newStore(ctx context.Context, cfg *config.Config) (publish.Store, error) {
	switch cfg.Publish.Backend {
	case "disk", "":
		dir := cfg.Publish.Disk.Dir
		if dir == "" {
			dir = cfg.OutputPath()
		}
		return publish.NewDiskStore(dir)
	case "s3":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Publish.S3.Region))
		if err != nil {
			return nil, errors.New("E062").
				WithDetail("Loading AWS configuration failed").
				Wrap(err)
		}
		client := s3.NewFromConfig(awsCfg)
		return publish.NewS3Store(client, cfg.Publish.S3.Bucket, cfg.Publish.S3.Region, cfg.Publish.S3.Prefix), nil
	default:
		return nil, errors.New("E062").
			WithDetail("Unknown publish backend " + cfg.Publish.Backend)
	}
}
