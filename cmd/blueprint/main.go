package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blueprint-dev/blueprint/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔╗ ┬  ┬ ┬┌─┐┌─┐┬─┐┬┌┐┌┌┬┐
  ╠╩╗│  │ │├┤ ├─┘├┬┘││││ │
  ╚═╝┴─┘└─┘└─┘┴  ┴└─┴┘└┘ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "blueprint",
		Short: "Build HTML pages from declarative YAML plans",
		Long: `Blueprint turns declarative page plans into HTML.

Describe pages as nested element plans in YAML, preview them with
hot reload during development, and publish the rendered pages to
disk or S3. Features include:

  • Declarative element trees with options deep-merged over defaults
  • Live preview server with error overlay and hot reload
  • One-command publishing to disk or S3
  • Prometheus metrics and OpenTelemetry tracing built in`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		initCmd(),
		renderCmd(),
		previewCmd(),
		publishCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// printBanner prints the Blueprint ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
