package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blueprint-dev/blueprint/internal/errors"
)

func initCmd() *cobra.Command {
	var (
		lang  string
		title string
	)

	cmd := &cobra.Command{
		Use:   "init <name>",
		Short: "Create a new Blueprint project",
		Long: `Create a new Blueprint project with the specified name.

The project contains a blueprint.yaml configuration file and a
site/ directory with an example page document.

Examples:
  blueprint init my-site
  blueprint init my-site --title="My Site"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(args[0], lang, title)
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "en", "Default page language")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Title of the example page")

	return cmd
}

func runInit(name, lang, title string) error {
	printBanner()
	fmt.Println("  Creating a new Blueprint project...")
	fmt.Println()

	if !isValidProjectName(name) {
		return errors.Newf(errors.CategoryCLI, "Invalid project name %q", name).
			WithSuggestion("Use lowercase letters, numbers, and hyphens")
	}

	projectDir, err := filepath.Abs(name)
	if err != nil {
		return err
	}
	if _, err := os.Stat(projectDir); !os.IsNotExist(err) {
		return errors.New("E140").
			WithDetail("Directory '" + name + "' already exists").
			WithSuggestion("Choose a different name or remove the existing directory")
	}

	if title == "" {
		title = name
	}

	info("Creating project directory...")
	if err := os.MkdirAll(filepath.Join(projectDir, "site"), 0755); err != nil {
		return err
	}

	info("Writing blueprint.yaml...")
	configYAML := fmt.Sprintf(`name: %s
documents: site
output: dist

server:
  host: localhost
  port: 3000
  hotReload: true

render:
  pretty: true

page:
  lang: %s
`, name, lang)
	if err := os.WriteFile(filepath.Join(projectDir, "blueprint.yaml"), []byte(configYAML), 0644); err != nil {
		return err
	}

	info("Writing site/index.yaml...")
	indexYAML := fmt.Sprintf(`title: %s
body:
  tag: main
  children:
    heading:
      tag: h1
      content: %s
    intro:
      tag: p
      content: Edit site/index.yaml and watch this page reload.
`, title, title)
	if err := os.WriteFile(filepath.Join(projectDir, "site", "index.yaml"), []byte(indexYAML), 0644); err != nil {
		return err
	}

	fmt.Println()
	success("Project created at %s", projectDir)
	fmt.Println()
	info("Next steps:")
	info("  cd %s", name)
	info("  blueprint preview")
	fmt.Println()
	return nil
}

// isValidProjectName reports whether name can be used as a directory and
// project name.
func isValidProjectName(name string) bool {
	if name == "" || strings.HasPrefix(name, "-") {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}
