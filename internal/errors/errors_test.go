package errors

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "document error",
			code:    "E002",
			wantMsg: "Element is missing a tag",
			wantCat: CategoryDocument,
		},
		{
			name:    "publish error",
			code:    "E061",
			wantMsg: "Artifact upload failed",
			wantCat: CategoryPublish,
		},
		{
			name:    "config error",
			code:    "E122",
			wantMsg: "Invalid port",
			wantCat: CategoryConfig,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "document %q not found", "index.yaml")
	if err.Message != `document "index.yaml" not found` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Category != CategoryCLI {
		t.Errorf("Category = %q, want %q", err.Category, CategoryCLI)
	}
}

func TestBlueprintError_Error(t *testing.T) {
	err := New("E002")
	got := err.Error()
	want := "E002: Element is missing a tag"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	// Without code
	err2 := &BlueprintError{Message: "test error"}
	if err2.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", err2.Error(), "test error")
	}
}

func TestBlueprintError_WithLocation(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "page.yaml")
	content := `title: Home
body:
  tag: div
  children:
    hero:
      text: Welcome
`
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	err := New("E002").WithLocation(tmpFile, 5, 5)

	if err.Location == nil {
		t.Fatal("Location is nil")
	}
	if err.Location.File != tmpFile {
		t.Errorf("Location.File = %q, want %q", err.Location.File, tmpFile)
	}
	if err.Location.Line != 5 {
		t.Errorf("Location.Line = %d, want %d", err.Location.Line, 5)
	}
	if len(err.Context) == 0 {
		t.Error("Context should not be empty")
	}
}

func TestBlueprintError_WithYAMLNode(t *testing.T) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte("body:\n  tag: div\n"), &doc); err != nil {
		t.Fatal(err)
	}
	node := doc.Content[0].Content[1]

	err := New("E003").WithYAMLNode("page.yaml", node)
	if err.Location == nil {
		t.Fatal("Location is nil")
	}
	if err.Location.File != "page.yaml" {
		t.Errorf("Location.File = %q", err.Location.File)
	}
	if err.Location.Line != 2 {
		t.Errorf("Location.Line = %d, want 2", err.Location.Line)
	}
}

func TestBlueprintError_Wrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := New("E061").Wrap(inner)

	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}

	var be *BlueprintError
	if !errors.As(error(err), &be) {
		t.Error("errors.As should match *BlueprintError")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E061") != nil {
		t.Error("FromError(nil) should return nil")
	}

	be := New("E040")
	if got := FromError(be, "E061"); got != be {
		t.Error("FromError should pass through an existing BlueprintError")
	}

	plain := errors.New("boom")
	got := FromError(plain, "E061")
	if got.Code != "E061" {
		t.Errorf("Code = %q, want E061", got.Code)
	}
	if !errors.Is(got, plain) {
		t.Error("wrapped error lost")
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E002").
		WithSuggestion("Add a 'tag' field").
		WithExample("tag: div")

	out := err.Format()
	for _, want := range []string{
		"ERROR E002:",
		"Element is missing a tag",
		"Hint: Add a 'tag' field",
		"tag: div",
		"https://blueprint.dev/docs/errors/E002",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E002")
	err.Location = &Location{File: "page.yaml", Line: 5, Column: 3}

	got := err.FormatCompact()
	want := "page.yaml:5:3: E002: Element is missing a tag"
	if got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestFormatJSON(t *testing.T) {
	err := New("E122").WithDetail("Port 99999 is out of range")
	out := err.FormatJSON()

	for _, want := range []string{
		`"code":"E122"`,
		`"category":"config"`,
		`"detail":"Port 99999 is out of range"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatJSON() missing %q: %s", want, out)
		}
	}
}
