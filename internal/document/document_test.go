package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleMarkdown = `# Title

First paragraph with a **bold** claim.

` + "```go\nfunc secret() {}\n```" + `

- item one
- item two

> A quoted remark.

Last paragraph.
`

func TestExtractMarkdownText(t *testing.T) {
	text := ExtractMarkdownText([]byte(sampleMarkdown))

	for _, want := range []string{
		"Title",
		"First paragraph with a bold claim.",
		"item one",
		"item two",
		"A quoted remark.",
		"Last paragraph.",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("extracted text missing %q:\n%s", want, text)
		}
	}

	if strings.Contains(text, "secret") {
		t.Error("code blocks must not leak into prose")
	}
	if strings.Contains(text, "**") || strings.Contains(text, "#") {
		t.Errorf("markup should be stripped:\n%s", text)
	}

	// blocks stay separated so paragraph checks see boundaries
	if !strings.Contains(text, "Title\n\nFirst paragraph") {
		t.Errorf("blocks should be joined with blank lines:\n%s", text)
	}
}

func TestFileSource_LoadMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte(sampleMarkdown), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := NewFileSource().Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Path != path {
		t.Errorf("Path = %q", doc.Path)
	}
	if strings.Contains(doc.Text, "secret") {
		t.Error("markdown extraction should apply to .md files")
	}
	if doc.Length != len([]rune(doc.Text)) {
		t.Errorf("Length = %d, want rune count %d", doc.Length, len([]rune(doc.Text)))
	}
}

func TestFileSource_LoadPlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	content := "Plain text with `backticks` kept as-is."
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := NewFileSource().Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Text != content {
		t.Errorf("Text = %q, want raw content", doc.Text)
	}
}

func TestFileSource_Errors(t *testing.T) {
	if _, err := NewFileSource().Load(filepath.Join(t.TempDir(), "missing.md")); err == nil {
		t.Error("missing file should be an error")
	}

	empty := filepath.Join(t.TempDir(), "empty.md")
	if err := os.WriteFile(empty, []byte("\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileSource().Load(empty); err == nil {
		t.Error("document with no extractable text should be an error")
	}
}
