// Package document loads review input. Markdown is flattened to plain
// text so the analyzers see prose, not markup; anything else is read
// as-is. An unreadable document is fatal and aborts before the
// pipeline runs.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// Document is one extracted document ready for analysis
type Document struct {
	Path   string
	Text   string
	Length int
}

// Source provides extracted text for a document identifier.
type Source interface {
	Load(id string) (*Document, error)
}

// FileSource loads documents from the local filesystem
type FileSource struct{}

func NewFileSource() *FileSource {
	return &FileSource{}
}

// Load reads the file at path, extracting plain text from markdown.
func (s *FileSource) Load(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	text := string(content)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		text = ExtractMarkdownText(content)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("document %s has no extractable text", path)
	}

	return &Document{
		Path:   path,
		Text:   text,
		Length: len([]rune(text)),
	}, nil
}

// ExtractMarkdownText flattens markdown to plain text, keeping a blank
// line between blocks so paragraph-scoped checks still see paragraph
// boundaries.
func ExtractMarkdownText(source []byte) string {
	md := goldmark.New()
	doc := md.Parser().Parse(gmtext.NewReader(source))

	var blocks []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.Heading, *ast.Paragraph, *ast.ListItem, *ast.Blockquote:
			text := blockText(n, source)
			if text != "" {
				blocks = append(blocks, text)
			}
			if _, isItem := n.(*ast.ListItem); isItem {
				return ast.WalkSkipChildren, nil
			}
			if _, isQuote := n.(*ast.Blockquote); isQuote {
				return ast.WalkSkipChildren, nil
			}
			return ast.WalkContinue, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			// markup and code are not prose
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return strings.Join(blocks, "\n\n")
}

// blockText collects the inline text of one block node.
func blockText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := child.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}
