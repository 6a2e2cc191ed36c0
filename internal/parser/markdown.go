package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/dgallion1/syllabus/internal/doctree"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser reads an outline from Markdown headings using goldmark.
// Body text between headings is ignored.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	b := doctree.NewBuilder()
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		title := strings.TrimSpace(string(h.Text(src)))
		if title == "" {
			continue
		}
		b.Add(title, h.Level, headingLine(h, src))
	}

	return b.Tree(baseTitle(filename)), nil
}

// headingLine returns the 1-based line a heading's text starts on.
func headingLine(h *ast.Heading, src []byte) int {
	lines := h.Lines()
	if lines.Len() == 0 {
		return 0
	}
	start := lines.At(0).Start
	return bytes.Count(src[:start], []byte("\n")) + 1
}
