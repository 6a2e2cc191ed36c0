package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/syllabus/internal/doctree"
)

// indentWidth is the number of spaces per nesting level in a text outline.
const indentWidth = 2

// TextParser reads an indented plain-text outline: one heading per line,
// nested by two spaces (or one tab) per level. A line that is "#" or starts
// with "# " is a comment; "#1 Basics" is a heading.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	b := doctree.NewBuilder()
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.ReplaceAll(scanner.Text(), "\t", strings.Repeat(" ", indentWidth))
		title := strings.TrimSpace(line)
		if title == "" || isComment(title) {
			continue
		}

		indent := len(line) - len(strings.TrimLeft(line, " "))
		if indent%indentWidth != 0 {
			return nil, fmt.Errorf("%s:%d: indentation must be a multiple of %d spaces", filename, lineNo, indentWidth)
		}
		b.Add(title, indent/indentWidth+1, lineNo)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return b.Tree(baseTitle(filename)), nil
}

func isComment(line string) bool {
	return line == "#" || strings.HasPrefix(line, "# ")
}
