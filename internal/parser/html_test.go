package parser

import (
	"strings"
	"testing"
)

func TestHTMLParser_Headings(t *testing.T) {
	input := `<!doctype html>
<html>
<head><title>Learning JavaScript</title><style>h2 { color: red }</style></head>
<body>
  <nav><h2>Menu</h2></nav>
  <h2>Async   Control <em>Flow</em></h2>
  <p>Callbacks and promises.</p>
  <h3>Event Loop</h3>
  <h3>Fetch</h3>
  <h2>Exercises</h2>
</body>
</html>`

	p := &HTMLParser{}
	tree, err := p.Parse(strings.NewReader(input), "course.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tree.Title != "Learning JavaScript" {
		t.Errorf("expected title from <title>, got %q", tree.Title)
	}
	if len(tree.Children) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(tree.Children))
	}

	async := tree.Children[0]
	if async.Title != "Async Control Flow" {
		t.Errorf("expected collapsed heading text, got %q", async.Title)
	}
	if len(async.Children) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(async.Children))
	}
	if async.Children[1].Title != "Fetch" {
		t.Errorf("expected %q, got %q", "Fetch", async.Children[1].Title)
	}
}

func TestHTMLParser_FallbackTitle(t *testing.T) {
	p := &HTMLParser{}
	tree, err := p.Parse(strings.NewReader("<h2>Types</h2>"), "outline.htm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Title != "outline" {
		t.Errorf("expected title %q, got %q", "outline", tree.Title)
	}
}
