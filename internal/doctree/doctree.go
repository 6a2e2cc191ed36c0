package doctree

// DocTree is the heading outline of an authored curriculum document.
type DocTree struct {
	Title    string     // Curriculum title (first top-level heading, <title>, or filename)
	Children []*DocNode // Chapters
}

// DocNode is one heading and the headings nested beneath it.
type DocNode struct {
	Title    string
	Level    int // Heading level as written in the source (1 = h1, or indent depth + 1)
	Line     int // 1-based source line, 0 if unknown
	Children []*DocNode
}

// Count returns the number of nodes in the tree, excluding the root.
func (t *DocTree) Count() int {
	n := 0
	var walk func(nodes []*DocNode)
	walk = func(nodes []*DocNode) {
		for _, c := range nodes {
			n++
			walk(c.Children)
		}
	}
	walk(t.Children)
	return n
}

// Builder assembles a DocTree from headings seen in document order.
// Parsers share it so every source format nests the same way.
type Builder struct {
	root  *DocNode
	stack []*DocNode
}

// NewBuilder returns a Builder with an empty root.
func NewBuilder() *Builder {
	root := &DocNode{}
	return &Builder{root: root, stack: []*DocNode{root}}
}

// Add places a heading under the nearest open heading with a lower level.
func (b *Builder) Add(title string, level, line int) {
	n := &DocNode{Title: title, Level: level, Line: line}

	// Pop until the top of the stack is shallower than the new heading.
	for len(b.stack) > 1 && b.stack[len(b.stack)-1].Level >= level {
		b.stack = b.stack[:len(b.stack)-1]
	}

	parent := b.stack[len(b.stack)-1]
	parent.Children = append(parent.Children, n)
	b.stack = append(b.stack, n)
}

// Tree returns the assembled tree. A lone level-1 heading with children is
// the curriculum title; otherwise fallback is used.
func (b *Builder) Tree(fallback string) *DocTree {
	top := b.root.Children
	if len(top) == 1 && top[0].Level == 1 && len(top[0].Children) > 0 {
		return &DocTree{Title: top[0].Title, Children: top[0].Children}
	}
	return &DocTree{Title: fallback, Children: top}
}
