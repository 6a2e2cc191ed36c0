package outline

import "github.com/dgallion1/syllabus/internal/doctree"

// FromTree flattens a parsed heading tree into descriptors. The tree title
// becomes the hidden root, top-level headings become chapters and their
// children sections. Everything below a section becomes a subsection whose
// slug carries its full heading path.
func FromTree(tree *doctree.DocTree) []Descriptor {
	descs := []Descriptor{{Hidden: true, Depth: 0, Title: tree.Title}}

	for _, ch := range tree.Children {
		descs = append(descs, atLine(NewChapter(ch.Title), ch.Line))
		for _, sec := range ch.Children {
			descs = append(descs, atLine(NewSection(ch.Title, sec.Title), sec.Line))
			descs = walkSubsections(sec.Children, ch.Title, sec.Title, nil, descs)
		}
	}

	return descs
}

// walkSubsections appends nodes depth-first, carrying the heading path
// beneath the section.
func walkSubsections(nodes []*doctree.DocNode, chapter, section string, path []string, descs []Descriptor) []Descriptor {
	for _, n := range nodes {
		p := make([]string, len(path), len(path)+1)
		copy(p, path)
		p = append(p, n.Title)

		descs = append(descs, atLine(NewSubsection(chapter, section, p...), n.Line))
		descs = walkSubsections(n.Children, chapter, section, p, descs)
	}
	return descs
}

func atLine(d Descriptor, line int) Descriptor {
	d.Line = line
	return d
}
