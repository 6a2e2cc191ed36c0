// Package outline builds the numbered table of contents of a curriculum and
// answers lookup and navigation queries over it.
//
// An Outline is built once from an ordered list of descriptors and never
// changes afterwards; every accessor returns copies, so a single Outline can
// be shared freely.
package outline

import (
	"slices"
	"strings"
)

// Outline is an immutable, numbered and linked list of sections.
type Outline struct {
	sections []Section
	index    map[string]int // slug -> position of its first occurrence
	chapters [][]int        // positions grouped by chapter, hidden entries excluded
}

// Build numbers and links descs, in declaration order. It does not validate
// its input; see Validate and MustBuild.
func Build(descs []Descriptor) *Outline {
	sections := Link(Number(descs))

	o := &Outline{
		sections: sections,
		index:    make(map[string]int, len(sections)),
	}

	for i, s := range sections {
		if _, ok := o.index[s.Slug]; !ok {
			o.index[s.Slug] = i
		}

		if s.Hidden {
			continue
		}
		if s.IsChapter() {
			o.chapters = append(o.chapters, nil)
		}
		// Entries declared before the first chapter belong to no group.
		if len(o.chapters) == 0 {
			continue
		}
		last := len(o.chapters) - 1
		o.chapters[last] = append(o.chapters[last], i)
	}

	return o
}

// MustBuild validates descs against maxDepth and builds them, panicking with
// the validation report if the authored data is inconsistent.
func MustBuild(descs []Descriptor, maxDepth int) *Outline {
	if err := Validate(descs, maxDepth); err != nil {
		panic("outline: invalid curriculum: " + err.Error())
	}
	return Build(descs)
}

// Len returns the number of entries, hidden ones included.
func (o *Outline) Len() int {
	return len(o.sections)
}

// Sections returns every entry in presentation order, hidden ones included.
func (o *Outline) Sections() []Section {
	return slices.Clone(o.sections)
}

// Lookup finds the entry whose slug matches path, ignoring one leading
// slash, and returns the entry offset positions away from it. It reports
// false when no slug matches or the offset leaves the outline.
func (o *Outline) Lookup(path string, offset int) (Section, bool) {
	i, ok := o.index[strings.TrimPrefix(path, "/")]
	if !ok {
		return Section{}, false
	}

	i += offset
	if i < 0 || i >= len(o.sections) {
		return Section{}, false
	}
	return o.sections[i], true
}

// Next returns the entry after path.
func (o *Outline) Next(path string) (Section, bool) {
	return o.Lookup(path, 1)
}

// Previous returns the entry before path.
func (o *Outline) Previous(path string) (Section, bool) {
	return o.Lookup(path, -1)
}

// Chapters groups the visible entries by chapter: each group starts with a
// chapter and holds every following entry up to the next chapter.
func (o *Outline) Chapters() [][]Section {
	out := make([][]Section, 0, len(o.chapters))
	for _, group := range o.chapters {
		g := make([]Section, 0, len(group))
		for _, i := range group {
			g = append(g, o.sections[i])
		}
		out = append(out, g)
	}
	return out
}
