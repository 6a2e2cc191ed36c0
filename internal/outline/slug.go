package outline

import "strings"

// indexSlug is appended to a chapter's folder to form the chapter's own slug.
const indexSlug = "index"

// FormatSlug joins a chapter folder and a section title into a URL-safe
// identifier: lower-cased, spaces replaced with underscores. An empty title
// yields the chapter's index slug, e.g. "Type Declarations" becomes
// "type_declarations/index".
func FormatSlug(chapter, title string) string {
	if title == "" {
		title = indexSlug
	}
	return normalize(chapter + "/" + title)
}

func normalize(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", "_"))
}

// Descriptor is one authored outline entry, before numbering.
type Descriptor struct {
	Depth  int
	Title  string
	Slug   string
	Hidden bool
	Line   int // source line when read from a document, 0 otherwise
}

// NewChapter returns the depth-0 descriptor for a chapter folder.
func NewChapter(folder string) Descriptor {
	return Descriptor{Depth: 0, Title: folder, Slug: FormatSlug(folder, "")}
}

// NewSection returns a depth-1 descriptor for a titled section of a chapter.
func NewSection(folder, title string) Descriptor {
	return Descriptor{Depth: 1, Title: title, Slug: FormatSlug(folder, title)}
}

// NewSubsection returns a depth-2 descriptor nested under section. Path lists
// the headings below the section; the last one is the title and all of them
// contribute to the slug, so "Types", "Primitive Types", "Numbers" becomes
// "types/primitive_types/numbers".
func NewSubsection(folder, section string, path ...string) Descriptor {
	var title string
	if len(path) > 0 {
		title = path[len(path)-1]
	}
	rest := append([]string{section}, path...)
	return Descriptor{Depth: 2, Title: title, Slug: FormatSlug(folder, strings.Join(rest, "/"))}
}
