package outline

import "fmt"

// Section is a numbered, linked outline entry. Numbers follow semver naming:
// a chapter is major.0.0, its sections major.minor.0, and anything deeper
// bumps patch.
type Section struct {
	Depth  int    `json:"depth" yaml:"depth"`
	Title  string `json:"title" yaml:"title"`
	Slug   string `json:"slug" yaml:"slug"`
	Hidden bool   `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Major  int    `json:"major" yaml:"major"`
	Minor  int    `json:"minor" yaml:"minor"`
	Patch  int    `json:"patch" yaml:"patch"`

	// Parent is the slug of the enclosing depth-1 section. Only set on
	// entries of depth 2 and deeper.
	Parent string `json:"parent,omitempty" yaml:"parent,omitempty"`
}

// Number returns the section number as "major.minor.patch". Hidden entries
// are never numbered and return an empty string.
func (s Section) Number() string {
	if s.Hidden {
		return ""
	}
	return fmt.Sprintf("%d.%d.%d", s.Major, s.Minor, s.Patch)
}

// IsChapter reports whether s starts a chapter.
func (s Section) IsChapter() bool {
	return s.Depth == 0
}
