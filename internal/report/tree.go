// Package report renders outlines for the command line.
package report

import (
	"fmt"

	"github.com/disiqueira/gotree/v3"

	"github.com/dgallion1/syllabus/internal/outline"
)

// Tree draws the chapters grouping under title. Subsections hang below the
// section named by their Parent.
func Tree(title string, chapters [][]outline.Section) string {
	root := gotree.New(title)

	for _, group := range chapters {
		var chapter gotree.Tree
		sections := make(map[string]gotree.Tree)

		for _, s := range group {
			switch {
			case s.IsChapter():
				chapter = root.Add(Label(s))
			case s.Depth == 1:
				sections[s.Slug] = chapter.Add(Label(s))
			default:
				if parent, ok := sections[s.Parent]; ok {
					parent.Add(Label(s))
				} else {
					chapter.Add(Label(s))
				}
			}
		}
	}

	return root.Print()
}

// Label is the one-line form of a section used in trees.
func Label(s outline.Section) string {
	if s.Hidden {
		return s.Title
	}
	return fmt.Sprintf("%s %s", s.Number(), s.Title)
}

// Line is the one-line form of a section used in listings.
func Line(s outline.Section) string {
	slug := s.Slug
	if slug == "" {
		slug = "/"
	}
	if s.Hidden {
		return fmt.Sprintf("%-8s %s [hidden] %s", "-", s.Title, slug)
	}
	return fmt.Sprintf("%-8s %s  %s", s.Number(), s.Title, slug)
}
