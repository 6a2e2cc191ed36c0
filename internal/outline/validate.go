package outline

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyTitle    = errors.New("empty title")
	ErrEmptySlug     = errors.New("empty slug")
	ErrInvalidDepth  = errors.New("negative depth")
	ErrDepthExceeded = errors.New("depth exceeds limit")
	ErrDuplicateSlug = errors.New("duplicate slug")
	ErrOrphanSection = errors.New("entry has no enclosing chapter or section")
)

// Validate checks authored descriptors for the mistakes Build cannot detect
// on its own. A negative maxDepth disables the depth limit. All problems are
// reported together; each wraps one of the Err* values.
func Validate(descs []Descriptor, maxDepth int) error {
	var errs []error
	fail := func(i int, d Descriptor, err error) {
		if d.Line > 0 {
			errs = append(errs, fmt.Errorf("entry %d (%q, line %d): %w", i, d.Title, d.Line, err))
			return
		}
		errs = append(errs, fmt.Errorf("entry %d (%q): %w", i, d.Title, err))
	}

	seen := make(map[string]int)
	inChapter, inSection := false, false

	for i, d := range descs {
		if strings.TrimSpace(d.Title) == "" {
			fail(i, d, ErrEmptyTitle)
		}
		if d.Depth < 0 {
			fail(i, d, ErrInvalidDepth)
			continue
		}
		if maxDepth >= 0 && d.Depth > maxDepth {
			fail(i, d, fmt.Errorf("%w: %d > %d", ErrDepthExceeded, d.Depth, maxDepth))
		}

		// Hidden entries are outside numbering and may share or omit slugs.
		if d.Hidden {
			continue
		}

		if d.Slug == "" {
			fail(i, d, ErrEmptySlug)
		} else if first, dup := seen[d.Slug]; dup {
			fail(i, d, fmt.Errorf("%w %q, first used by entry %d", ErrDuplicateSlug, d.Slug, first))
		} else {
			seen[d.Slug] = i
		}

		switch {
		case d.Depth == 0:
			inChapter, inSection = true, false
		case d.Depth == 1:
			if !inChapter {
				fail(i, d, ErrOrphanSection)
			}
			inSection = true
		default:
			if !inSection {
				fail(i, d, ErrOrphanSection)
			}
		}
	}

	return errors.Join(errs...)
}
