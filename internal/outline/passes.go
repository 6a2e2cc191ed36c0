package outline

// Number assigns major/minor/patch to every visible descriptor in order.
// A chapter bumps major and resets minor and patch, a section bumps minor and
// resets patch, and deeper entries bump patch only. Hidden descriptors are
// copied through without touching the counters.
func Number(descs []Descriptor) []Section {
	out := make([]Section, 0, len(descs))
	var major, minor, patch int

	for _, d := range descs {
		s := Section{
			Depth:  d.Depth,
			Title:  d.Title,
			Slug:   d.Slug,
			Hidden: d.Hidden,
		}
		if d.Hidden {
			out = append(out, s)
			continue
		}

		switch d.Depth {
		case 0:
			major++
			minor, patch = 0, 0
		case 1:
			minor++
			patch = 0
		default:
			patch++
		}

		s.Major, s.Minor, s.Patch = major, minor, patch
		out = append(out, s)
	}

	return out
}

// Link sets Parent on every entry deeper than a section to the slug of the
// most recent depth-1 entry. A chapter clears the current parent. The input
// slice is not modified.
func Link(sections []Section) []Section {
	out := make([]Section, 0, len(sections))
	parent := ""

	for _, s := range sections {
		linked := Section{
			Depth:  s.Depth,
			Title:  s.Title,
			Slug:   s.Slug,
			Hidden: s.Hidden,
			Major:  s.Major,
			Minor:  s.Minor,
			Patch:  s.Patch,
		}

		switch {
		case s.Depth == 0:
			parent = ""
		case s.Depth == 1:
			parent = s.Slug
		default:
			linked.Parent = parent
		}

		out = append(out, linked)
	}

	return out
}
