package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Curriculum(t *testing.T) {
	assert.NoError(t, Validate(Curriculum(), DefaultMaxDepth))
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		descs    []Descriptor
		maxDepth int
		want     error
	}{
		{
			name:     "duplicate slug",
			descs:    []Descriptor{NewChapter("Types"), NewSection("Types", "Arrays"), NewSection("types", "arrays")},
			maxDepth: 1,
			want:     ErrDuplicateSlug,
		},
		{
			name:     "too deep",
			descs:    []Descriptor{NewChapter("Types"), NewSection("Types", "A"), NewSubsection("Types", "A", "B")},
			maxDepth: 1,
			want:     ErrDepthExceeded,
		},
		{
			name:     "negative depth",
			descs:    []Descriptor{{Depth: -1, Title: "X", Slug: "x"}},
			maxDepth: -1,
			want:     ErrInvalidDepth,
		},
		{
			name:     "empty title",
			descs:    []Descriptor{NewChapter("Types"), NewSection("Types", " ")},
			maxDepth: 1,
			want:     ErrEmptyTitle,
		},
		{
			name:     "empty slug",
			descs:    []Descriptor{{Depth: 0, Title: "Types"}},
			maxDepth: 1,
			want:     ErrEmptySlug,
		},
		{
			name:     "section before chapter",
			descs:    []Descriptor{NewSection("Types", "Arrays"), NewChapter("Types")},
			maxDepth: 1,
			want:     ErrOrphanSection,
		},
		{
			name:     "subsection directly under chapter",
			descs:    []Descriptor{NewChapter("Types"), NewSubsection("Types", "A", "B")},
			maxDepth: -1,
			want:     ErrOrphanSection,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.descs, tt.maxDepth)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_HiddenEntriesExempt(t *testing.T) {
	descs := []Descriptor{
		{Hidden: true, Depth: 0, Title: "Root"},
		{Hidden: true, Depth: 1, Title: "Draft"},
		NewChapter("Types"),
		{Hidden: true, Depth: 0, Title: "Types again", Slug: "types/index"},
	}
	assert.NoError(t, Validate(descs, 1))
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	descs := []Descriptor{
		NewSection("Types", "Arrays"),
		NewChapter("Types"),
		NewChapter("Types"),
	}
	err := Validate(descs, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOrphanSection)
	assert.ErrorIs(t, err, ErrDuplicateSlug)
	assert.Contains(t, err.Error(), `entry 2 ("Types")`)
}

func TestValidate_NamesSourceLine(t *testing.T) {
	descs := []Descriptor{
		{Depth: 0, Title: "Types", Slug: "types/index", Line: 3},
		{Depth: 0, Title: "Types", Slug: "types/index", Line: 9},
	}
	err := Validate(descs, 1)
	require.ErrorIs(t, err, ErrDuplicateSlug)
	assert.Contains(t, err.Error(), `entry 1 ("Types", line 9)`)
}

func TestMustBuild_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustBuild([]Descriptor{NewChapter("A"), NewChapter("A")}, 1)
	})
	assert.NotPanics(t, func() {
		MustBuild(scenario(), 1)
	})
}
