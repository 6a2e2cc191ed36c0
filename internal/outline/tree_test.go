package outline

import (
	"testing"

	"github.com/dgallion1/syllabus/internal/doctree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTree(t *testing.T) {
	b := doctree.NewBuilder()
	b.Add("Learning Go", 1, 1)
	b.Add("Types", 2, 2)
	b.Add("Primitive Types", 3, 3)
	b.Add("Numbers", 4, 4)
	b.Add("Big Numbers", 5, 5)
	b.Add("Strings", 4, 6)
	b.Add("Syntax", 2, 7)
	tree := b.Tree("fallback")
	require.Equal(t, "Learning Go", tree.Title)

	descs := FromTree(tree)
	require.NoError(t, Validate(descs, -1))

	want := []Descriptor{
		{Hidden: true, Depth: 0, Title: "Learning Go"},
		{Depth: 0, Title: "Types", Slug: "types/index", Line: 2},
		{Depth: 1, Title: "Primitive Types", Slug: "types/primitive_types", Line: 3},
		{Depth: 2, Title: "Numbers", Slug: "types/primitive_types/numbers", Line: 4},
		{Depth: 2, Title: "Big Numbers", Slug: "types/primitive_types/numbers/big_numbers", Line: 5},
		{Depth: 2, Title: "Strings", Slug: "types/primitive_types/strings", Line: 6},
		{Depth: 0, Title: "Syntax", Slug: "syntax/index", Line: 7},
	}
	assert.Equal(t, want, descs)

	o := Build(descs)
	str, ok := o.Lookup("types/primitive_types/strings", 0)
	require.True(t, ok)
	assert.Equal(t, "1.1.3", str.Number())
	assert.Equal(t, "types/primitive_types", str.Parent)
}

func TestFromTree_Empty(t *testing.T) {
	descs := FromTree(&doctree.DocTree{Title: "Empty"})
	require.Len(t, descs, 1)
	assert.True(t, descs[0].Hidden)
	assert.Empty(t, Build(descs).Chapters())
}
