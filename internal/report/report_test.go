package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dgallion1/syllabus/internal/outline"
)

func sample() *outline.Outline {
	return outline.Build([]outline.Descriptor{
		{Hidden: true, Depth: 0, Title: "Course"},
		outline.NewChapter("Types"),
		outline.NewSection("Types", "Primitive Types"),
		outline.NewSubsection("Types", "Primitive Types", "Numbers"),
		outline.NewChapter("Syntax"),
	})
}

func TestTree(t *testing.T) {
	out := Tree("Course", sample().Chapters())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Course", lines[0])
	assert.Contains(t, lines[1], "1.0.0 Types")
	assert.Contains(t, lines[2], "1.1.0 Primitive Types")
	assert.Contains(t, lines[3], "1.1.1 Numbers")
	assert.Contains(t, lines[4], "2.0.0 Syntax")

	// Deeper entries are drawn with more indentation.
	indent := func(s string) int { return strings.Index(s, "1.") }
	assert.Less(t, indent(lines[1]), indent(lines[2]))
	assert.Less(t, indent(lines[2]), indent(lines[3]))
}

func TestLine(t *testing.T) {
	sections := sample().Sections()
	assert.Equal(t, "-        Course [hidden] /", Line(sections[0]))
	assert.Equal(t, "1.1.0    Primitive Types  types/primitive_types", Line(sections[2]))
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"tree", "yaml", "json"} {
		f, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, Format(s), f)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	chapters := sample().Chapters()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatJSON, chapters))
	var fromJSON [][]outline.Section
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, chapters, fromJSON)
	assert.Contains(t, buf.String(), `"parent": "types/primitive_types"`)

	buf.Reset()
	require.NoError(t, Encode(&buf, FormatYAML, chapters[1]))
	assert.Contains(t, buf.String(), "slug: syntax/index")
	var fromYAML []outline.Section
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, chapters[1], fromYAML)

	assert.Error(t, Encode(&buf, FormatTree, chapters))
}
