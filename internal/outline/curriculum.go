package outline

import "sync"

// DefaultMaxDepth is the deepest level used by the built-in curriculum.
const DefaultMaxDepth = 1

// RootTitle is the title of the hidden entry that opens the built-in curriculum.
const RootTitle = "Learning JavaScript"

// Curriculum returns the descriptors of the built-in curriculum in
// presentation order. Each call returns a fresh slice.
func Curriculum() []Descriptor {
	return []Descriptor{
		{Hidden: true, Depth: 0, Title: RootTitle, Slug: ""},

		NewChapter("Environment"),
		NewSection("Environment", "Quick Start"),

		NewChapter("Types"),
		NewSection("Types", "Primitive Types"),
		NewSection("Types", "Reference Types"),
		NewSection("Types", "Library Types"),
		NewSection("Types", "Type Names"),

		NewChapter("Syntax"),
		NewSection("Syntax", "Variables"),
		NewSection("Syntax", "Equality"),

		NewChapter("Collections"),
		NewSection("Collections", "Arrays"),
		NewSection("Collections", "Objects"),
		NewSection("Collections", "Sets and Maps"),
		NewSection("Collections", "Iteration"),

		NewChapter("Functions"),
		NewSection("Functions", "Syntax"),
		NewSection("Functions", "Arguments"),
		NewSection("Functions", "Returning"),
		NewSection("Functions", "Callbacks"),
		NewSection("Functions", "Scope"),
		NewSection("Functions", "Context"),

		NewChapter("Classes"),
		NewSection("Classes", "Properties"),
		NewSection("Classes", "Methods"),
		NewSection("Classes", "Inheritance"),

		NewChapter("Type Declarations"),
		NewSection("Type Declarations", "Constants"),
		NewSection("Type Declarations", "Enums"),
		NewSection("Type Declarations", "Arrays"),
		NewSection("Type Declarations", "Objects"),
		NewSection("Type Declarations", "Interfaces"),
		NewSection("Type Declarations", "Unions"),
		NewSection("Type Declarations", "Generics"),
		NewSection("Type Declarations", "Type Casting"),
		NewSection("Type Declarations", "Type Guards"),
		NewSection("Type Declarations", "Any and Unknown"),

		NewChapter("Async Control Flow"),
		NewSection("Async Control Flow", "Callbacks"),
		NewSection("Async Control Flow", "Event Loop"),
		NewSection("Async Control Flow", "Promises"),
		NewSection("Async Control Flow", "Async and Await"),
		NewSection("Async Control Flow", "Fetch"),

		NewChapter("Exercises"),
		NewSection("Exercises", "A"),
		NewSection("Exercises", "B"),
	}
}

var defaultOutline = sync.OnceValue(func() *Outline {
	return MustBuild(Curriculum(), DefaultMaxDepth)
})

// Default returns the built-in curriculum outline. It is built on first use
// and shared by every caller.
func Default() *Outline {
	return defaultOutline()
}

// Lookup queries the built-in curriculum; see Outline.Lookup.
func Lookup(path string, offset int) (Section, bool) {
	return Default().Lookup(path, offset)
}

// Next returns the entry after path in the built-in curriculum.
func Next(path string) (Section, bool) {
	return Default().Next(path)
}

// Previous returns the entry before path in the built-in curriculum.
func Previous(path string) (Section, bool) {
	return Default().Previous(path)
}

// Chapters groups the built-in curriculum by chapter.
func Chapters() [][]Section {
	return Default().Chapters()
}
