package feedback

import (
	"strings"
	"unicode/utf8"
)

// Pos is a 1-based line and column. Columns count runes, not bytes.
type Pos struct {
	Line int
	Col  int
}

// File is a chunk of source together with its lines, so that rendering a
// message does not have to split the contents again.
type File struct {
	Filename string
	Contents string
	Lines    []string
}

func NewFile(filename, contents string) *File {
	return &File{
		Filename: filename,
		Contents: contents,
		Lines:    strings.Split(contents, "\n"),
	}
}

// Position converts a byte offset into the file to a line and column.
func (f *File) Position(offset int) Pos {
	if offset > len(f.Contents) {
		offset = len(f.Contents)
	}
	if offset < 0 {
		offset = 0
	}

	before := f.Contents[:offset]
	lineStart := strings.LastIndexByte(before, '\n') + 1

	return Pos{
		Line: strings.Count(before, "\n") + 1,
		Col:  utf8.RuneCountInString(before[lineStart:]) + 1,
	}
}
