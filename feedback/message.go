package feedback

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/pontaoski/cflat/errors"
	"github.com/pontaoski/cflat/types"
	"github.com/ztrue/tracerr"
)

const SyntaxError = "syntax error"

// Error is a rendered-on-demand diagnostic pointing at a span of a File.
type Error struct {
	Classification string
	File           *File
	Span           types.Span
	Description    string
}

// FromError builds a diagnostic for one of the parser's syntax errors. It
// reports false for anything else.
func FromError(file *File, err error) (Error, bool) {
	err = tracerr.Unwrap(err)

	span, ok := errors.Span(err)
	if !ok {
		return Error{}, false
	}

	return Error{
		Classification: SyntaxError,
		File:           file,
		Span:           span,
		Description:    describe(err),
	}, true
}

func describe(err error) string {
	switch e := err.(type) {
	case errors.BadToken:
		if e.Got.Kind == types.ILLEGAL {
			return fmt.Sprintf("unknown character '%s'", e.Got.Text)
		}
		return fmt.Sprintf("expected an expression but found %s", found(e.Got))
	case errors.ExpectedTokenGotToken:
		return fmt.Sprintf("expected '%s' but found %s", e.Expected.Text, found(e.Got))
	case errors.MalformedNumber:
		return fmt.Sprintf("'%s' is not a valid integer", e.Literal)
	}
	return err.Error()
}

func found(t types.Token) string {
	if t.Kind == types.EOF {
		return "end of input"
	}
	return fmt.Sprintf("'%s'", t.Text)
}

// Make renders the message:
//
//	error: syntax error
//	 --> <filename>:<line>:<column>
//	  |
//	1 | <offending line>
//	  |     ^^^ <description>
func (e Error) Make(withColor bool) string {
	color.NoColor = !withColor

	redBold := color.New(color.FgRed, color.Bold).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	blue := color.New(color.FgBlue).SprintFunc()

	start := e.File.Position(e.Span.Start)
	placeValues := len(fmt.Sprintf("%d", start.Line))
	margin := strings.Repeat(" ", placeValues)

	srcLine := ""
	if start.Line-1 < len(e.File.Lines) {
		srcLine = e.File.Lines[start.Line-1]
	}

	prefix, focus, suffix := highlight(srcLine, start.Col, e.width())

	// underlines are at least one character wide, so EOF gets a caret too
	underline := strings.Repeat("^", max(utf8.RuneCountInString(focus), 1))

	lines := []string{
		redBold(fmt.Sprintf("error: %s", e.Classification)),
		fmt.Sprintf("%s%s %s:%d:%d", margin, blue("-->"), e.File.Filename, start.Line, start.Col),
		blue(fmt.Sprintf("%s |", margin)),
		fmt.Sprintf("%s %s %s%s%s", blue(fmt.Sprintf("%d", start.Line)), blue("|"), prefix, red(focus), suffix),
		fmt.Sprintf("%s %s %s%s %s", margin, blue("|"), strings.Repeat(" ", start.Col-1), red(underline), red(e.Description)),
	}

	return strings.Join(lines, "\n")
}

func (e Error) width() int {
	end := e.Span.End
	if end > len(e.File.Contents) {
		end = len(e.File.Contents)
	}
	if end <= e.Span.Start {
		return 0
	}
	return utf8.RuneCountInString(e.File.Contents[e.Span.Start:end])
}

// highlight splits line around the width runes starting at column col.
func highlight(line string, col, width int) (prefix, focus, suffix string) {
	runes := []rune(line)
	from := min(col-1, len(runes))
	to := min(from+width, len(runes))

	return string(runes[:from]), string(runes[from:to]), string(runes[to:])
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
