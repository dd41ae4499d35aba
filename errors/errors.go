package errors

import (
	"fmt"

	"github.com/pontaoski/cflat/types"
)

// BadToken is raised when no expression can start with Got.
type BadToken struct {
	Got      types.Token
	Location types.Span
}

func (e BadToken) Error() string {
	return fmt.Sprintf("%s %s", e.Location, e.Got.Debug())
}

type ExpectedTokenGotToken struct {
	Expected types.Token
	Got      types.Token
	Location types.Span
}

func (e ExpectedTokenGotToken) Error() string {
	return fmt.Sprintf("%s expected '%s' but found '%s'", e.Location, e.Expected.Debug(), e.Got.Debug())
}

type MalformedNumber struct {
	Literal  string
	Location types.Span
	Err      error
}

func (e MalformedNumber) Error() string {
	return fmt.Sprintf("%s malformed number '%s': %s", e.Location, e.Literal, e.Err)
}

func (e MalformedNumber) Unwrap() error {
	return e.Err
}

// Span returns the source location carried by a syntax error.
func Span(err error) (types.Span, bool) {
	switch e := err.(type) {
	case BadToken:
		return e.Location, true
	case ExpectedTokenGotToken:
		return e.Location, true
	case MalformedNumber:
		return e.Location, true
	}
	return types.Span{}, false
}
