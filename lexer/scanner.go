package lexer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pontaoski/cflat/types"
)

// Scanner turns source text into tokens, one per call to Next. Once the input
// is exhausted every call returns EOF.
type Scanner struct {
	reader  *bufio.Reader
	span    types.Span
	current rune
	trace   io.Writer
}

// NewScanner creates a scanner over src. When trace is non-nil every token
// produced is also written to it.
func NewScanner(src string, trace io.Writer) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(strings.NewReader(src)),
		trace:  trace,
	}
}

// operators that have a two character form, keyed by their first character.
var pairs = map[rune]rune{
	'-': '>',
	'=': '=',
	'>': '=',
	'<': '=',
	'!': '=',
}

const singles = "!><+-*/=:;,()[]{}λ"

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func numberChar(r rune) bool {
	return isDigit(r) || r == '_' || r == '.'
}

func identChar(r rune) bool {
	return isLetter(r) || isDigit(r) || r == '_'
}

func (s *Scanner) next() (rune, bool) {
	r, size, err := s.reader.ReadRune()
	if err != nil {
		if err == io.EOF {
			return 0, false
		}
		panic(err)
	}

	s.current = r
	s.span.End += size
	return r, true
}

func (s *Scanner) backup() {
	if err := s.reader.UnreadRune(); err != nil {
		panic(err)
	}
}

func (s *Scanner) peek() (rune, bool) {
	r, _, err := s.reader.ReadRune()
	if err != nil {
		if err == io.EOF {
			return 0, false
		}
		panic(err)
	}

	s.backup()
	return r, true
}

func (s *Scanner) nextIf(pred func(rune) bool) (rune, bool) {
	r, ok := s.peek()
	if !ok || !pred(r) {
		return 0, false
	}
	return s.next()
}

func (s *Scanner) matched(check rune) bool {
	r, ok := s.peek()
	return ok && r == check
}

func (s *Scanner) resetSpan() {
	s.span.Start = s.span.End
}

func (s *Scanner) take() types.Span {
	span := s.span
	s.resetSpan()
	return span
}

func (s *Scanner) number() (types.Token, types.Span) {
	var lit strings.Builder
	lit.WriteRune(s.current)
	for {
		r, ok := s.nextIf(numberChar)
		if !ok {
			break
		}
		lit.WriteRune(r)
	}

	text := lit.String()
	if strings.ContainsRune(text, '.') {
		return types.NewToken(types.FLOAT, text), s.take()
	}
	return types.NewToken(types.INT, text), s.take()
}

func (s *Scanner) ident() (types.Token, types.Span) {
	var lit strings.Builder
	lit.WriteRune(s.current)
	for {
		r, ok := s.nextIf(identChar)
		if !ok {
			break
		}
		lit.WriteRune(r)
	}

	text := lit.String()
	if kw, ok := types.Lookup(text); ok {
		return kw, s.take()
	}
	return types.NewToken(types.IDENT, text), s.take()
}

func (s *Scanner) operator(r rune) (types.Token, types.Span, bool) {
	if second, ok := pairs[r]; ok && s.matched(second) {
		s.next()
		return types.Op(string([]rune{r, second})), s.take(), true
	}
	if strings.ContainsRune(singles, r) {
		return types.Op(string(r)), s.take(), true
	}
	return types.Token{}, types.Span{}, false
}

// Next returns the next token and the span of source it was read from.
func (s *Scanner) Next() (tok types.Token, span types.Span) {
	defer func() {
		if s.trace != nil {
			fmt.Fprintf(s.trace, "%s %s\n", span, tok.Debug())
		}
	}()

	for {
		r, ok := s.next()
		if !ok {
			s.resetSpan()
			return types.Eof, s.span
		}

		switch {
		case isDigit(r):
			return s.number()
		case isLetter(r):
			return s.ident()
		case r == ' ' || r == '\n':
			s.resetSpan()
			continue
		}

		if tok, span, ok := s.operator(r); ok {
			return tok, span
		}

		return types.NewToken(types.ILLEGAL, string(r)), s.take()
	}
}
