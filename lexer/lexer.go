package lexer

import (
	"github.com/pontaoski/cflat/errors"
	"github.com/pontaoski/cflat/types"
)

// Lexer wraps a Scanner with exactly one token of lookahead.
type Lexer struct {
	scanner    *Scanner
	peeked     *types.Token
	peekedSpan types.Span
}

func NewLexer(s *Scanner) *Lexer {
	return &Lexer{scanner: s}
}

func (l *Lexer) Peek() (types.Token, types.Span) {
	if l.peeked != nil {
		return *l.peeked, l.peekedSpan
	}

	tok, span := l.scanner.Next()
	l.peeked = &tok
	l.peekedSpan = span

	return tok, span
}

func (l *Lexer) PeekIs(t ...types.Token) bool {
	token, _ := l.Peek()
	for _, want := range t {
		if token == want {
			return true
		}
	}

	return false
}

func (l *Lexer) AtEOF() bool {
	token, _ := l.Peek()
	return token.Kind == types.EOF
}

// LexExpecting consumes the next token if it equals t. Otherwise the token is
// left in place and an ExpectedTokenGotToken is raised.
func (l *Lexer) LexExpecting(t types.Token) types.Span {
	token, span := l.Peek()
	if token == t {
		l.Lex()
		return span
	}

	panic(errors.ExpectedTokenGotToken{
		Expected: t,
		Got:      token,
		Location: span,
	})
}

func (l *Lexer) Lex() (types.Token, types.Span) {
	if l.peeked != nil {
		defer func() { l.peeked = nil }()
		return *l.peeked, l.peekedSpan
	}

	return l.scanner.Next()
}
