package types

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start int
	End   int
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Start, s.End)
}

func (s Span) Len() int {
	return s.End - s.Start
}

type TokenKind int

const (
	EOF TokenKind = iota
	ILLEGAL

	IDENT
	INT
	FLOAT
	STRING
	CHAR

	OP
	KEYWORD
)

func (t TokenKind) String() string {
	data := map[TokenKind]string{
		EOF:     "Eof",
		ILLEGAL: "Error",
		IDENT:   "Id",
		INT:     "Int",
		FLOAT:   "Float",
		STRING:  "String",
		CHAR:    "Char",
		OP:      "Op",
		KEYWORD: "KeyWord",
	}
	return data[t]
}

type Token struct {
	Kind TokenKind
	Text string
}

func NewToken(kind TokenKind, text string) Token {
	return Token{Kind: kind, Text: text}
}

func Op(text string) Token {
	return Token{Kind: OP, Text: text}
}

func Keyword(text string) Token {
	return Token{Kind: KEYWORD, Text: text}
}

var Eof = Token{Kind: EOF}

func (t Token) String() string {
	switch t.Kind {
	case ILLEGAL:
		return fmt.Sprintf("unknown token: '%s'", t.Text)
	case EOF:
		return "EOF"
	}
	return t.Text
}

// Debug renders the token as its variant, e.g. Op("(") or Eof.
func (t Token) Debug() string {
	if t.Kind == EOF {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}

func (t Token) Is(k ...TokenKind) bool {
	for _, kind := range k {
		if t.Kind == kind {
			return true
		}
	}
	return false
}

var keywords = map[string]struct{}{
	"fn":     {},
	"true":   {},
	"false":  {},
	"return": {},
	"let":    {},
	"and":    {},
	"or":     {},
	"not":    {},
	"if":     {},
	"else":   {},
}

// Lookup returns the keyword token for name, if name is reserved.
func Lookup(name string) (Token, bool) {
	if _, ok := keywords[name]; ok {
		return Keyword(name), true
	}
	return Token{}, false
}
