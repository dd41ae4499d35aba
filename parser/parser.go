package parser

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/pontaoski/cflat/ast"
	"github.com/pontaoski/cflat/errors"
	"github.com/pontaoski/cflat/lexer"
	"github.com/pontaoski/cflat/types"
	"github.com/ztrue/tracerr"
)

var (
	ifKeyword   = types.Keyword("if")
	elseKeyword = types.Keyword("else")
	lbrace      = types.Op("{")
	rbrace      = types.Op("}")
	lparen      = types.Op("(")
	rparen      = types.Op(")")
)

type Parser struct {
	l   *lexer.Lexer
	ast []ast.Expr
}

func NewParser(l *lexer.Lexer) Parser {
	return Parser{l: l}
}

// Parse parses src, writing token and AST traces to standard error when
// requested.
func Parse(src string, tokenDebug, astDebug bool) ([]ast.Expr, error) {
	return ParseTo(os.Stderr, src, tokenDebug, astDebug)
}

// ParseTo is Parse with the traces written to w.
func ParseTo(w io.Writer, src string, tokenDebug, astDebug bool) ([]ast.Expr, error) {
	var trace io.Writer
	if tokenDebug {
		trace = w
	}

	p := NewParser(lexer.NewLexer(lexer.NewScanner(src, trace)))
	err := p.Parse()

	if astDebug {
		if err != nil {
			repr.New(w).Println(tracerr.Unwrap(err))
		} else {
			repr.New(w).Println(p.ast)
		}
	}
	if err != nil {
		return nil, err
	}

	return p.ast, nil
}

func (p *Parser) AST() []ast.Expr {
	return p.ast
}

// Parse reads program units until EOF. Parsing stops at the first error.
func (p *Parser) Parse() (err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if ok {
				p.ast = nil
				err = tracerr.Wrap(rerr)
			} else {
				panic(r)
			}
		}
	}()

	for !p.l.AtEOF() {
		p.ast = append(p.ast, p.parseProgram())
	}

	return nil
}

func (p *Parser) parseProgram() ast.Expr {
	if p.l.PeekIs(ifKeyword) {
		return p.parseIf()
	}

	return p.parseExpression(None)
}

func (p *Parser) parseIf() ast.Expr {
	p.l.LexExpecting(ifKeyword)
	cond := p.parseExpression(None)
	p.l.LexExpecting(lbrace)
	branch := p.parseProgram()
	p.l.LexExpecting(rbrace)

	if !p.l.PeekIs(elseKeyword) {
		return ast.If{
			Condition: cond,
			Body:      branch,
		}
	}

	p.l.LexExpecting(elseKeyword)

	var elseBranch ast.Expr
	if p.l.PeekIs(ifKeyword) {
		elseBranch = p.parseIf()
	} else {
		p.l.LexExpecting(lbrace)
		elseBranch = p.parseProgram()
		p.l.LexExpecting(rbrace)
	}

	return ast.IfElse{
		Condition: cond,
		Then:      branch,
		Else:      elseBranch,
	}
}

func (p *Parser) parseInt(lit string, span types.Span) ast.Expr {
	parsed, err := strconv.ParseInt(strings.ReplaceAll(lit, "_", ""), 10, 32)
	if err != nil {
		panic(errors.MalformedNumber{
			Literal:  lit,
			Location: span,
			Err:      err,
		})
	}

	return ast.AtomExpr{Atom: ast.Int(parsed)}
}

func (p *Parser) parseExpressionLeaf() ast.Expr {
	tok, span := p.l.Lex()

	switch {
	case tok.Kind == types.INT:
		return p.parseInt(tok.Text, span)
	case tok.Kind == types.IDENT:
		return ast.AtomExpr{Atom: ast.Ident(tok.Text)}
	case tok == lparen:
		expr := p.parseExpression(None)
		p.l.LexExpecting(rparen)
		return expr
	case tok == types.Op("-"):
		return ast.Unary{
			Op:      ast.Minus,
			Operand: p.parseExpression(Unary),
		}
	}

	panic(errors.BadToken{
		Got:      tok,
		Location: span,
	})
}

// parseExpression parses operators binding tighter than minBP.
func (p *Parser) parseExpression(minBP Precedence) ast.Expr {
	lhs := p.parseExpressionLeaf()

	for {
		tok, _ := p.l.Peek()
		bp := precedenceOf(tok)
		if tok.Kind != types.OP {
			break
		}
		op, ok := ast.LookupOp(tok.Text)
		if !ok || bp <= minBP {
			break
		}

		p.l.Lex()

		switch bp {
		case Term, Factor, Comparison:
			lhs = ast.Binary{
				Op:  op,
				Lhs: lhs,
				Rhs: p.parseExpression(bp),
			}
		}
	}

	return lhs
}
