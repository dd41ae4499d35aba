package ast

import (
	"fmt"
	"strings"
)

func (o Op) String() string {
	switch o {
	case Minus:
		return "-"
	case Plus:
		return "+"
	case Mult:
		return "*"
	case Div:
		return "/"
	case Grt:
		return ">"
	case Les:
		return "<"
	}

	panic("unhandled")
}

func atomToString(a Atom) string {
	switch v := a.(type) {
	case Int:
		return fmt.Sprintf("%d", int32(v))
	case Ident:
		return string(v)
	}

	panic("unhandled")
}

func (v AtomExpr) String() string {
	return atomToString(v.Atom)
}

func (v Unary) String() string {
	return fmt.Sprintf("(%s %s)", v.Op, v.Operand)
}

func (v Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", v.Op, v.Lhs, v.Rhs)
}

func (v If) String() string {
	return fmt.Sprintf("(if (%s) (%s))", v.Condition, v.Body)
}

func (v IfElse) String() string {
	return fmt.Sprintf("(if (%s) then (%s) else (%s))", v.Condition, v.Then, v.Else)
}

// Join renders a program one top level expression per line.
func Join(exprs []Expr) string {
	lines := make([]string, 0, len(exprs))
	for _, e := range exprs {
		lines = append(lines, e.String())
	}
	return strings.Join(lines, "\n")
}
