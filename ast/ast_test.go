package ast

import "testing"

func TestString(t *testing.T) {
	x := AtomExpr{Ident("x")}
	y := AtomExpr{Ident("y")}

	cases := []struct {
		expr     Expr
		expected string
	}{
		{AtomExpr{Int(-7)}, "-7"},
		{x, "x"},
		{Unary{Minus, AtomExpr{Int(1)}}, "(- 1)"},
		{Binary{Div, x, Binary{Mult, y, AtomExpr{Int(2)}}}, "(/ x (* y 2))"},
		{If{Binary{Grt, x, y}, x}, "(if ((> x y)) (x))"},
		{IfElse{Binary{Les, x, y}, Binary{Plus, y, y}, y}, "(if ((< x y)) then ((+ y y)) else (y))"},
	}

	for _, c := range cases {
		if got := c.expr.String(); got != c.expected {
			t.Errorf("got %s, expected %s", got, c.expected)
		}
	}
}

func TestLookupOp(t *testing.T) {
	for _, text := range []string{"-", "+", "*", "/", ">", "<"} {
		op, ok := LookupOp(text)
		if !ok {
			t.Fatalf("%s is not an operator", text)
		}
		if op.String() != text {
			t.Errorf("got %s, expected %s", op, text)
		}
	}

	for _, text := range []string{">=", "<=", "==", "!=", "=", "!", "->"} {
		if _, ok := LookupOp(text); ok {
			t.Errorf("%s should not map to an operator", text)
		}
	}
}

func TestJoin(t *testing.T) {
	got := Join([]Expr{AtomExpr{Int(1)}, AtomExpr{Ident("a")}})
	if got != "1\na" {
		t.Fatalf("got %q", got)
	}
}
