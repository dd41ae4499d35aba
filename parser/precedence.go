package parser

import "github.com/pontaoski/cflat/types"

// Precedence is the binding power of a token, lowest first.
type Precedence int

const (
	None Precedence = iota
	Primary
	Term       // + -
	Factor     // * /
	Comparison // < > <= >= == !=
	Assignment // =
	Unary      // ! -
)

func precedenceOf(t types.Token) Precedence {
	switch t.Kind {
	case types.OP:
		switch t.Text {
		case "+", "-":
			return Term
		case "*", "/":
			return Factor
		case ">", "<", ">=", "<=", "==", "!=":
			return Comparison
		case "=":
			return Assignment
		}
	case types.KEYWORD:
		if t.Text == "true" || t.Text == "false" {
			return Primary
		}
	}

	return None
}
