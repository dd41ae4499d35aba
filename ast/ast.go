package ast

// Op is an operator the parser builds nodes for.
type Op int

const (
	Minus Op = iota
	Plus
	Mult
	Div
	Grt
	Les
)

var opText = map[string]Op{
	"-": Minus,
	"+": Plus,
	"*": Mult,
	"/": Div,
	">": Grt,
	"<": Les,
}

// LookupOp maps operator text to an Op.
func LookupOp(text string) (Op, bool) {
	op, ok := opText[text]
	return op, ok
}

type Atom interface {
	is_Atom()
}
type Int int32

func (v Int) is_Atom() {}

type Ident string

func (v Ident) is_Atom() {}

type Expr interface {
	String() string
	is_Expr()
}
type AtomExpr struct {
	Atom
}

func (v AtomExpr) is_Expr() {}

type Unary struct {
	Op      Op
	Operand Expr
}

func (v Unary) is_Expr() {}

type Binary struct {
	Op  Op
	Lhs Expr
	Rhs Expr
}

func (v Binary) is_Expr() {}

type If struct {
	Condition Expr
	Body      Expr
}

func (v If) is_Expr() {}

type IfElse struct {
	Condition Expr
	Then      Expr
	Else      Expr
}

func (v IfElse) is_Expr() {}
