// Package lambda implements the core of an untyped lambda-calculus
// interpreter: an immutable term representation, free-variable
// analysis, capture-avoiding substitution, beta-reduction under two
// strategies, and a linearizer back to surface syntax.
//
// Terms are plain values. Every operation builds a new tree and leaves
// its inputs intact, so a term stays valid for inspection after any
// transformation.
package lambda

// Term is a parsed expression. The variants are Var, Abs, App and, in
// the arithmetic extension, Num, BinOp and Neg.
type Term interface {
	isTerm()
	String() string
}

// Var is a reference to a binder or a free symbol. Names are opaque
// and compared only for exact equality.
type Var string

// Abs binds Param throughout Body.
type Abs struct {
	Param string
	Body  Term
}

// App applies Fn to Arg.
type App struct {
	Fn  Term
	Arg Term
}

// Num is a numeric literal.
type Num float64

// BinKind selects the operator of a BinOp.
type BinKind uint8

const (
	Plus BinKind = iota
	Minus
	Times
	Div
)

func (k BinKind) String() string {
	switch k {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Times:
		return "*"
	case Div:
		return "/"
	}
	panic("unreachable")
}

// BinOp is a binary arithmetic node. It folds to a Num only once both
// operands are themselves Num; a partially reduced arithmetic subtree
// is a valid, non-terminal term.
type BinOp struct {
	Kind  BinKind
	Left  Term
	Right Term
}

// Neg is unary arithmetic negation. The parser never folds -5 into the
// literal; it stays a Neg node around a Num until evaluation.
type Neg struct {
	Operand Term
}

func (Var) isTerm()   {}
func (Abs) isTerm()   {}
func (App) isTerm()   {}
func (Num) isTerm()   {}
func (BinOp) isTerm() {}
func (Neg) isTerm()   {}
