package lambda

import (
	"math"
	"strconv"
)

// The linearizer renders a term back to surface syntax. The
// parenthesization table below is deliberately not minimal (the left
// operand of a left-associative subtraction is wrapped even when it
// would not need to be). Output compatibility wins over elegance here;
// do not tighten it.

func (v Var) String() string { return string(v) }

// An abstraction body is wrapped only when it is an application. The
// plain lambda-calculus convention differs; see PureString.
func (a Abs) String() string {
	body := a.Body.String()
	if _, ok := a.Body.(App); ok {
		body = "(" + body + ")"
	}
	return "\\" + a.Param + "." + body
}

func (a App) String() string {
	fn := a.Fn.String()
	if _, ok := a.Fn.(Abs); ok {
		fn = "(" + fn + ")"
	}
	arg := a.Arg.String()
	switch a.Arg.(type) {
	case App, Abs, BinOp, Neg:
		arg = "(" + arg + ")"
	}
	return fn + " " + arg
}

func (b BinOp) String() string {
	l, r := b.Left.String(), b.Right.String()
	if wrapOperand(b.Kind, b.Left) {
		l = "(" + l + ")"
	}
	if wrapOperand(b.Kind, b.Right) {
		r = "(" + r + ")"
	}
	return l + " " + b.Kind.String() + " " + r
}

// wrapOperand: under + and - every non-atomic operand is wrapped;
// under * and / everything non-atomic is wrapped except a directly
// nested *.
func wrapOperand(parent BinKind, side Term) bool {
	switch side := side.(type) {
	case Var, Num:
		return false
	case BinOp:
		if (parent == Times || parent == Div) && side.Kind == Times {
			return false
		}
		return true
	default:
		return true
	}
}

func (n Neg) String() string {
	s := n.Operand.String()
	switch n.Operand.(type) {
	case Var, Num:
	default:
		s = "(" + s + ")"
	}
	return "-" + s
}

// Whole values print with one fractional digit ("3.0", never "3").
// A negative zero produced by folding prints as "0.0".
func (n Num) String() string {
	v := float64(n)
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if s == "-0" {
			s = "0"
		}
		return s + ".0"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// PureString renders t in the plain lambda-calculus convention, which
// never wraps an abstraction body. Arithmetic nodes, should any leak
// into a pure term, keep their own convention.
func PureString(t Term) string {
	switch t := t.(type) {
	case Var:
		return string(t)
	case Abs:
		return "\\" + t.Param + "." + PureString(t.Body)
	case App:
		fn := PureString(t.Fn)
		if _, ok := t.Fn.(Abs); ok {
			fn = "(" + fn + ")"
		}
		arg := PureString(t.Arg)
		switch t.Arg.(type) {
		case App, Abs:
			arg = "(" + arg + ")"
		}
		return fn + " " + arg
	}
	return t.String()
}

// ResultString is String plus the interpreter's top-level convention:
// an outermost abstraction or application is wrapped in parens.
func ResultString(t Term) string {
	switch t.(type) {
	case Abs, App:
		return "(" + t.String() + ")"
	}
	return t.String()
}
