package lambda

// Strategy selects how Step searches for the next redex.
type Strategy uint8

const (
	// NormalOrder reduces the leftmost-outermost redex wherever it
	// sits, including inside abstraction bodies and in argument
	// position, so evaluation reaches full normal form.
	NormalOrder Strategy = iota

	// CallByName substitutes arguments unevaluated and never reduces
	// under a binder. An application whose function part has no redex
	// and is not itself an abstraction stops the search in that
	// branch; the argument is left alone.
	CallByName
)

func (s Strategy) String() string {
	switch s {
	case NormalOrder:
		return "normal"
	case CallByName:
		return "lazy"
	}
	panic("unreachable")
}

// Step performs at most one beta-reduction and reports whether one
// occurred. A redex App(Abs(x, body), arg) rewrites to body[x := arg].
// Arithmetic operands are searched left-to-right for redexes nested
// inside them, but folding itself is left to Eval.
func Step(t Term, s Strategy) (Term, bool) {
	if app, ok := t.(App); ok {
		if abs, ok := app.Fn.(Abs); ok {
			return Subst(abs.Body, abs.Param, app.Arg), true
		}
	}
	switch t := t.(type) {
	case App:
		if fn, ok := Step(t.Fn, s); ok {
			return App{fn, t.Arg}, true
		}
		if s == NormalOrder {
			if arg, ok := Step(t.Arg, s); ok {
				return App{t.Fn, arg}, true
			}
		}
	case Abs:
		if s == NormalOrder {
			if body, ok := Step(t.Body, s); ok {
				return Abs{t.Param, body}, true
			}
		}
	case BinOp:
		if l, ok := Step(t.Left, s); ok {
			return BinOp{t.Kind, l, t.Right}, true
		}
		if r, ok := Step(t.Right, s); ok {
			return BinOp{t.Kind, t.Left, r}, true
		}
	case Neg:
		if o, ok := Step(t.Operand, s); ok {
			return Neg{o}, true
		}
	}
	return t, false
}
