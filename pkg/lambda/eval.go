package lambda

import (
	"errors"
	"fmt"
)

// ErrOutOfFuel is returned by EvalSteps when the step budget runs out
// before the term reaches normal form.
var ErrOutOfFuel = errors.New("no normal form within step budget")

// TraceFunc observes each beta-reduction performed by EvalSteps. step
// counts from 1 and t is the term after the reduction.
type TraceFunc func(step int, t Term)

// Eval reduces t to normal form under s. Beta-steps run to exhaustion,
// then a full arithmetic-fold pass collapses numeric operators; the
// two alternate until neither changes the term. A term with no normal
// form (an unguarded self-application, say) makes Eval loop forever;
// callers that need a bound use EvalSteps.
func Eval(t Term, s Strategy) Term {
	t, _ = EvalSteps(t, s, 0, nil)
	return t
}

// EvalSteps is Eval with an explicit budget. maxSteps > 0 bounds the
// number of beta-reductions; when the budget is spent and the term is
// still reducible, the partially reduced term is returned alongside
// ErrOutOfFuel. trace, when non-nil, is invoked after every beta-step.
func EvalSteps(t Term, s Strategy, maxSteps int, trace TraceFunc) (Term, error) {
	steps := 0
	for {
		u, reduced := Step(t, s)
		if reduced {
			if maxSteps > 0 && steps == maxSteps {
				return t, fmt.Errorf("%w (%d steps)", ErrOutOfFuel, maxSteps)
			}
			steps++
			if trace != nil {
				trace(steps, u)
			}
			t = u
			continue
		}
		u, folded := fold(t)
		if !folded {
			return t, nil
		}
		t = u
	}
}

// fold collapses every arithmetic node whose operands have already
// reduced to numbers, in one bottom-up pass. Only arithmetic spines
// are walked; application and abstraction subtrees belong to Step.
// Division by zero follows IEEE semantics and yields Inf or NaN.
func fold(t Term) (Term, bool) {
	switch t := t.(type) {
	case BinOp:
		l, lc := fold(t.Left)
		r, rc := fold(t.Right)
		if ln, ok := l.(Num); ok {
			if rn, ok := r.(Num); ok {
				return Num(t.Kind.apply(float64(ln), float64(rn))), true
			}
		}
		if lc || rc {
			return BinOp{t.Kind, l, r}, true
		}
	case Neg:
		o, c := fold(t.Operand)
		if n, ok := o.(Num); ok {
			return Num(-float64(n)), true
		}
		if c {
			return Neg{o}, true
		}
	}
	return t, false
}

func (k BinKind) apply(a, b float64) float64 {
	switch k {
	case Plus:
		return a + b
	case Minus:
		return a - b
	case Times:
		return a * b
	case Div:
		return a / b
	}
	panic("unreachable")
}

// ParseStrategy maps the CLI and config spelling of a strategy to its
// value.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "normal":
		return NormalOrder, nil
	case "lazy":
		return CallByName, nil
	}
	return 0, fmt.Errorf("unknown strategy %q", s)
}
