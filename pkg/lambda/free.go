package lambda

import (
	"github.com/samber/lo"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// FreeVars returns the set of variable names occurring free in t.
func FreeVars(t Term) map[string]struct{} {
	switch t := t.(type) {
	case Var:
		return map[string]struct{}{string(t): {}}
	case Abs:
		fv := FreeVars(t.Body)
		delete(fv, t.Param)
		return fv
	case App:
		return lo.Assign(FreeVars(t.Fn), FreeVars(t.Arg))
	case Num:
		return map[string]struct{}{}
	case BinOp:
		return lo.Assign(FreeVars(t.Left), FreeVars(t.Right))
	case Neg:
		return FreeVars(t.Operand)
	}
	panic("unreachable")
}

// FreeVarNames returns the free variables of t sorted by name.
func FreeVarNames(t Term) []string {
	names := maps.Keys(FreeVars(t))
	slices.Sort(names)
	return names
}
