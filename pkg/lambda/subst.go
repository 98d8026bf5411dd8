package lambda

import (
	"strconv"

	"github.com/samber/lo"
)

// Subst implements t[x := r]: every free occurrence of x in t is
// replaced by r, renaming binders where r would otherwise capture a
// variable. r is substituted syntactically as-is, never evaluated,
// which is what call-by-name requires.
func Subst(t Term, x string, r Term) Term {
	switch t := t.(type) {
	case Var:
		if string(t) == x {
			return r
		}
		return t
	case Abs:
		if t.Param == x {
			// x is shadowed below this binder.
			return t
		}
		fv := FreeVars(r)
		if _, capture := fv[t.Param]; capture {
			used := lo.Assign(fv, FreeVars(t.Body))
			used[x] = struct{}{}
			fresh := freshName(used)
			body := Subst(t.Body, t.Param, Var(fresh))
			return Abs{fresh, Subst(body, x, r)}
		}
		return Abs{t.Param, Subst(t.Body, x, r)}
	case App:
		return App{Subst(t.Fn, x, r), Subst(t.Arg, x, r)}
	case Num:
		return t
	case BinOp:
		return BinOp{t.Kind, Subst(t.Left, x, r), Subst(t.Right, x, r)}
	case Neg:
		return Neg{Subst(t.Operand, x, r)}
	}
	panic("unreachable")
}

// freshName scans Var1, Var2, ... and returns the first name absent
// from used. The counter restarts on every call, so the result depends
// only on the used set, never on evaluation history.
func freshName(used map[string]struct{}) string {
	for i := 1; ; i++ {
		cand := "Var" + strconv.Itoa(i)
		if _, ok := used[cand]; !ok {
			return cand
		}
	}
}
