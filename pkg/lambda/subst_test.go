package lambda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstBasics(t *testing.T) {
	assert.Equal(t, Var("y"), Subst(Var("x"), "x", Var("y")))
	assert.Equal(t, Var("z"), Subst(Var("z"), "x", Var("y")))
	assert.Equal(t, Num(1), Subst(Num(1), "x", Var("y")))
}

func TestSubstShadowedBinder(t *testing.T) {
	term := Abs{"x", Var("x")}
	assert.Equal(t, term, Subst(term, "x", Num(1)))
}

func TestSubstRenamesOnCapture(t *testing.T) {
	// (\y.x y)[x := y] must rename the binder, not capture the free y.
	term := Abs{"y", App{Var("x"), Var("y")}}
	got := Subst(term, "x", Var("y"))
	assert.Equal(t, Abs{"Var1", App{Var("y"), Var("Var1")}}, got)
}

func TestSubstFreshNameSkipsUsed(t *testing.T) {
	// Var1 occurs free in the replacement, so the binder renames to Var2.
	term := Abs{"y", App{Var("x"), Var("y")}}
	r := App{Var("y"), Var("Var1")}
	got := Subst(term, "x", r)
	assert.Equal(t, Abs{"Var2", App{r, Var("Var2")}}, got)
}

func TestSubstDoesNotEvaluateReplacement(t *testing.T) {
	redex := App{Abs{"y", Var("y")}, Var("z")}
	assert.Equal(t, redex, Subst(Var("x"), "x", redex))
}

func TestSubstStructural(t *testing.T) {
	term := BinOp{Plus, Neg{Var("x")}, App{Var("x"), Num(2)}}
	got := Subst(term, "x", Num(1))
	assert.Equal(t, BinOp{Plus, Neg{Num(1)}, App{Num(1), Num(2)}}, got)
}

// freeVars(t[x:=r]) == (freeVars(t) - {x}) ∪ (freeVars(r) when x is
// free in t, else ∅).
func TestSubstFreeVarLaw(t *testing.T) {
	terms := []Term{
		Var("x"),
		Var("q"),
		Abs{"y", App{Var("x"), Var("y")}},
		Abs{"x", Var("x")},
		App{Abs{"y", Var("x")}, Var("y")},
		BinOp{Plus, Var("x"), Neg{Var("z")}},
		App{Abs{"v", App{Var("v"), Var("x")}}, Num(2)},
	}
	repls := []Term{
		Var("y"),
		App{Var("y"), Var("z")},
		Abs{"w", Var("w")},
		Num(7),
	}
	for _, tm := range terms {
		for _, r := range repls {
			fv := FreeVars(tm)
			want := map[string]struct{}{}
			for n := range fv {
				if n != "x" {
					want[n] = struct{}{}
				}
			}
			if _, free := fv["x"]; free {
				for n := range FreeVars(r) {
					want[n] = struct{}{}
				}
			}
			got := FreeVars(Subst(tm, "x", r))
			assert.Equal(t, want, got, "term %s, replacement %s", tm, r)
		}
	}
}
