package lambda

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalFoldsArithmetic(t *testing.T) {
	term := App{Abs{"x", BinOp{Plus, BinOp{Times, Var("x"), Var("x")}, Num(1)}}, Num(3)}
	assert.Equal(t, Num(10), Eval(term, CallByName))
}

func TestEvalAlternatesStepAndFold(t *testing.T) {
	// Redexes nested inside arithmetic operands reduce first; the fold
	// fires once both operands are numbers.
	term := BinOp{Plus, App{id, Num(5)}, App{id, Num(3)}}
	assert.Equal(t, Num(8), Eval(term, CallByName))
}

func TestEvalRepeatedNegation(t *testing.T) {
	assert.Equal(t, Num(5), Eval(Neg{Neg{Num(5)}}, CallByName))
	assert.Equal(t, Num(-2), Eval(Neg{Neg{Neg{Num(2)}}}, CallByName))
}

func TestEvalDivisionByZero(t *testing.T) {
	got := Eval(BinOp{Div, Num(1), Num(0)}, CallByName)
	n, ok := got.(Num)
	require.True(t, ok)
	assert.True(t, math.IsInf(float64(n), 1))

	got = Eval(BinOp{Div, Num(0), Num(0)}, CallByName)
	n, ok = got.(Num)
	require.True(t, ok)
	assert.True(t, math.IsNaN(float64(n)))
}

func TestEvalIdempotent(t *testing.T) {
	terms := []Term{
		App{id, Var("a")},
		Abs{"x", App{id, Var("x")}},
		BinOp{Minus, Num(1), BinOp{Times, Num(2), Num(3)}},
		App{Abs{"x", Abs{"y", App{Var("x"), Var("y")}}}, Var("y")},
	}
	for _, s := range []Strategy{NormalOrder, CallByName} {
		for _, tm := range terms {
			once := Eval(tm, s)
			assert.Equal(t, once, Eval(once, s), "strategy %s, term %s", s, tm)
		}
	}
}

func TestEvalDeterministic(t *testing.T) {
	// Fresh names come from the used-name set alone, so repeated runs
	// print identically no matter what evaluated before.
	term := App{Abs{"x", Abs{"y", App{Var("x"), Var("y")}}}, Var("y")}
	first := ResultString(Eval(term, NormalOrder))
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, ResultString(Eval(term, NormalOrder)))
	}
	assert.Equal(t, "(\\Var1.(y Var1))", first)
}

func TestEvalStepsBudget(t *testing.T) {
	self := Abs{"x", App{Var("x"), Var("x")}}
	omega := App{self, self}
	got, err := EvalSteps(omega, CallByName, 10, nil)
	require.ErrorIs(t, err, ErrOutOfFuel)
	// Omega rewrites to itself, so the partial term is unchanged.
	assert.Equal(t, omega, got)
}

func TestEvalStepsTrace(t *testing.T) {
	var seen []Term
	term := App{App{Abs{"x", Abs{"y", Var("x")}}, Var("a")}, Var("b")}
	got, err := EvalSteps(term, CallByName, 0, func(_ int, u Term) { seen = append(seen, u) })
	require.NoError(t, err)
	assert.Equal(t, Var("a"), got)
	assert.Equal(t, []Term{
		App{Abs{"y", Var("a")}, Var("b")},
		Var("a"),
	}, seen)
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("lazy")
	require.NoError(t, err)
	assert.Equal(t, CallByName, s)

	s, err = ParseStrategy("normal")
	require.NoError(t, err)
	assert.Equal(t, NormalOrder, s)

	_, err = ParseStrategy("eager")
	assert.Error(t, err)
}
