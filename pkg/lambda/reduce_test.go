package lambda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var id = Abs{"x", Var("x")}

func TestStepReducesOutermostRedexFirst(t *testing.T) {
	term := App{id, App{id, Var("a")}}
	got, ok := Step(term, CallByName)
	require.True(t, ok)
	// The outer redex fires; the argument is substituted untouched.
	assert.Equal(t, App{id, Var("a")}, got)
}

func TestStepFunctionPositionBeforeArgument(t *testing.T) {
	term := App{App{id, Var("f")}, App{id, Var("a")}}
	got, ok := Step(term, NormalOrder)
	require.True(t, ok)
	assert.Equal(t, App{Var("f"), App{id, Var("a")}}, got)
}

func TestStepArgumentOnlyUnderNormalOrder(t *testing.T) {
	term := App{Var("f"), App{id, Var("a")}}
	got, ok := Step(term, NormalOrder)
	require.True(t, ok)
	assert.Equal(t, App{Var("f"), Var("a")}, got)

	_, ok = Step(term, CallByName)
	assert.False(t, ok)
}

func TestStepUnderBinderOnlyUnderNormalOrder(t *testing.T) {
	term := Abs{"x", App{id, Var("x")}}
	got, ok := Step(term, NormalOrder)
	require.True(t, ok)
	assert.Equal(t, Abs{"x", Var("x")}, got)

	_, ok = Step(term, CallByName)
	assert.False(t, ok)
}

func TestStepSearchesArithmeticOperands(t *testing.T) {
	term := BinOp{Plus, App{id, Num(1)}, App{id, Num(2)}}
	got, ok := Step(term, CallByName)
	require.True(t, ok)
	assert.Equal(t, BinOp{Plus, Num(1), App{id, Num(2)}}, got)

	got, ok = Step(got, CallByName)
	require.True(t, ok)
	assert.Equal(t, BinOp{Plus, Num(1), Num(2)}, got)
}

func TestStepNegOperand(t *testing.T) {
	got, ok := Step(Neg{App{id, Num(2)}}, CallByName)
	require.True(t, ok)
	assert.Equal(t, Neg{Num(2)}, got)
}

func TestStepDoesNotFold(t *testing.T) {
	_, ok := Step(BinOp{Plus, Num(1), Num(2)}, NormalOrder)
	assert.False(t, ok)
	_, ok = Step(Neg{Num(5)}, NormalOrder)
	assert.False(t, ok)
}
