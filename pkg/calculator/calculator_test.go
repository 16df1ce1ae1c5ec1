package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateOperatorPrecedence(t *testing.T) {
	v, ok := Evaluate("2 + 3 * 4")
	require.True(t, ok)
	assert.Equal(t, 14.0, v)
	assert.Equal(t, "= 14", FormatResult(v))
}

func TestEvaluateParentheses(t *testing.T) {
	v, ok := Evaluate("(2 + 3) * 4")
	require.True(t, ok)
	assert.Equal(t, 20.0, v)
}

func TestEvaluateUnaryMinus(t *testing.T) {
	v, ok := Evaluate("-5 + 10")
	require.True(t, ok)
	assert.Equal(t, 5.0, v)
}

func TestEvaluateDivision(t *testing.T) {
	v, ok := Evaluate("10 / 4")
	require.True(t, ok)
	assert.Equal(t, 2.5, v)
}

func TestEvaluateDivisionByZero(t *testing.T) {
	_, ok := Evaluate("1 / 0")
	assert.False(t, ok)
}

func TestEvaluateNotAnExpression(t *testing.T) {
	cases := []string{"", "hello", "firefox", "2 +", "(1 + 2"}
	for _, c := range cases {
		_, ok := Evaluate(c)
		assert.False(t, ok, "expected %q to fail to parse", c)
	}
}

func TestEvaluateDecimal(t *testing.T) {
	v, ok := Evaluate("1.5 * 2")
	require.True(t, ok)
	assert.Equal(t, 3.0, v)
}

func TestFormatResultTrimsTrailingZeros(t *testing.T) {
	assert.Equal(t, "= 3.5", FormatResult(3.5))
}
