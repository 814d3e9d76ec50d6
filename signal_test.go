package loopflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreak_unbound(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, `expected an unbound break to panic`)

		sig, ok := r.(*BreakSignal)
		require.True(t, ok, `expected a *BreakSignal, got %v`, r)
		assert.Same(t, DefaultLabel(), sig.Label())
		assert.Equal(t, 42, sig.Value())
		assert.EqualError(t, sig, `loopflow: unbound break: loop`)
	}()

	Break(42)

	t.Fatal(`unreachable`)
}

func TestBreakLabeled_unbound(t *testing.T) {
	label := NewLabel(`orphan`)

	require.PanicsWithError(t, `loopflow: unbound break: orphan`, func() {
		BreakLabeled(label, nil)
	})
}

func TestBreakLabeled_nilLabel(t *testing.T) {
	require.PanicsWithValue(t, `loopflow: break: nil label`, func() {
		BreakLabeled(nil, 1)
	})
}

func TestDefaultLabel_isProcessWideConstant(t *testing.T) {
	assert.Same(t, DefaultLabel(), DefaultLabel())
	assert.Equal(t, `loop`, DefaultLabel().String())
}

func TestNewLabel_identity(t *testing.T) {
	a, b := NewLabel(`x`), NewLabel(`x`)

	// same diagnostic name, distinct identity
	assert.Equal(t, a.String(), b.String())
	assert.NotSame(t, a, b)
}

func TestLabel_String(t *testing.T) {
	assert.Equal(t, `<nil>`, (*Label)(nil).String())
	assert.Equal(t, `<unnamed>`, NewLabel(``).String())
	assert.Equal(t, `x`, NewLabel(`x`).String())
}

func TestCatchBreak_outcome(t *testing.T) {
	label := NewLabel(`scope`)

	out := catchBreak(label, func() {})
	assert.False(t, out.broke)
	assert.Nil(t, out.value)

	out = catchBreak(label, func() { BreakLabeled(label, false) })
	assert.True(t, out.broke, `a false payload must still read as a break`)
	assert.Equal(t, false, out.value)
}
