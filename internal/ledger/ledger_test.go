package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply_ClampsAtZero(t *testing.T) {
	l := New()

	assert.Equal(t, 2, l.Apply("a", 2))
	assert.Equal(t, 0, l.Apply("a", -5))
	assert.Equal(t, 0, l.Get("a"))
	assert.Equal(t, 1, l.Apply("a", 1))
}

func TestApply_EqualsClampedSumOfDeltas(t *testing.T) {
	l := New()

	deltas := []int{3, -1, 4, -2, -10, 5, 0, -1}
	running := 0
	for _, d := range deltas {
		running += d
		if running < 0 {
			running = 0
		}
		got := l.Apply("item", d)
		assert.Equal(t, running, got)
		assert.GreaterOrEqual(t, got, 0)
	}
}

func TestGet_UnknownIDDefaultsToZero(t *testing.T) {
	l := New()
	assert.Equal(t, 0, l.Get("never-seen"))
}

func TestReset_ClearsEverything(t *testing.T) {
	l := New()
	l.Apply("a", 2)
	l.Apply("b", 7)
	assert.Equal(t, 2, l.Len())

	l.Reset()

	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, l.Get("a"))
	assert.Equal(t, 0, l.Get("b"))
}

func TestApply_ZeroQuantityStaysSparse(t *testing.T) {
	l := New()
	l.Apply("a", 3)
	l.Apply("a", -3)
	assert.Equal(t, 0, l.Len())
}
