package tabstops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTabstopsBasic(t *testing.T) {
	tab := NewTabstops(16, 0)
	assert.Equal(t, 16, tab.Cols())
	for col := range 16 {
		assert.False(t, tab.Get(col))
	}

	tab.Set(4)
	assert.True(t, tab.Get(4))
	tab.Unset(4)
	assert.False(t, tab.Get(4))

	// out of range columns are ignored
	tab.Set(40)
	assert.False(t, tab.Get(40))
	assert.False(t, tab.Get(-1))
}

func TestTabstopsInterval(t *testing.T) {
	tab := NewTabstops(20, TABSTOP_INTERVAL)
	assert.True(t, tab.Get(8))
	assert.True(t, tab.Get(16))
	assert.False(t, tab.Get(0))
	assert.False(t, tab.Get(9))

	tab.Reset(0)
	assert.False(t, tab.Get(8))
}

func TestTabstopsNext(t *testing.T) {
	tab := NewTabstops(20, TABSTOP_INTERVAL)
	tests := []struct {
		col      int
		expected int
	}{
		{col: 0, expected: 8},
		{col: 7, expected: 8},
		{col: 8, expected: 16},
		{col: 16, expected: 19},
		{col: 19, expected: 19},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, tab.Next(tc.col), "col %d", tc.col)
	}
}
