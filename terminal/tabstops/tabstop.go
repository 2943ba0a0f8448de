package tabstops

import (
	"github.com/gold-silver-copper/mousefood/terminal/utils"
)

// TABSTOP_INTERVAL is the default tabstop interval.
const TABSTOP_INTERVAL = 8

// Tabstops tracks tabstop locations for a fixed number of columns.
type Tabstops struct {
	cols  int
	stops *utils.StaticBitSet
}

// NewTabstops creates a new Tabstops for the given number of columns and interval.
func NewTabstops(cols int, interval int) *Tabstops {
	utils.Assert(cols >= 0, "negative column count")
	t := &Tabstops{
		cols:  cols,
		stops: utils.NewStaticBitSet(cols),
	}
	t.Reset(interval)
	return t
}

// Cols returns the number of columns tracked.
func (t *Tabstops) Cols() int { return t.cols }

// Set sets the tabstop at a certain column (0-indexed).
func (t *Tabstops) Set(col int) {
	if col >= 0 && col < t.cols {
		t.stops.Set(col)
	}
}

// Unset unsets the tabstop at a certain column (0-indexed).
func (t *Tabstops) Unset(col int) {
	if col >= 0 && col < t.cols {
		t.stops.Unset(col)
	}
}

// Get returns true if a tabstop is set at the given column.
func (t *Tabstops) Get(col int) bool {
	if col < 0 || col >= t.cols {
		return false
	}
	return t.stops.IsSet(col)
}

// Next returns the first tabstop after col, or the last column when there
// is none.
func (t *Tabstops) Next(col int) int {
	for c := col + 1; c < t.cols; c++ {
		if t.stops.IsSet(c) {
			return c
		}
	}
	return max(t.cols-1, 0)
}

// Reset unsets all tabstops and then sets initial tabstops at the given interval.
func (t *Tabstops) Reset(interval int) {
	t.stops.Clear()
	if interval > 0 {
		for i := interval; i < t.cols-1; i += interval {
			t.Set(i)
		}
	}
}
