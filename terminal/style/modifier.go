package style

import "strings"

// Modifier is a set of independent text style toggles. Any combination is
// valid; how they interact is decided by Resolver, not by the set.
type Modifier uint16

const (
	Bold Modifier = 1 << iota
	Dim
	Italic
	Underline
	SlowBlink
	RapidBlink
	Reverse
	Hidden
	CrossedOut

	ModifierNone Modifier = 0
)

var modifierNames = []struct {
	mod  Modifier
	name string
}{
	{Bold, "bold"},
	{Dim, "dim"},
	{Italic, "italic"},
	{Underline, "underline"},
	{SlowBlink, "slow_blink"},
	{RapidBlink, "rapid_blink"},
	{Reverse, "reverse"},
	{Hidden, "hidden"},
	{CrossedOut, "crossed_out"},
}

// Has reports whether every flag of other is set in m.
func (m Modifier) Has(other Modifier) bool {
	return m&other == other
}

func (m Modifier) With(other Modifier) Modifier    { return m | other }
func (m Modifier) Without(other Modifier) Modifier { return m &^ other }

func (m Modifier) String() string {
	if m == ModifierNone {
		return "none"
	}
	var names []string
	for _, entry := range modifierNames {
		if m.Has(entry.mod) {
			names = append(names, entry.name)
		}
	}
	return strings.Join(names, "|")
}
