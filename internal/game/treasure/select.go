package treasure

import "github.com/cory-johannsen/hoard/internal/game/dice"

// Thresholded is an entry in a cumulative-chance table.
type Thresholded interface {
	// Threshold returns the cumulative percentage, in [1, 100], up to which the
	// entry is selected.
	Threshold() int
}

// Select returns the first entry whose threshold is >= roll. A roll equal to
// an entry's threshold selects that entry, not the next.
//
// Postcondition: ok is false iff no entry qualifies.
func Select[E Thresholded](entries []E, roll int) (E, bool) {
	for _, e := range entries {
		if e.Threshold() >= roll {
			return e, true
		}
	}
	var zero E
	return zero, false
}

// RollD100 returns a uniform integer in [1, 100].
func RollD100(src dice.Source) int {
	return src.Intn(100) + 1
}

// Roll draws a d100 and selects from entries.
func Roll[E Thresholded](entries []E, src dice.Source) (E, bool) {
	return Select(entries, RollD100(src))
}
