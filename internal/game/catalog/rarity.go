package catalog

import "strings"

// Rarity is an ordered item rarity level.
type Rarity string

// Rarity levels in ascending order.
const (
	Common    Rarity = "common"
	Uncommon  Rarity = "uncommon"
	Rare      Rarity = "rare"
	VeryRare  Rarity = "very-rare"
	Legendary Rarity = "legendary"
)

// Rarities lists every level from lowest to highest.
var Rarities = []Rarity{Common, Uncommon, Rare, VeryRare, Legendary}

var rarityRank = map[Rarity]int{
	Common:    0,
	Uncommon:  1,
	Rare:      2,
	VeryRare:  3,
	Legendary: 4,
}

// ParseRarity normalises s into a Rarity. Spaces and underscores are accepted
// in place of the hyphen ("very rare", "very_rare").
//
// Postcondition: ok is false iff s names no known level.
func ParseRarity(s string) (Rarity, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "-", "_", "-").Replace(norm)
	r := Rarity(norm)
	_, ok := rarityRank[r]
	return r, ok
}

// Resolve returns the concrete level for r. Absent or unknown values resolve
// to Common.
//
// Postcondition: the result is always one of Rarities.
func (r Rarity) Resolve() Rarity {
	if parsed, ok := ParseRarity(string(r)); ok {
		return parsed
	}
	return Common
}

// Rank returns the ordinal of the resolved rarity, 0 for Common.
func (r Rarity) Rank() int {
	return rarityRank[r.Resolve()]
}

// Step returns the rarity delta levels away from r, clamped to the valid range.
func (r Rarity) Step(delta int) Rarity {
	i := r.Rank() + delta
	if i < 0 {
		i = 0
	}
	if i >= len(Rarities) {
		i = len(Rarities) - 1
	}
	return Rarities[i]
}

// CompareRarity returns a negative number when a ranks below b, zero
// when equal, and a positive number when a outranks b.
func CompareRarity(a, b Rarity) int {
	return a.Rank() - b.Rank()
}

// InRange reports whether r lies within [lo, hi] inclusive after resolution.
func (r Rarity) InRange(lo, hi Rarity) bool {
	rank := r.Rank()
	return rank >= lo.Rank() && rank <= hi.Rank()
}
