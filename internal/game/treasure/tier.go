// Package treasure holds the static treasure tables indexed by challenge-rating
// tier and the cumulative-chance selection rule used to read them.
package treasure

import "fmt"

// Tier is a challenge-rating bucket.
type Tier string

// Challenge-rating tiers in ascending order.
const (
	Tier0to4   Tier = "0-4"
	Tier5to10  Tier = "5-10"
	Tier11to16 Tier = "11-16"
	Tier17Plus Tier = "17+"
)

// Tiers lists every tier from lowest to highest.
var Tiers = []Tier{Tier0to4, Tier5to10, Tier11to16, Tier17Plus}

// Experience thresholds used to estimate a tier when no challenge rating is given.
const (
	xpTier5  = 1100
	xpTier11 = 7200
	xpTier17 = 25000
)

// TierFromCR buckets a challenge rating. Fractional ratings below 5 fall in 0-4.
func TierFromCR(cr float64) Tier {
	switch {
	case cr < 5:
		return Tier0to4
	case cr < 11:
		return Tier5to10
	case cr < 17:
		return Tier11to16
	default:
		return Tier17Plus
	}
}

// TierFromXP estimates a tier from an experience-point value.
func TierFromXP(xp int) Tier {
	switch {
	case xp < xpTier5:
		return Tier0to4
	case xp < xpTier11:
		return Tier5to10
	case xp < xpTier17:
		return Tier11to16
	default:
		return Tier17Plus
	}
}

// ResolveTier uses cr when present and falls back to the experience estimate.
func ResolveTier(cr *float64, xp int) Tier {
	if cr != nil {
		return TierFromCR(*cr)
	}
	return TierFromXP(xp)
}

// Index returns the tier's position in Tiers, 0 for unknown values.
func (t Tier) Index() int {
	for i, v := range Tiers {
		if v == t {
			return i
		}
	}
	return 0
}

// ParseTier validates s as a tier identifier.
func ParseTier(s string) (Tier, error) {
	for _, t := range Tiers {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("treasure: unknown tier %q", s)
}
