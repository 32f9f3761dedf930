package catalog

import (
	"fmt"
	"strings"
)

const (
	// CopperPerSilver is the number of copper pieces in one silver piece.
	CopperPerSilver = 10
	// CopperPerGold is the number of copper pieces in one gold piece.
	CopperPerGold = 100
	// CopperPerPlatinum is the number of copper pieces in one platinum piece.
	CopperPerPlatinum = 1000
)

// DecomposePrice converts a copper amount into display denominations.
// Electrum is never used for display.
//
// Precondition: copper >= 0.
// Postcondition: pp*1000 + gp*100 + sp*10 + cp == copper; gp < 10; sp < 10; cp < 10.
func DecomposePrice(copper int) (pp, gp, sp, cp int) {
	pp = copper / CopperPerPlatinum
	rem := copper % CopperPerPlatinum
	gp = rem / CopperPerGold
	rem %= CopperPerGold
	sp = rem / CopperPerSilver
	cp = rem % CopperPerSilver
	return pp, gp, sp, cp
}

// FormatPrice returns a price such as "1 pp, 2 gp, 5 cp". Zero denominations
// are omitted; a zero price is "0 cp". Negative prices are formatted as zero.
func FormatPrice(copper int) string {
	pp, gp, sp, cp := DecomposePrice(max(copper, 0))

	var parts []string
	for _, d := range []struct {
		n    int
		unit string
	}{{pp, "pp"}, {gp, "gp"}, {sp, "sp"}, {cp, "cp"}} {
		if d.n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", d.n, d.unit))
		}
	}
	if len(parts) == 0 {
		return "0 cp"
	}
	return strings.Join(parts, ", ")
}
