package loot

import (
	"time"

	"github.com/cory-johannsen/hoard/internal/game/catalog"
	"github.com/cory-johannsen/hoard/internal/game/treasure"
)

// CoinStack is the number of coins rolled for one denomination, after scaling.
type CoinStack struct {
	Denomination treasure.Denomination `yaml:"denomination"`
	Count        int                   `yaml:"count"`
}

// Gem is a group of identical gemstones; Value is per gem, in gold.
type Gem struct {
	Value       int    `yaml:"value"`
	Description string `yaml:"description"`
	Quantity    int    `yaml:"quantity"`
}

// ArtObject is a single art object; Value is in gold.
type ArtObject struct {
	Value       int    `yaml:"value"`
	Description string `yaml:"description"`
}

// MagicItem is a catalog record drawn from a magic-item sub-table.
type MagicItem struct {
	Item       catalog.ItemRecord `yaml:"item"`
	Identified bool               `yaml:"identified"`
	Table      string             `yaml:"table"`
}

// MundaneItem is an ordinary good; UnitValue is in gold.
type MundaneItem struct {
	Name      string  `yaml:"name"`
	Quantity  int     `yaml:"quantity"`
	UnitValue float64 `yaml:"unit_value"`
}

// SalvageMaterial is a monster-derived crafting ingredient; Value is in gold.
type SalvageMaterial struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Value       float64  `yaml:"value"`
	Tags        []string `yaml:"tags"`
	Difficulty  int      `yaml:"difficulty"`
}

// Metadata records how a bundle was generated.
type Metadata struct {
	Seed          string        `yaml:"seed"`
	Tier          treasure.Tier `yaml:"tier"`
	TablesVersion string        `yaml:"tables_version"`
	Params        Params        `yaml:"params"`
	GeneratedAt   time.Time     `yaml:"generated_at"`
}

// Bundle is one generated treasure. It is self-contained and not persisted by
// this package.
type Bundle struct {
	ID string `yaml:"id"`
	// Coins is the gold-equivalent coin total.
	Coins      int                  `yaml:"coins"`
	CoinStacks []CoinStack          `yaml:"coin_stacks,omitempty"`
	Gems       []Gem                `yaml:"gems,omitempty"`
	Art        []ArtObject          `yaml:"art,omitempty"`
	MagicItems []MagicItem          `yaml:"magic_items,omitempty"`
	Equipment  []catalog.ItemRecord `yaml:"equipment,omitempty"`
	Mundane    []MundaneItem        `yaml:"mundane,omitempty"`
	Salvage    []SalvageMaterial    `yaml:"salvage,omitempty"`
	// TotalValue is in gold, rounded to the nearest integer.
	TotalValue int `yaml:"total_value"`
	// TotalWeight is in pounds to one decimal place; zero unless encumbrance was requested.
	TotalWeight float64  `yaml:"total_weight,omitempty"`
	Container   string   `yaml:"container"`
	Metadata    Metadata `yaml:"metadata"`
}

// GemCount returns the number of individual gems.
func (b Bundle) GemCount() int {
	n := 0
	for _, g := range b.Gems {
		n += g.Quantity
	}
	return n
}
