package testutil

import (
	"fmt"

	"github.com/cory-johannsen/hoard/internal/game/catalog"
)

// SampleItems returns a small catalog spanning every rarity, both consumable
// and permanent items, equipment, and one blacksmith staple.
func SampleItems() []catalog.ItemRecord {
	items := []catalog.ItemRecord{
		{ID: "potion-healing", Name: "Potion of Healing", Price: 5000, Rarity: catalog.Common, Type: "potion", Weight: 0.5},
		{ID: "scroll-shield", Name: "Spell Scroll (Shield)", Price: 6000, Rarity: catalog.Common, Type: "scroll"},
		{ID: "bag-holding", Name: "Bag of Holding", Price: 50000, Rarity: catalog.Uncommon, Type: "wondrous", Weight: 15},
		{ID: "potion-fire-breath", Name: "Potion of Fire Breath", Price: 15000, Rarity: catalog.Uncommon, Type: "potion", Weight: 0.5},
		{ID: "ring-protection", Name: "Ring of Protection", Price: 350000, Rarity: catalog.Rare, Type: "ring"},
		{ID: "wand-fireballs", Name: "Wand of Fireballs", Price: 3200000, Rarity: catalog.Rare, Type: "wand", Weight: 1},
		{ID: "staff-power", Name: "Staff of Power", Price: 9550000, Rarity: catalog.VeryRare, Type: "staff", Weight: 5},
		{ID: "vorpal-sword", Name: "Vorpal Sword", Price: 24000000, Rarity: catalog.Legendary, Type: "weapon", EquipmentType: "weapon", Weight: 3},
		{ID: "longsword", Name: "Longsword", Price: 1500, Rarity: catalog.Common, EquipmentType: "weapon", Weight: 3},
		{ID: "chain-mail", Name: "Chain Mail", Price: 7500, Rarity: catalog.Common, EquipmentType: "armor", Weight: 55},
		{ID: "smiths-tools", Name: "Smith's Tools", Price: 2000, Rarity: catalog.Common, EquipmentType: "tool", Weight: 8, StapleFor: []string{"blacksmith"}},
	}
	return items
}

// GeneratedItems returns n plain wondrous items cycling through every rarity.
func GeneratedItems(n int) []catalog.ItemRecord {
	out := make([]catalog.ItemRecord, n)
	for i := range out {
		out[i] = catalog.ItemRecord{
			ID:     fmt.Sprintf("generated-%04d", i),
			Name:   fmt.Sprintf("Generated Item %d", i),
			Price:  100 * (i%20 + 1),
			Rarity: catalog.Rarities[i%len(catalog.Rarities)],
			Type:   "wondrous",
		}
	}
	return out
}
