package gomud

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/hoard/internal/game/catalog"
	"github.com/cory-johannsen/hoard/internal/importer"
)

// copperPerGold converts gomud gold values to catalog copper prices.
const copperPerGold = 100

// wornSlots are gomud item types that become armor equipment.
var wornSlots = map[string]bool{
	"offhand": true,
	"head":    true,
	"body":    true,
	"belt":    true,
	"gloves":  true,
	"legs":    true,
	"feet":    true,
}

// itemTypes maps gomud item types and subtypes to catalog item types.
var itemTypes = map[string]string{
	"ring":      "ring",
	"neck":      "wondrous",
	"readable":  "scroll",
	"drinkable": "potion",
	"edible":    "food",
	"food":      "food",
	"drink":     "potion",
	"throwable": "consumable",
	"grenade":   "consumable",
	"gemstone":  "gem",
	"botanical": "trade-good",
	"junk":      "trade-good",
	"lockpicks": "tool",
	"key":       "key",
	"object":    "wondrous",
}

// consumableSubtypes are gomud subtypes that are used up.
var consumableSubtypes = map[string]bool{
	"drinkable": true,
	"edible":    true,
	"throwable": true,
}

// RarityForValue infers a rarity from a gold value using the conventional
// price bands: up to 100 common, 500 uncommon, 5000 rare, 50000 very rare.
//
// Postcondition: the result is always one of catalog.Rarities.
func RarityForValue(gold int) catalog.Rarity {
	switch {
	case gold <= 100:
		return catalog.Common
	case gold <= 500:
		return catalog.Uncommon
	case gold <= 5000:
		return catalog.Rare
	case gold <= 50000:
		return catalog.VeryRare
	default:
		return catalog.Legendary
	}
}

// ConvertItem transforms a parsed GomudItem into a catalog record.
//
// Precondition: item must be non-nil.
// Postcondition: returns nil and at least one warning when the item has no
// usable name; otherwise a record and a (possibly empty) slice of warnings for
// recoverable issues (missing ID, negative value, unknown type).
func ConvertItem(item *GomudItem) (*catalog.ItemRecord, []string) {
	var warnings []string

	name := strings.TrimSpace(item.Name)
	if name == "" {
		name = strings.TrimSpace(item.NameSimple)
	}
	if name == "" {
		return nil, []string{fmt.Sprintf("item %d: no name; skipping", item.ItemID)}
	}

	id := fmt.Sprintf("gomud-%d", item.ItemID)
	if item.ItemID <= 0 {
		id = importer.NameToID(name)
		warnings = append(warnings, fmt.Sprintf("item %q: no itemid; using %q", name, id))
	}

	value := item.Value
	if value < 0 {
		warnings = append(warnings, fmt.Sprintf("item %q: negative value %d clamped to 0", name, value))
		value = 0
	}

	rec := &catalog.ItemRecord{
		ID:          id,
		Name:        name,
		Description: strings.TrimSpace(item.Description),
		Price:       value * copperPerGold,
		Rarity:      RarityForValue(value),
	}

	kind := strings.ToLower(strings.TrimSpace(item.Type))
	sub := strings.ToLower(strings.TrimSpace(item.Subtype))
	switch {
	case kind == "weapon":
		rec.EquipmentType = "weapon"
	case wornSlots[kind]:
		rec.EquipmentType = "armor"
	case itemTypes[sub] != "" && consumableSubtypes[sub]:
		rec.Type = itemTypes[sub]
	case itemTypes[kind] != "":
		rec.Type = itemTypes[kind]
	default:
		rec.Type = kind
		if kind != "" {
			warnings = append(warnings, fmt.Sprintf("item %q: unknown type %q kept verbatim", name, kind))
		}
	}
	rec.Consumable = consumableSubtypes[sub] || item.Uses > 0

	return rec, warnings
}
