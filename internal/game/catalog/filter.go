package catalog

import "github.com/cory-johannsen/hoard/internal/game/dice"

// DefaultVarietyChance is the probability that an off-category record is
// stocked as variety when the shop type allows it.
const DefaultVarietyChance = 0.15

// FilterByRarity keeps records whose resolved rarity lies within [lo, hi].
//
// Postcondition: input order is preserved; the input slice is not modified.
func FilterByRarity(items []ItemRecord, lo, hi Rarity) []ItemRecord {
	out := make([]ItemRecord, 0, len(items))
	for _, it := range items {
		if it.Rarity.InRange(lo, hi) {
			out = append(out, it)
		}
	}
	return out
}

// FilterByShopType selects the records cfg would stock, injecting variety at
// DefaultVarietyChance.
func FilterByShopType(items []ItemRecord, cfg ShopTypeConfig, allowVariety bool, src dice.Source) []ItemRecord {
	return FilterByShopTypeChance(items, cfg, allowVariety, DefaultVarietyChance, src)
}

// FilterByShopTypeChance selects the records cfg would stock:
//   - both allow-lists wildcarded: every record, no draws consumed;
//   - staples for cfg.ID: always;
//   - variety enabled on both the call and the shop type: with probability varietyChance;
//   - otherwise when cfg.Accepts the record.
//
// Postcondition: input order is preserved.
func FilterByShopTypeChance(items []ItemRecord, cfg ShopTypeConfig, allowVariety bool, varietyChance float64, src dice.Source) []ItemRecord {
	if cfg.AcceptsAllItems() && cfg.AcceptsAllEquipment() {
		out := make([]ItemRecord, len(items))
		copy(out, items)
		return out
	}
	variety := allowVariety && cfg.AllowVariety
	out := make([]ItemRecord, 0, len(items))
	for _, it := range items {
		switch {
		case it.IsStapleFor(cfg.ID):
			out = append(out, it)
		case variety && dice.Chance(src, varietyChance):
			out = append(out, it)
		case cfg.Accepts(it):
			out = append(out, it)
		}
	}
	return out
}

// StapleItems returns the records whose staple set contains shopType.
func StapleItems(shopType string, items []ItemRecord) []ItemRecord {
	var out []ItemRecord
	for _, it := range items {
		if it.IsStapleFor(shopType) {
			out = append(out, it)
		}
	}
	return out
}

// FilterConsumables returns the consumable records of items.
func FilterConsumables(items []ItemRecord) []ItemRecord {
	var out []ItemRecord
	for _, it := range items {
		if it.IsConsumable() {
			out = append(out, it)
		}
	}
	return out
}

// FilterEquipment splits items into equipment and non-equipment records.
func FilterEquipment(items []ItemRecord) (equipment, other []ItemRecord) {
	for _, it := range items {
		if it.IsEquipment() {
			equipment = append(equipment, it)
		} else {
			other = append(other, it)
		}
	}
	return equipment, other
}

// quantityRange is the stock depth drawn for each rarity.
var quantityRange = map[Rarity][2]int{
	Common:    {3, 15},
	Uncommon:  {2, 8},
	Rare:      {1, 5},
	VeryRare:  {1, 3},
	Legendary: {1, 2},
}

// CalculateQuantity draws a stock quantity for rarity. Rarer items stock
// shallower; an absent rarity counts as common and an unrecognised one draws
// from [1, 10].
//
// Postcondition: the result is >= 1.
func CalculateQuantity(rarity Rarity, src dice.Source) int {
	if rarity == "" {
		rarity = Common
	}
	r, ok := ParseRarity(string(rarity))
	if !ok {
		return dice.IntRange(src, 1, 10)
	}
	rng := quantityRange[r]
	return dice.IntRange(src, rng[0], rng[1])
}

// RarityBounds returns the lowest and highest resolved rarity present in items.
//
// Postcondition: ok is false iff items is empty.
func RarityBounds(items []ItemRecord) (lo, hi Rarity, ok bool) {
	if len(items) == 0 {
		return Common, Common, false
	}
	lo, hi = items[0].Rarity.Resolve(), items[0].Rarity.Resolve()
	for _, it := range items[1:] {
		r := it.Rarity.Resolve()
		if CompareRarity(r, lo) < 0 {
			lo = r
		}
		if CompareRarity(r, hi) > 0 {
			hi = r
		}
	}
	return lo, hi, true
}
