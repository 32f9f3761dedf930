package catalog_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/hoard/internal/game/catalog"
	"github.com/cory-johannsen/hoard/internal/game/dice"
)

func sampleItems() []catalog.ItemRecord {
	return []catalog.ItemRecord{
		{ID: "sword", Name: "Longsword", Price: 1500, EquipmentType: "weapon"},
		{ID: "plate", Name: "Plate Armor", Price: 150000, EquipmentType: "armor", Rarity: catalog.Uncommon},
		{ID: "hammer", Name: "Smith's Hammer", Price: 200, EquipmentType: "tool", StapleFor: []string{"blacksmith"}},
		{ID: "healing", Name: "Potion of Healing", Price: 5000, Type: "potion"},
		{ID: "ring", Name: "Ring of Protection", Price: 350000, Type: "ring", Rarity: catalog.Rare},
		{ID: "cloak", Name: "Cloak of Elvenkind", Price: 500000, Type: "wondrous", Rarity: catalog.VeryRare},
		{ID: "vorpal", Name: "Vorpal Sword", Price: 2400000, EquipmentType: "weapon", Rarity: catalog.Legendary},
		{ID: "mystery", Name: "Odd Trinket", Price: 10},
	}
}

func keys(items []catalog.ItemRecord) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Key()
	}
	return out
}

func TestFilterByRarity_Inclusive(t *testing.T) {
	got := catalog.FilterByRarity(sampleItems(), catalog.Uncommon, catalog.Rare)
	assert.Equal(t, []string{"plate", "ring"}, keys(got))
}

func TestFilterByRarity_AbsentIsCommon(t *testing.T) {
	got := catalog.FilterByRarity(sampleItems(), catalog.Common, catalog.Common)
	assert.Equal(t, []string{"sword", "hammer", "healing", "mystery"}, keys(got))
}

func TestFilterByShopType_WildcardReturnsAll(t *testing.T) {
	cfg, err := catalog.NewShopTypes().Lookup("general")
	require.NoError(t, err)
	got := catalog.FilterByShopType(sampleItems(), cfg, true, dice.NewSeededSource("x"))
	assert.Equal(t, keys(sampleItems()), keys(got))
}

func TestFilterByShopType_CategoryMatch(t *testing.T) {
	cfg, err := catalog.NewShopTypes().Lookup("blacksmith")
	require.NoError(t, err)
	got := catalog.FilterByShopType(sampleItems(), cfg, false, dice.NewSeededSource("x"))
	assert.Equal(t, []string{"sword", "plate", "hammer", "vorpal"}, keys(got))
}

func TestFilterByShopType_StapleAlwaysIncluded(t *testing.T) {
	cfg := catalog.ShopTypeConfig{ID: "blacksmith", ItemTypes: []string{"potion"}}
	got := catalog.FilterByShopType(sampleItems(), cfg, false, dice.NewSeededSource("x"))
	assert.Equal(t, []string{"hammer", "healing"}, keys(got))
}

func TestFilterByShopType_UncategorisedNeedsWildcard(t *testing.T) {
	cfg := catalog.ShopTypeConfig{ID: "odd", ItemTypes: []string{"ring"}, EquipmentTypes: []string{catalog.Wildcard}}
	got := catalog.FilterByShopType(sampleItems(), cfg, false, dice.NewSeededSource("x"))
	assert.NotContains(t, keys(got), "mystery")

	cfg.ItemTypes = []string{catalog.Wildcard}
	cfg.EquipmentTypes = []string{"weapon"}
	got = catalog.FilterByShopType(sampleItems(), cfg, false, dice.NewSeededSource("x"))
	assert.Contains(t, keys(got), "mystery")
}

// TestFilterByShopType_VarietyRate checks off-category records appear at
// roughly the variety chance.
func TestFilterByShopType_VarietyRate(t *testing.T) {
	cfg := catalog.ShopTypeConfig{ID: "tavern", ItemTypes: []string{"food"}, AllowVariety: true}
	items := make([]catalog.ItemRecord, 1000)
	for i := range items {
		items[i] = catalog.ItemRecord{ID: fmt.Sprintf("ring-%d", i), Name: "Ring", Type: "ring"}
	}
	got := catalog.FilterByShopType(items, cfg, true, dice.NewSeededSource("variety"))
	assert.InDelta(t, 150, len(got), 50)

	none := catalog.FilterByShopType(items, cfg, false, dice.NewSeededSource("variety"))
	assert.Empty(t, none)
}

func TestStapleItems(t *testing.T) {
	got := catalog.StapleItems("blacksmith", sampleItems())
	assert.Equal(t, []string{"hammer"}, keys(got))
	assert.Empty(t, catalog.StapleItems("alchemist", sampleItems()))
}

func TestCalculateQuantity_Ranges(t *testing.T) {
	want := map[catalog.Rarity][2]int{
		catalog.Common:    {3, 15},
		catalog.Uncommon:  {2, 8},
		catalog.Rare:      {1, 5},
		catalog.VeryRare:  {1, 3},
		catalog.Legendary: {1, 2},
		"unknown":         {1, 10},
		"":                {3, 15},
	}
	src := dice.NewSeededSource("qty")
	for r, rng := range want {
		for i := 0; i < 200; i++ {
			q := catalog.CalculateQuantity(r, src)
			assert.GreaterOrEqual(t, q, rng[0], "rarity %q", r)
			assert.LessOrEqual(t, q, rng[1], "rarity %q", r)
		}
	}
}

func TestRarityBounds(t *testing.T) {
	min, max, ok := catalog.RarityBounds(sampleItems())
	require.True(t, ok)
	assert.Equal(t, catalog.Common, min)
	assert.Equal(t, catalog.Legendary, max)

	_, _, ok = catalog.RarityBounds(nil)
	assert.False(t, ok)
}

func TestProperty_FilterByRarity_Subset(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		min := rapid.SampledFrom(catalog.Rarities).Draw(rt, "min")
		max := rapid.SampledFrom(catalog.Rarities).Draw(rt, "max")
		for _, it := range catalog.FilterByRarity(sampleItems(), min, max) {
			assert.GreaterOrEqual(rt, catalog.CompareRarity(it.Rarity, min), 0)
			assert.LessOrEqual(rt, catalog.CompareRarity(it.Rarity, max), 0)
		}
	})
}

func TestShopTypes_LookupAndOverride(t *testing.T) {
	st := catalog.NewShopTypes(catalog.ShopTypeConfig{ID: "Bakery", ItemTypes: []string{"food"}})
	cfg, err := st.Lookup("bakery")
	require.NoError(t, err)
	assert.Equal(t, []string{"food"}, cfg.ItemTypes)
	_, err = st.Lookup("spaceport")
	assert.Error(t, err)
	assert.Contains(t, st.IDs(), "blacksmith")
}
