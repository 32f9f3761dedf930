package treasure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/hoard/internal/game/dice"
	"github.com/cory-johannsen/hoard/internal/game/treasure"
)

func TestSelect_InclusiveBoundary(t *testing.T) {
	entries := []treasure.Entry{
		{Chance: 30, Dice: "0d6", Value: 0},
		{Chance: 65, Dice: "2d6", Value: 10},
		{Chance: 100, Dice: "2d6", Value: 50},
	}
	e, ok := treasure.Select(entries, 30)
	require.True(t, ok)
	assert.Equal(t, 0, e.Value, "roll equal to threshold selects that entry")

	e, ok = treasure.Select(entries, 31)
	require.True(t, ok)
	assert.Equal(t, 10, e.Value)

	e, ok = treasure.Select(entries, 65)
	require.True(t, ok)
	assert.Equal(t, 10, e.Value)

	e, ok = treasure.Select(entries, 1)
	require.True(t, ok)
	assert.Equal(t, 0, e.Value)
}

func TestSelect_NoMatch(t *testing.T) {
	_, ok := treasure.Select([]treasure.MagicEntry{{Chance: 50}}, 51)
	assert.False(t, ok)
	_, ok = treasure.Select([]treasure.Entry(nil), 1)
	assert.False(t, ok)
}

// TestTables_WellFormed checks every table is strictly ascending, ends at 100,
// and uses dice notation the evaluator accepts.
func TestTables_WellFormed(t *testing.T) {
	for _, tier := range treasure.Tiers {
		tt := treasure.Tables(tier)
		checkEntries(t, string(tier)+" gems", tt.Gems)
		checkEntries(t, string(tier)+" art", tt.Art)
		for _, lt := range []treasure.LootType{treasure.Individual, treasure.Hoard} {
			require.NotEmpty(t, tt.Coins[lt], "%s %s coins", tier, lt)
			for _, c := range tt.Coins[lt] {
				_, err := dice.Parse(c.Dice)
				assert.NoError(t, err)
				assert.Positive(t, c.Multiplier)
			}
			magic := tt.Magic[lt]
			require.NotEmpty(t, magic)
			prev := 0
			for _, m := range magic {
				assert.Greater(t, m.Chance, prev)
				prev = m.Chance
				_, err := dice.Parse(m.Rolls)
				assert.NoError(t, err)
			}
			assert.Equal(t, 100, prev)
		}
	}
}

func checkEntries(t *testing.T, name string, entries []treasure.Entry) {
	t.Helper()
	require.NotEmpty(t, entries, name)
	prev := 0
	for _, e := range entries {
		assert.Greater(t, e.Chance, prev, name)
		prev = e.Chance
		_, err := dice.Parse(e.Dice)
		assert.NoError(t, err, name)
	}
	assert.Equal(t, 100, prev, name)
}

func TestProperty_RollAlwaysSelects(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tier := rapid.SampledFrom(treasure.Tiers).Draw(rt, "tier")
		src := dice.NewSeededSource(rapid.String().Draw(rt, "seed"))
		_, ok := treasure.Roll(treasure.Tables(tier).Gems, src)
		assert.True(rt, ok)
	})
}

func TestRollD100_Range(t *testing.T) {
	src := dice.NewSeededSource("d100")
	seen := map[int]bool{}
	for i := 0; i < 5000; i++ {
		r := treasure.RollD100(src)
		require.GreaterOrEqual(t, r, 1)
		require.LessOrEqual(t, r, 100)
		seen[r] = true
	}
	assert.True(t, seen[1])
	assert.True(t, seen[100])
}

func TestToGold(t *testing.T) {
	assert.InDelta(t, 1.0, treasure.ToGold(treasure.Copper, 100), 1e-9)
	assert.InDelta(t, 1.0, treasure.ToGold(treasure.Silver, 10), 1e-9)
	assert.InDelta(t, 1.0, treasure.ToGold(treasure.Electrum, 2), 1e-9)
	assert.InDelta(t, 7.0, treasure.ToGold(treasure.Gold, 7), 1e-9)
	assert.InDelta(t, 10.0, treasure.ToGold(treasure.Platinum, 1), 1e-9)
}

func TestDescriptions(t *testing.T) {
	src := dice.NewSeededSource("desc")
	assert.NotEmpty(t, treasure.GemDescription(10, src))
	assert.Equal(t, "Gemstone", treasure.GemDescription(3, src))
	assert.NotEmpty(t, treasure.ArtDescription(7500, src))
	assert.NotEmpty(t, treasure.ContainerDescription("no-such-container", src))
}

func TestSalvageTable_Fallback(t *testing.T) {
	assert.Equal(t, treasure.SalvageTable(treasure.DefaultMonsterType), treasure.SalvageTable("kaiju"))
	assert.NotEmpty(t, treasure.SalvageTable("dragon"))
}
