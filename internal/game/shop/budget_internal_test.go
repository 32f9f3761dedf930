package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/hoard/internal/game/catalog"
	"github.com/cory-johannsen/hoard/internal/game/dice"
)

func TestStocker_SeededOverBudgetAddsNothing(t *testing.T) {
	s := newStocker(1000, DefaultBudgetOverflow, dice.NewSeededSource("over"), zap.NewNop())
	s.seed([]Entry{{ID: "e1", Item: catalog.ItemRecord{ID: "plate", Name: "Plate", Price: 5000}, Quantity: 1}})
	require.Equal(t, 5000, s.total)

	assert.False(t, s.add(catalog.ItemRecord{ID: "nail", Name: "Nail", Price: 1}, 1))
	assert.Equal(t, 5000, s.total)
	assert.Len(t, s.entries, 1)
}

func TestProperty_Stocker_AddNeverExceedsCap(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		limit := rapid.IntRange(1, 10000).Draw(rt, "limit")
		s := newStocker(limit, DefaultBudgetOverflow, dice.NewSeededSource("cap"), zap.NewNop())
		n := rapid.IntRange(0, 30).Draw(rt, "n")
		for i := 0; i < n; i++ {
			item := catalog.ItemRecord{
				ID:    rapid.StringMatching(`[a-z]{1,6}`).Draw(rt, "id"),
				Name:  "x",
				Price: rapid.IntRange(0, 2000).Draw(rt, "price"),
			}
			before := s.total
			added := s.add(item, rapid.IntRange(1, 10).Draw(rt, "qty"))
			if added {
				assert.LessOrEqual(rt, float64(s.total), float64(limit)*DefaultBudgetOverflow)
			} else {
				assert.Equal(rt, before, s.total)
			}
		}
	})
}
