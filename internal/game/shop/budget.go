package shop

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/hoard/internal/game/catalog"
	"github.com/cory-johannsen/hoard/internal/game/dice"
)

// Tuning holds the soft constants of the generators.
type Tuning struct {
	// VarietyChance is the probability an off-category item is stocked as variety.
	VarietyChance float64
	// BudgetOverflow is the factor by which a positive budget may be exceeded
	// before an item is rejected.
	BudgetOverflow float64
}

// DefaultBudgetOverflow lets a positive budget be exceeded by up to 20%.
const DefaultBudgetOverflow = 1.2

// DefaultTuning returns the standard constants.
func DefaultTuning() Tuning {
	return Tuning{
		VarietyChance:  catalog.DefaultVarietyChance,
		BudgetOverflow: DefaultBudgetOverflow,
	}
}

// stocker accumulates entries under a soft budget. Budget 0 is unlimited.
//
// Invariant: when limit > 0, add never raises total above limit * overflow.
// Entries passed to seed are kept as-is, so a seeded total may already exceed
// that cap, and then nothing further is added.
type stocker struct {
	limit    int
	overflow float64
	total    int
	entries  []Entry
	present  map[string]bool
	src      dice.Source
	logger   *zap.Logger
}

func newStocker(budget int, overflow float64, src dice.Source, logger *zap.Logger) *stocker {
	return &stocker{
		limit:    max(budget, 0),
		overflow: overflow,
		present:  make(map[string]bool),
		src:      src,
		logger:   logger,
	}
}

// seed starts the stocker from existing entries.
func (s *stocker) seed(entries []Entry) {
	for _, e := range entries {
		s.entries = append(s.entries, e)
		s.present[e.Item.Key()] = true
		s.total += e.Value()
	}
}

func (s *stocker) fits(cost int) bool {
	if s.limit == 0 {
		return true
	}
	return float64(s.total+cost) <= float64(s.limit)*s.overflow
}

// add stocks qty units of item. When the full quantity would break the
// budget it retries once at half quantity (at least 1) and otherwise skips.
//
// Postcondition: returns true iff an entry was appended.
func (s *stocker) add(item catalog.ItemRecord, qty int) bool {
	qty = max(qty, 1)
	if !s.fits(item.Price * qty) {
		half := max(qty/2, 1)
		if half == qty || !s.fits(item.Price*half) {
			s.logger.Debug("item skipped: over budget",
				zap.String("item", item.Key()),
				zap.Int("price", item.Price),
				zap.Int("quantity", qty),
				zap.Int("total", s.total),
				zap.Int("budget", s.limit),
			)
			return false
		}
		qty = half
	}
	id, err := uuid.NewRandomFromReader(dice.Reader(s.src))
	if err != nil {
		id = uuid.New()
	}
	s.entries = append(s.entries, Entry{ID: id.String(), Item: item, Quantity: qty})
	s.present[item.Key()] = true
	s.total += item.Price * qty
	return true
}

func (s *stocker) has(item catalog.ItemRecord) bool {
	return s.present[item.Key()]
}
