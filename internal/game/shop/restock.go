package shop

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/cory-johannsen/hoard/internal/game/catalog"
	"github.com/cory-johannsen/hoard/internal/game/dice"
)

// intensityRates holds the per-intensity churn parameters.
type intensityRates struct {
	removal   float64
	reduction float64
	reduceMin float64
	reduceMax float64
}

var intensities = map[Intensity]intensityRates{
	Light:  {removal: 0.20, reduction: 0.30, reduceMin: 0.30, reduceMax: 0.60},
	Medium: {removal: 0.35, reduction: 0.45, reduceMin: 0.40, reduceMax: 0.70},
	Heavy:  {removal: 0.50, reduction: 0.60, reduceMin: 0.50, reduceMax: 0.80},
}

// removalMultiplier scales removal probability: common stock sells fastest.
var removalMultiplier = map[catalog.Rarity]float64{
	catalog.Common:    1.5,
	catalog.Uncommon:  1.2,
	catalog.Rare:      1.0,
	catalog.VeryRare:  0.7,
	catalog.Legendary: 0.5,
}

// replenishFactor scales the number of slots refilled after sales.
const replenishFactor = 1.2

func ratesFor(i Intensity) intensityRates {
	if r, ok := intensities[i]; ok {
		return r
	}
	return intensities[Medium]
}

// RestockResult is the evolved inventory and what changed.
type RestockResult struct {
	Entries      []Entry `yaml:"entries"`
	RemovedCount int     `yaml:"removed_count"`
	AddedCount   int     `yaml:"added_count"`
	ReducedCount int     `yaml:"reduced_count"`
}

// Mutator evolves existing inventories.
type Mutator struct {
	base
}

// NewMutator creates a Mutator reading replacement items from provider.
//
// Precondition: provider must be non-nil. A nil logger discards logs.
func NewMutator(provider catalog.Provider, logger *zap.Logger, opts ...Option) *Mutator {
	return &Mutator{base: newBase(provider, logger, opts)}
}

// Restock simulates sales since the last visit and refills the shelves in
// three passes: removal, reduction, and replenishment. Staple entries are
// never removed and are reduced at half the rate by the minimum fraction.
//
// Postcondition: inv is not modified; no returned entry has a negative quantity.
func (m *Mutator) Restock(ctx context.Context, inv Inventory, p RestockParams) (RestockResult, error) {
	items, cfg, err := m.load(ctx, inv.ShopType)
	if err != nil {
		return RestockResult{}, err
	}
	src := sourceFor(p.Seed)
	rates := ratesFor(p.Intensity)
	original := inv.Entries

	survivors := m.removalPass(original, cfg.ID, rates, src)
	reduced := m.reductionPass(survivors, cfg.ID, rates, src)

	lo, hi := m.replenishWindow(original, p)
	st := newStocker(p.Budget, m.tuning.BudgetOverflow, src, m.logger)
	st.seed(survivors)
	before := len(st.entries)

	for _, item := range catalog.FilterByRarity(catalog.StapleItems(cfg.ID, items), lo, hi) {
		if !st.has(item) {
			st.add(item, catalog.CalculateQuantity(item.Rarity, src))
		}
	}

	slots := int(math.Ceil(float64(len(original)-len(st.entries)) * replenishFactor))
	if slots > 0 {
		matched := catalog.FilterByShopTypeChance(items, cfg, true, m.tuning.VarietyChance, src)
		matched = catalog.FilterByRarity(matched, lo, hi)
		pool := make([]catalog.ItemRecord, 0, len(matched))
		for _, item := range matched {
			if !st.has(item) {
				pool = append(pool, item)
			}
		}
		dice.Shuffle(src, len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		filled := 0
		for _, item := range pool {
			if filled >= slots {
				break
			}
			if st.add(item, catalog.CalculateQuantity(item.Rarity, src)) {
				filled++
			}
		}
	}

	res := RestockResult{
		Entries:      st.entries,
		RemovedCount: len(original) - len(survivors),
		ReducedCount: reduced,
		AddedCount:   len(st.entries) - before,
	}
	m.logger.Info("inventory restocked",
		zap.String("shop_type", cfg.ID),
		zap.String("intensity", string(p.Intensity)),
		zap.Int("removed", res.RemovedCount),
		zap.Int("reduced", res.ReducedCount),
		zap.Int("added", res.AddedCount),
		zap.Int("items", len(res.Entries)),
	)
	return res, nil
}

// removalPass drops non-staple entries with probability
// rates.removal * removalMultiplier[rarity].
func (m *Mutator) removalPass(entries []Entry, shopType string, rates intensityRates, src dice.Source) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Item.IsStapleFor(shopType) {
			out = append(out, e)
			continue
		}
		p := rates.removal * removalMultiplier[e.Item.Rarity.Resolve()]
		if dice.Chance(src, p) {
			m.logger.Debug("entry sold out", zap.String("item", e.Item.Key()))
			continue
		}
		out = append(out, e)
	}
	return out
}

// reductionPass shrinks quantities in place and returns how many entries changed.
func (m *Mutator) reductionPass(entries []Entry, shopType string, rates intensityRates, src dice.Source) int {
	changed := 0
	for i := range entries {
		e := &entries[i]
		if e.Quantity < 0 {
			e.Quantity = 0
		}
		if e.Quantity <= 1 {
			continue
		}
		staple := e.Item.IsStapleFor(shopType)
		p := rates.reduction
		if staple {
			p /= 2
		}
		if !dice.Chance(src, p) {
			continue
		}
		fraction := rates.reduceMin
		if !staple {
			fraction = rates.reduceMin + src.Float64()*(rates.reduceMax-rates.reduceMin)
		}
		qty := max(int(math.Floor(float64(e.Quantity)*(1-fraction))), 1)
		if qty != e.Quantity {
			e.Quantity = qty
			changed++
		}
	}
	return changed
}

// replenishWindow returns the explicit window from p, or one rarity step
// beyond the bounds observed in the original stock.
func (m *Mutator) replenishWindow(original []Entry, p RestockParams) (catalog.Rarity, catalog.Rarity) {
	if p.MinRarity != "" || p.MaxRarity != "" {
		return window(p.MinRarity, p.MaxRarity)
	}
	recs := make([]catalog.ItemRecord, len(original))
	for i, e := range original {
		recs[i] = e.Item
	}
	lo, hi, ok := catalog.RarityBounds(recs)
	if !ok {
		return catalog.Common, catalog.Legendary
	}
	return lo.Step(-1), hi.Step(1)
}
