package shop

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/hoard/internal/game/catalog"
	"github.com/cory-johannsen/hoard/internal/game/dice"
)

// ErrUnknownShopType is returned when a shop type has no configuration.
var ErrUnknownShopType = errors.New("unknown shop type")

// base holds the collaborators shared by Builder and Mutator.
type base struct {
	catalog   catalog.Provider
	shopTypes *catalog.ShopTypes
	tuning    Tuning
	logger    *zap.Logger
}

// Option configures a Builder or Mutator.
type Option func(*base)

// WithTuning overrides the variety and budget constants.
func WithTuning(t Tuning) Option {
	return func(b *base) { b.tuning = t }
}

// WithShopTypes overrides the shop type configuration.
func WithShopTypes(st *catalog.ShopTypes) Option {
	return func(b *base) { b.shopTypes = st }
}

func newBase(provider catalog.Provider, logger *zap.Logger, opts []Option) base {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := base{
		catalog:   provider,
		shopTypes: catalog.NewShopTypes(),
		tuning:    DefaultTuning(),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b base) load(ctx context.Context, shopType string) ([]catalog.ItemRecord, catalog.ShopTypeConfig, error) {
	cfg, err := b.shopTypes.Lookup(shopType)
	if err != nil {
		return nil, catalog.ShopTypeConfig{}, fmt.Errorf("%w: %q", ErrUnknownShopType, shopType)
	}
	items, err := b.catalog.ListAll(ctx)
	if err != nil {
		return nil, catalog.ShopTypeConfig{}, fmt.Errorf("listing catalog: %w", err)
	}
	if len(items) == 0 {
		b.logger.Warn("catalog is empty", zap.String("shop_type", shopType))
	}
	return items, cfg, nil
}

// Result is a generated inventory.
type Result struct {
	Entries []Entry `yaml:"entries"`
	// TotalValue is in copper.
	TotalValue int `yaml:"total_value"`
	ItemCount  int `yaml:"item_count"`
}

// Builder assembles new shop inventories.
type Builder struct {
	base
}

// NewBuilder creates a Builder reading items from provider.
//
// Precondition: provider must be non-nil. A nil logger discards logs.
func NewBuilder(provider catalog.Provider, logger *zap.Logger, opts ...Option) *Builder {
	return &Builder{base: newBase(provider, logger, opts)}
}

// Generate builds a fresh inventory. Staples are stocked first when
// requested, then shuffled shop-type and rarity matches until a random target
// in [Size.MinItems, Size.MaxItems] is reached or the pool runs out.
//
// The budget is a greedy soft ceiling, not an optimal packing.
// Postcondition: when p.Budget > 0, TotalValue <= p.Budget * BudgetOverflow.
// An empty catalog or filter yields a partial result, not an error.
func (b *Builder) Generate(ctx context.Context, p Params) (Result, error) {
	items, cfg, err := b.load(ctx, p.ShopType)
	if err != nil {
		return Result{}, err
	}

	src := sourceFor(p.Seed)
	lo, hi := window(p.MinRarity, p.MaxRarity)
	st := newStocker(p.Budget, b.tuning.BudgetOverflow, src, b.logger)

	if p.IncludeStapleItems {
		for _, item := range catalog.FilterByRarity(catalog.StapleItems(cfg.ID, items), lo, hi) {
			st.add(item, catalog.CalculateQuantity(item.Rarity, src))
		}
	}

	matched := catalog.FilterByShopTypeChance(items, cfg, true, b.tuning.VarietyChance, src)
	matched = catalog.FilterByRarity(matched, lo, hi)
	pool := make([]catalog.ItemRecord, 0, len(matched))
	for _, item := range matched {
		if !st.has(item) {
			pool = append(pool, item)
		}
	}
	if len(pool) == 0 {
		b.logger.Warn("no catalog items match shop filters",
			zap.String("shop_type", cfg.ID),
			zap.String("min_rarity", string(lo)),
			zap.String("max_rarity", string(hi)),
			zap.Int("staples", len(st.entries)),
		)
	}

	target := dice.IntRange(src, max(p.Size.MinItems, 0), max(p.Size.MaxItems, 0))
	dice.Shuffle(src, len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	for _, item := range pool {
		if len(st.entries) >= target {
			break
		}
		st.add(item, catalog.CalculateQuantity(item.Rarity, src))
	}

	b.logger.Info("inventory generated",
		zap.String("shop_type", cfg.ID),
		zap.Int("target", target),
		zap.Int("items", len(st.entries)),
		zap.String("total_value", catalog.FormatPrice(st.total)),
		zap.Int("budget", p.Budget),
	)
	return Result{Entries: st.entries, TotalValue: st.total, ItemCount: len(st.entries)}, nil
}
