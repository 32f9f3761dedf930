// Package loot generates one-shot treasure bundles from the treasure tables
// and a catalog snapshot.
package loot

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/hoard/internal/game/catalog"
	"github.com/cory-johannsen/hoard/internal/game/dice"
	"github.com/cory-johannsen/hoard/internal/game/treasure"
)

// Per-unit weights in pounds.
const (
	coinsPerPound    = 50
	gemWeight        = 0.01
	artWeight        = 2
	magicItemWeight  = 1
	equipmentWeight  = 5
	mundaneWeight    = 0.5
	salvageWeight    = 1
	maxEquipmentRoll = 4
	maxSalvageRoll   = 3
	identifiedChance = 0.5
)

// Engine generates treasure bundles.
//
// An Engine holds no per-call state and may serve concurrent Generate calls.
type Engine struct {
	catalog catalog.Provider
	logger  *zap.Logger
	now     func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the clock used for bundle timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an Engine reading items from provider.
//
// Precondition: provider must be non-nil. A nil logger discards logs.
func NewEngine(provider catalog.Provider, logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{catalog: provider, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate builds one treasure bundle.
//
// Postcondition: identical params with the same non-empty Seed against the
// same catalog and clock yield identical bundles. The only error is a catalog
// provider failure; an empty catalog omits magic items silently.
func (e *Engine) Generate(ctx context.Context, p Params) (Bundle, error) {
	items, err := e.catalog.ListAll(ctx)
	if err != nil {
		return Bundle{}, fmt.Errorf("listing catalog: %w", err)
	}

	seed := p.Seed
	if seed == "" {
		seed = dice.TimeSeed()
	}
	src := dice.NewSeededSource(seed)
	roller := dice.NewLoggedRoller(src, e.logger)

	id, err := uuid.NewRandomFromReader(dice.Reader(src))
	if err != nil {
		return Bundle{}, fmt.Errorf("generating bundle id: %w", err)
	}

	tier := treasure.ResolveTier(p.ChallengeRating, p.ExperiencePoints)
	lootType := p.lootType()
	tables := treasure.Tables(tier)

	b := Bundle{ID: id.String()}

	coinGold := rollCoins(&b, tables.Coins[lootType], p.CoinPercentage, roller)

	if lootType == treasure.Hoard {
		b.Gems = rollGems(tables.Gems, roller)
		b.Art = rollArt(tables.Art, roller)
	}

	b.MagicItems = e.rollMagic(tables.Magic[lootType], items, p, roller)

	if lootType == treasure.Hoard && p.IncludeEquipment && dice.Chance(src, treasure.EquipmentChance) {
		b.Equipment = rollEquipment(tier, items, p, src)
	}
	if lootType == treasure.Hoard && p.IncludeMundane && dice.Chance(src, treasure.MundaneChance) {
		b.Mundane = rollMundane(roller)
	}
	if p.EnableSalvage {
		b.Salvage = rollSalvage(p.MonsterType, src)
	}

	b.TotalValue = int(math.Round(totalValue(b, coinGold)))
	if p.IncludeEncumbrance {
		b.TotalWeight = totalWeight(b)
	}

	container := p.ContainerType
	if container == "" {
		container = treasure.DefaultContainer
	}
	b.Container = treasure.ContainerDescription(container, src)

	echo := p
	echo.Seed = seed
	b.Metadata = Metadata{
		Seed:          seed,
		Tier:          tier,
		TablesVersion: treasure.TablesVersion,
		Params:        echo,
		GeneratedAt:   e.now().UTC(),
	}

	e.logger.Debug("loot generated",
		zap.String("seed", seed),
		zap.String("tier", string(tier)),
		zap.String("loot_type", string(lootType)),
		zap.Int("coins", b.Coins),
		zap.Int("gems", b.GemCount()),
		zap.Int("art", len(b.Art)),
		zap.Int("magic_items", len(b.MagicItems)),
		zap.Int("total_value", b.TotalValue),
	)
	return b, nil
}

// rollCoins fills the coin stacks and total and returns the unrounded gold value.
func rollCoins(b *Bundle, formulas []treasure.CoinFormula, percentage int, roller *dice.Roller) float64 {
	scale := float64(max(percentage, 0)) / 100
	var gold float64
	for _, f := range formulas {
		count := roller.RollNotation(f.Dice) * f.Multiplier
		if count == 0 {
			continue
		}
		gold += treasure.ToGold(f.Denomination, count)
		scaled := int(math.Round(float64(count) * scale))
		if scaled > 0 {
			b.CoinStacks = append(b.CoinStacks, CoinStack{Denomination: f.Denomination, Count: scaled})
		}
	}
	gold *= scale
	b.Coins = int(math.Round(gold))
	return gold
}

// rollGems draws gem instances and groups identical descriptions.
func rollGems(entries []treasure.Entry, roller *dice.Roller) []Gem {
	entry, ok := treasure.Roll(entries, roller.Source())
	if !ok || entry.Value == 0 {
		return nil
	}
	n := roller.RollNotation(entry.Dice)
	var gems []Gem
	index := make(map[string]int)
	for i := 0; i < n; i++ {
		desc := treasure.GemDescription(entry.Value, roller.Source())
		if at, seen := index[desc]; seen {
			gems[at].Quantity++
			continue
		}
		index[desc] = len(gems)
		gems = append(gems, Gem{Value: entry.Value, Description: desc, Quantity: 1})
	}
	return gems
}

func rollArt(entries []treasure.Entry, roller *dice.Roller) []ArtObject {
	entry, ok := treasure.Roll(entries, roller.Source())
	if !ok || entry.Value == 0 {
		return nil
	}
	n := roller.RollNotation(entry.Dice)
	art := make([]ArtObject, 0, n)
	for i := 0; i < n; i++ {
		art = append(art, ArtObject{
			Value:       entry.Value,
			Description: treasure.ArtDescription(entry.Value, roller.Source()),
		})
	}
	return art
}

func (e *Engine) rollMagic(entries []treasure.MagicEntry, items []catalog.ItemRecord, p Params, roller *dice.Roller) []MagicItem {
	src := roller.Source()
	entry, ok := treasure.Roll(entries, src)
	if !ok {
		return nil
	}
	count := roller.RollNotation(entry.Rolls)
	if count <= 0 {
		return nil
	}
	if p.LowMagic {
		count = max(count/2, 1)
	}

	lo, hi := p.rarityWindow()
	_, general := catalog.FilterEquipment(catalog.FilterByRarity(items, lo, hi))
	consumables := catalog.FilterConsumables(general)

	var out []MagicItem
	for i := 0; i < count; i++ {
		pool := general
		if src.Float64()*100 < float64(p.ConsumablePercentage) && len(consumables) > 0 {
			pool = consumables
		}
		if len(pool) == 0 {
			continue
		}
		item := pool[src.Intn(len(pool))]
		identified := p.AutoIdentify || dice.Chance(src, identifiedChance)
		out = append(out, MagicItem{Item: item, Identified: identified, Table: entry.Table})
	}
	if len(out) < count {
		e.logger.Debug("magic items omitted: no catalog records in range",
			zap.String("table", entry.Table),
			zap.Int("requested", count),
			zap.Int("produced", len(out)),
		)
	}
	return out
}

// rollEquipment draws 1 to tier-index+1 items (at most four) from catalog
// equipment in the rarity window, falling back to the fixed equipment table.
func rollEquipment(tier treasure.Tier, items []catalog.ItemRecord, p Params, src dice.Source) []catalog.ItemRecord {
	n := dice.IntRange(src, 1, min(tier.Index()+1, maxEquipmentRoll))
	lo, hi := p.rarityWindow()
	pool, _ := catalog.FilterEquipment(catalog.FilterByRarity(items, lo, hi))
	out := make([]catalog.ItemRecord, 0, n)
	for i := 0; i < n; i++ {
		if len(pool) > 0 {
			out = append(out, pool[src.Intn(len(pool))])
			continue
		}
		row := treasure.RandomEquipment(src)
		out = append(out, catalog.ItemRecord{
			Name:          row.Name,
			Price:         row.Price,
			Rarity:        catalog.Common,
			EquipmentType: row.EquipmentType,
		})
	}
	return out
}

func rollMundane(roller *dice.Roller) []MundaneItem {
	n := roller.RollNotation("1d4")
	out := make([]MundaneItem, 0, n)
	for i := 0; i < n; i++ {
		row := treasure.RandomMundane(roller.Source())
		out = append(out, MundaneItem{
			Name:      row.Name,
			Quantity:  roller.RollNotation("1d6"),
			UnitValue: row.UnitValue,
		})
	}
	return out
}

// rollSalvage draws one to three distinct rows from the monster type's table.
func rollSalvage(monsterType string, src dice.Source) []SalvageMaterial {
	rows := append([]treasure.SalvageRow(nil), treasure.SalvageTable(monsterType)...)
	n := min(dice.IntRange(src, 1, maxSalvageRoll), len(rows))
	dice.Shuffle(src, len(rows), func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })
	out := make([]SalvageMaterial, 0, n)
	for _, row := range rows[:n] {
		out = append(out, SalvageMaterial{
			Name:        row.Name,
			Description: row.Description,
			Value:       row.Value,
			Tags:        append([]string(nil), row.Tags...),
			Difficulty:  row.Difficulty,
		})
	}
	return out
}

func totalValue(b Bundle, coinGold float64) float64 {
	total := coinGold
	for _, g := range b.Gems {
		total += float64(g.Value * g.Quantity)
	}
	for _, a := range b.Art {
		total += float64(a.Value)
	}
	for _, m := range b.MagicItems {
		total += float64(m.Item.Price) / catalog.CopperPerGold
	}
	for _, eq := range b.Equipment {
		total += float64(eq.Price) / catalog.CopperPerGold
	}
	for _, m := range b.Mundane {
		total += m.UnitValue * float64(m.Quantity)
	}
	for _, s := range b.Salvage {
		total += s.Value
	}
	return total
}

func totalWeight(b Bundle) float64 {
	w := float64(b.Coins) / coinsPerPound
	w += float64(b.GemCount()) * gemWeight
	w += float64(len(b.Art)) * artWeight
	w += float64(len(b.MagicItems)) * magicItemWeight
	w += float64(len(b.Equipment)) * equipmentWeight
	for _, m := range b.Mundane {
		w += mundaneWeight * float64(m.Quantity)
	}
	w += float64(len(b.Salvage)) * salvageWeight
	return math.Round(w*10) / 10
}
