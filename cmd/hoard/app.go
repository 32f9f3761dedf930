package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/hoard/internal/config"
	"github.com/cory-johannsen/hoard/internal/game/catalog"
	"github.com/cory-johannsen/hoard/internal/game/loot"
	"github.com/cory-johannsen/hoard/internal/game/shop"
	"github.com/cory-johannsen/hoard/internal/game/treasure"
	"github.com/cory-johannsen/hoard/internal/observability"
	"github.com/cory-johannsen/hoard/internal/storage/postgres"
)

var errUsage = errors.New("usage")

// env is everything a subcommand needs once configuration is loaded.
type env struct {
	cfg       config.Config
	logger    *zap.Logger
	catalog   catalog.Provider
	shopTypes *catalog.ShopTypes
	close     func()
}

// run parses global flags, dispatches to a subcommand and writes its YAML
// result to out.
func run(ctx context.Context, args []string, out io.Writer) error {
	global := flag.NewFlagSet("hoard", flag.ContinueOnError)
	configPath := global.String("config", "", "path to configuration file (defaults and HOARD_* env when empty)")
	catalogDir := global.String("catalog", "", "override catalog.dir and force the yaml catalog source")
	if err := global.Parse(args); err != nil {
		return errUsage
	}
	rest := global.Args()
	if len(rest) == 0 {
		return errUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *catalogDir != "" {
		cfg.Catalog.Source = config.SourceYAML
		cfg.Catalog.Dir = *catalogDir
	}

	logger, err := observability.NewLogger(cfg.Logging, "hoard")
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cmd, cmdArgs := rest[0], rest[1:]
	if cmd == "types" {
		return encode(out, catalog.NewShopTypes(cfg.Catalog.ShopTypes...).IDs())
	}

	e, err := newEnv(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer e.close()

	switch cmd {
	case "loot":
		return runLoot(ctx, e, cmdArgs, out)
	case "shop":
		return runShop(ctx, e, cmdArgs, out)
	case "restock":
		return runRestock(ctx, e, cmdArgs, out)
	default:
		return errUsage
	}
}

// newEnv opens the configured catalog source.
func newEnv(ctx context.Context, cfg config.Config, logger *zap.Logger) (*env, error) {
	e := &env{
		cfg:       cfg,
		logger:    logger,
		shopTypes: catalog.NewShopTypes(cfg.Catalog.ShopTypes...),
		close:     func() {},
	}

	start := time.Now()
	switch cfg.Catalog.Source {
	case config.SourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		e.catalog = postgres.NewCatalogRepository(pool.DB())
		e.close = pool.Close
		logger.Info("database connected",
			zap.String("host", cfg.Database.Host),
			zap.Duration("elapsed", time.Since(start)),
		)
	default:
		reg, err := catalog.LoadRegistry(cfg.Catalog.Dir)
		if err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}
		e.catalog = reg
		logger.Info("catalog loaded",
			zap.String("dir", cfg.Catalog.Dir),
			zap.Int("items", reg.Len()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
	return e, nil
}

func (e *env) shopOptions() []shop.Option {
	return []shop.Option{
		shop.WithTuning(e.cfg.Generation.Tuning()),
		shop.WithShopTypes(e.shopTypes),
	}
}

// floatPtrFlag sets a *float64 only when the flag is given.
type floatPtrFlag struct{ p **float64 }

func (f floatPtrFlag) String() string {
	if f.p == nil || *f.p == nil {
		return ""
	}
	return strconv.FormatFloat(**f.p, 'g', -1, 64)
}

func (f floatPtrFlag) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f.p = &v
	return nil
}

func runLoot(ctx context.Context, e *env, args []string, out io.Writer) error {
	var p loot.Params
	fs := flag.NewFlagSet("loot", flag.ContinueOnError)
	fs.StringVar(&p.Seed, "seed", "", "seed for reproducible output")
	lootType := fs.String("type", string(treasure.Individual), "loot type: individual or hoard")
	fs.Var(floatPtrFlag{&p.ChallengeRating}, "cr", "challenge rating")
	fs.IntVar(&p.ExperiencePoints, "xp", 0, "encounter experience points, used when -cr is absent")
	fs.IntVar(&p.CoinPercentage, "coins", 100, "coin percentage")
	minRarity := fs.String("min-rarity", "", "lowest magic item rarity")
	maxRarity := fs.String("max-rarity", "", "highest magic item rarity")
	fs.IntVar(&p.ConsumablePercentage, "consumables", 0, "chance per magic item of drawing a consumable")
	fs.BoolVar(&p.LowMagic, "low-magic", false, "halve magic item counts")
	fs.BoolVar(&p.AutoIdentify, "identify", false, "identify every magic item")
	fs.BoolVar(&p.IncludeEquipment, "equipment", false, "include mundane equipment in hoards")
	fs.BoolVar(&p.IncludeMundane, "mundane", false, "include mundane trinkets in hoards")
	fs.BoolVar(&p.EnableSalvage, "salvage", false, "include harvestable salvage")
	fs.StringVar(&p.MonsterType, "monster", "", "monster type for salvage")
	fs.BoolVar(&p.IncludeEncumbrance, "encumbrance", false, "compute total weight")
	fs.StringVar(&p.ContainerType, "container", "", "container type")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	p.LootType = treasure.LootType(*lootType)
	p.MinRarity = rarityArg(*minRarity)
	p.MaxRarity = rarityArg(*maxRarity)
	if err := p.Validate(); err != nil {
		return err
	}

	bundle, err := loot.NewEngine(e.catalog, e.logger).Generate(ctx, p)
	if err != nil {
		return err
	}
	return encode(out, bundle)
}

func runShop(ctx context.Context, e *env, args []string, out io.Writer) error {
	var p shop.Params
	fs := flag.NewFlagSet("shop", flag.ContinueOnError)
	fs.StringVar(&p.ShopType, "type", "general", "shop type")
	fs.IntVar(&p.Budget, "budget", 0, "soft budget in copper, 0 for unlimited")
	fs.IntVar(&p.Size.MinItems, "min-items", 10, "minimum number of entries")
	fs.IntVar(&p.Size.MaxItems, "max-items", 20, "maximum number of entries")
	minRarity := fs.String("min-rarity", "", "lowest rarity stocked")
	maxRarity := fs.String("max-rarity", "", "highest rarity stocked")
	fs.BoolVar(&p.IncludeStapleItems, "staples", true, "always stock staple items")
	fs.StringVar(&p.Seed, "seed", "", "seed for reproducible output")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	p.MinRarity = rarityArg(*minRarity)
	p.MaxRarity = rarityArg(*maxRarity)
	if err := p.Validate(); err != nil {
		return err
	}

	res, err := shop.NewBuilder(e.catalog, e.logger, e.shopOptions()...).Generate(ctx, p)
	if err != nil {
		return err
	}
	return encode(out, shop.Inventory{ShopType: p.ShopType, Entries: res.Entries})
}

func runRestock(ctx context.Context, e *env, args []string, out io.Writer) error {
	var p shop.RestockParams
	fs := flag.NewFlagSet("restock", flag.ContinueOnError)
	inventoryPath := fs.String("inventory", "", "YAML inventory file to restock (required)")
	intensity := fs.String("intensity", string(shop.Medium), "restock intensity: light, medium or heavy")
	fs.IntVar(&p.Budget, "budget", 0, "soft budget in copper for the whole inventory, 0 for unlimited")
	minRarity := fs.String("min-rarity", "", "lowest rarity restocked")
	maxRarity := fs.String("max-rarity", "", "highest rarity restocked")
	fs.StringVar(&p.Seed, "seed", "", "seed for reproducible output")
	if err := fs.Parse(args); err != nil || *inventoryPath == "" {
		return errUsage
	}
	p.Intensity = shop.Intensity(*intensity)
	p.MinRarity = rarityArg(*minRarity)
	p.MaxRarity = rarityArg(*maxRarity)
	if err := p.Validate(); err != nil {
		return err
	}

	data, err := os.ReadFile(*inventoryPath)
	if err != nil {
		return fmt.Errorf("reading inventory: %w", err)
	}
	var inv shop.Inventory
	if err := yaml.Unmarshal(data, &inv); err != nil {
		return fmt.Errorf("parsing inventory %s: %w", *inventoryPath, err)
	}

	res, err := shop.NewMutator(e.catalog, e.logger, e.shopOptions()...).Restock(ctx, inv, p)
	if err != nil {
		return err
	}
	e.logger.Info("restock summary",
		zap.Int("removed", res.RemovedCount),
		zap.Int("reduced", res.ReducedCount),
		zap.Int("added", res.AddedCount),
	)
	return encode(out, shop.Inventory{ShopType: inv.ShopType, Entries: res.Entries})
}

// rarityArg normalises spellings such as "very rare"; anything unparseable is
// passed through for Validate to reject.
func rarityArg(s string) catalog.Rarity {
	if r, ok := catalog.ParseRarity(s); ok {
		return r
	}
	return catalog.Rarity(s)
}

func encode(out io.Writer, v any) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return enc.Close()
}
