package loot

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/cory-johannsen/hoard/internal/game/catalog"
	"github.com/cory-johannsen/hoard/internal/game/treasure"
)

// Params configures one Generate call.
type Params struct {
	// Seed makes the bundle reproducible. Empty draws a time-derived seed that
	// the bundle records.
	Seed     string            `yaml:"seed,omitempty"`
	LootType treasure.LootType `yaml:"loot_type" validate:"omitempty,oneof=individual hoard"`

	// ChallengeRating selects the tier; nil falls back to ExperiencePoints.
	ChallengeRating  *float64 `yaml:"challenge_rating,omitempty" validate:"omitempty,gte=0"`
	ExperiencePoints int      `yaml:"experience_points,omitempty" validate:"gte=0"`

	// CoinPercentage scales the coin roll; 100 keeps it unchanged.
	CoinPercentage int `yaml:"coin_percentage" validate:"gte=0,lte=1000"`

	MinRarity catalog.Rarity `yaml:"min_rarity,omitempty" validate:"omitempty,oneof=common uncommon rare very-rare legendary"`
	MaxRarity catalog.Rarity `yaml:"max_rarity,omitempty" validate:"omitempty,oneof=common uncommon rare very-rare legendary"`

	// ConsumablePercentage is the chance, per magic item, of drawing from consumables.
	ConsumablePercentage int `yaml:"consumable_percentage" validate:"gte=0,lte=100"`

	LowMagic           bool   `yaml:"low_magic,omitempty"`
	AutoIdentify       bool   `yaml:"auto_identify,omitempty"`
	IncludeEquipment   bool   `yaml:"include_equipment,omitempty"`
	IncludeMundane     bool   `yaml:"include_mundane,omitempty"`
	EnableSalvage      bool   `yaml:"enable_salvage,omitempty"`
	MonsterType        string `yaml:"monster_type,omitempty"`
	IncludeEncumbrance bool   `yaml:"include_encumbrance,omitempty"`
	ContainerType      string `yaml:"container_type,omitempty"`
}

var validate = validator.New()

// Validate performs structural validation for callers that accept params from
// user input. Generate does not call it; it clamps instead.
func (p Params) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid loot params: %w", err)
	}
	return nil
}

// rarityWindow returns the resolved [min, max] window, defaulting to the full
// range and swapping an inverted window.
func (p Params) rarityWindow() (catalog.Rarity, catalog.Rarity) {
	lo, hi := catalog.Common, catalog.Legendary
	if p.MinRarity != "" {
		lo = p.MinRarity.Resolve()
	}
	if p.MaxRarity != "" {
		hi = p.MaxRarity.Resolve()
	}
	if catalog.CompareRarity(lo, hi) > 0 {
		lo, hi = hi, lo
	}
	return lo, hi
}

func (p Params) lootType() treasure.LootType {
	if p.LootType == treasure.Hoard {
		return treasure.Hoard
	}
	return treasure.Individual
}
