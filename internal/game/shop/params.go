package shop

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/cory-johannsen/hoard/internal/game/catalog"
	"github.com/cory-johannsen/hoard/internal/game/dice"
)

// SizeRange bounds the number of entries a generated inventory targets.
type SizeRange struct {
	MinItems int `yaml:"min_items" validate:"gte=0"`
	MaxItems int `yaml:"max_items" validate:"gte=0,gtefield=MinItems"`
}

// Params configures Builder.Generate.
type Params struct {
	ShopType string `yaml:"shop_type" validate:"required"`
	// Budget is the soft ceiling in copper; 0 is unlimited.
	Budget int       `yaml:"budget" validate:"gte=0"`
	Size   SizeRange `yaml:"size"`

	MinRarity catalog.Rarity `yaml:"min_rarity,omitempty" validate:"omitempty,oneof=common uncommon rare very-rare legendary"`
	MaxRarity catalog.Rarity `yaml:"max_rarity,omitempty" validate:"omitempty,oneof=common uncommon rare very-rare legendary"`

	IncludeStapleItems bool `yaml:"include_staple_items"`
	// Seed makes the build reproducible; empty uses an unseeded source.
	Seed string `yaml:"seed,omitempty"`
}

// Intensity selects how aggressively a restock churns stock.
type Intensity string

// Restock intensities.
const (
	Light  Intensity = "light"
	Medium Intensity = "medium"
	Heavy  Intensity = "heavy"
)

// RestockParams configures Mutator.Restock.
type RestockParams struct {
	Intensity Intensity `yaml:"intensity" validate:"omitempty,oneof=light medium heavy"`
	// Budget is the soft ceiling in copper for the resulting inventory; 0 is unlimited.
	Budget int `yaml:"budget" validate:"gte=0"`

	// MinRarity and MaxRarity set the replenishment window. When both are
	// empty the window is inferred from the current stock.
	MinRarity catalog.Rarity `yaml:"min_rarity,omitempty" validate:"omitempty,oneof=common uncommon rare very-rare legendary"`
	MaxRarity catalog.Rarity `yaml:"max_rarity,omitempty" validate:"omitempty,oneof=common uncommon rare very-rare legendary"`

	Seed string `yaml:"seed,omitempty"`
}

var validate = validator.New()

// Validate performs structural validation for callers handling user input.
func (p Params) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid shop params: %w", err)
	}
	return nil
}

// Validate performs structural validation for callers handling user input.
func (p RestockParams) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid restock params: %w", err)
	}
	return nil
}

func sourceFor(seed string) dice.Source {
	if seed == "" {
		return dice.NewSource()
	}
	return dice.NewSeededSource(seed)
}

// window resolves an optional rarity window, defaulting each bound to the
// full range and swapping an inverted window.
func window(minR, maxR catalog.Rarity) (catalog.Rarity, catalog.Rarity) {
	lo, hi := catalog.Common, catalog.Legendary
	if minR != "" {
		lo = minR.Resolve()
	}
	if maxR != "" {
		hi = maxR.Resolve()
	}
	if catalog.CompareRarity(lo, hi) > 0 {
		lo, hi = hi, lo
	}
	return lo, hi
}
