package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Wildcard in an allow-list matches every category.
const Wildcard = "*"

// ShopTypeConfig describes which categories a shop type stocks.
type ShopTypeConfig struct {
	ID string `yaml:"id" mapstructure:"id"`
	// ItemTypes is the allow-list checked for non-equipment records.
	ItemTypes []string `yaml:"item_types" mapstructure:"item_types"`
	// EquipmentTypes is the allow-list checked for equipment records.
	EquipmentTypes []string `yaml:"equipment_types" mapstructure:"equipment_types"`
	// AllowVariety permits off-category variety stock.
	AllowVariety bool `yaml:"allow_variety" mapstructure:"allow_variety"`
}

// AcceptsAllItems reports whether ItemTypes contains the wildcard.
func (c ShopTypeConfig) AcceptsAllItems() bool {
	return containsFold(c.ItemTypes, Wildcard)
}

// AcceptsAllEquipment reports whether EquipmentTypes contains the wildcard.
func (c ShopTypeConfig) AcceptsAllEquipment() bool {
	return containsFold(c.EquipmentTypes, Wildcard)
}

// Accepts reports whether rec's category is on the relevant allow-list.
// Records lacking a category tag are accepted only when that list is wildcarded.
func (c ShopTypeConfig) Accepts(rec ItemRecord) bool {
	list := c.ItemTypes
	if rec.IsEquipment() {
		list = c.EquipmentTypes
	}
	if containsFold(list, Wildcard) {
		return true
	}
	cat := rec.Category()
	if cat == "" {
		return false
	}
	return containsFold(list, cat)
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(strings.TrimSpace(v), s) {
			return true
		}
	}
	return false
}

// builtinShopTypes are the shop types available without configuration.
var builtinShopTypes = map[string]ShopTypeConfig{
	"general": {
		ID:             "general",
		ItemTypes:      []string{Wildcard},
		EquipmentTypes: []string{Wildcard},
		AllowVariety:   false,
	},
	"blacksmith": {
		ID:             "blacksmith",
		ItemTypes:      []string{},
		EquipmentTypes: []string{"weapon", "armor", "shield", "tool"},
		AllowVariety:   true,
	},
	"alchemist": {
		ID:             "alchemist",
		ItemTypes:      []string{"potion", "poison", "consumable"},
		EquipmentTypes: []string{"adventuring gear"},
		AllowVariety:   true,
	},
	"magic": {
		ID:             "magic",
		ItemTypes:      []string{"wondrous", "ring", "wand", "staff", "rod", "scroll", "potion"},
		EquipmentTypes: []string{},
		AllowVariety:   true,
	},
	"fletcher": {
		ID:             "fletcher",
		ItemTypes:      []string{"ammunition"},
		EquipmentTypes: []string{"weapon"},
		AllowVariety:   true,
	},
	"jeweler": {
		ID:             "jeweler",
		ItemTypes:      []string{"ring", "wondrous", "trade good"},
		EquipmentTypes: []string{},
		AllowVariety:   true,
	},
	"tavern": {
		ID:             "tavern",
		ItemTypes:      []string{"food", "consumable"},
		EquipmentTypes: []string{},
		AllowVariety:   true,
	},
}

// ShopTypes resolves shop type identifiers to their configuration. Overrides
// replace or extend the built-in set.
type ShopTypes struct {
	types map[string]ShopTypeConfig
}

// NewShopTypes returns the built-in shop types with overrides applied.
func NewShopTypes(overrides ...ShopTypeConfig) *ShopTypes {
	st := &ShopTypes{types: make(map[string]ShopTypeConfig, len(builtinShopTypes)+len(overrides))}
	for id, cfg := range builtinShopTypes {
		st.types[id] = cfg
	}
	for _, cfg := range overrides {
		st.types[strings.ToLower(cfg.ID)] = cfg
	}
	return st
}

// Lookup returns the configuration for id.
//
// Postcondition: returns an error iff id is unknown.
func (s *ShopTypes) Lookup(id string) (ShopTypeConfig, error) {
	cfg, ok := s.types[strings.ToLower(id)]
	if !ok {
		return ShopTypeConfig{}, fmt.Errorf("catalog: unknown shop type %q", id)
	}
	return cfg, nil
}

// IDs returns every known shop type identifier, sorted.
func (s *ShopTypes) IDs() []string {
	out := make([]string, 0, len(s.types))
	for id := range s.types {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
