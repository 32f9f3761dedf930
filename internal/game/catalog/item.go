// Package catalog defines item records, the catalog provider abstraction, and
// the pure selection primitives the shop and treasure generators filter with.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ItemRecord is one catalog entry. Generators never modify records.
type ItemRecord struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description,omitempty"`
	// Price is the base price in copper, the smallest currency unit.
	Price  int    `yaml:"price"`
	Rarity Rarity `yaml:"rarity,omitempty"`
	// Type is the item-type tag, e.g. "potion", "wondrous", "ring".
	Type string `yaml:"type,omitempty"`
	// EquipmentType is set for equipment records, e.g. "weapon", "armor", "tool".
	EquipmentType string `yaml:"equipment_type,omitempty"`
	// Consumable marks records eligible for the consumable sub-filter even when
	// their Type is not a recognised consumable type.
	Consumable bool `yaml:"consumable,omitempty"`
	// StapleFor lists the shop types that always stock this item.
	StapleFor []string `yaml:"staple_for,omitempty"`
	Weight    float64  `yaml:"weight,omitempty"`
}

// consumableTypes are item types treated as consumables.
var consumableTypes = map[string]bool{
	"potion":     true,
	"scroll":     true,
	"ammunition": true,
	"consumable": true,
	"food":       true,
	"poison":     true,
}

// IsEquipment reports whether the record is equipment rather than a general item.
func (r ItemRecord) IsEquipment() bool {
	return r.EquipmentType != ""
}

// Category returns the category tag used for allow-list matching: the
// equipment type for equipment, the item type otherwise. It may be empty.
func (r ItemRecord) Category() string {
	if r.IsEquipment() {
		return strings.ToLower(r.EquipmentType)
	}
	return strings.ToLower(r.Type)
}

// IsConsumable reports whether the record belongs to the consumable sub-filter.
func (r ItemRecord) IsConsumable() bool {
	return r.Consumable || consumableTypes[strings.ToLower(r.Type)]
}

// IsStapleFor reports whether shopType always stocks this record.
func (r ItemRecord) IsStapleFor(shopType string) bool {
	if shopType == "" {
		return false
	}
	for _, s := range r.StapleFor {
		if strings.EqualFold(s, shopType) {
			return true
		}
	}
	return false
}

// Key returns the identity used for deduplication and presence checks: the ID,
// falling back to the name.
func (r ItemRecord) Key() string {
	if r.ID != "" {
		return r.ID
	}
	return r.Name
}

// Validate checks that the record satisfies its invariants.
//
// Postcondition: returns nil iff all fields are valid.
func (r *ItemRecord) Validate() error {
	var errs []error
	if r.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if r.Price < 0 {
		errs = append(errs, fmt.Errorf("Price must be >= 0; got %d", r.Price))
	}
	if r.Rarity != "" {
		if _, ok := ParseRarity(string(r.Rarity)); !ok {
			errs = append(errs, fmt.Errorf("Rarity must be one of common, uncommon, rare, very-rare, legendary; got %q", r.Rarity))
		}
	}
	if r.Weight < 0 {
		errs = append(errs, errors.New("Weight must be >= 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("item validation failed: %v", errs)
	}
	return nil
}

// itemFile is the on-disk layout: either a single record or a list under "items".
type itemFile struct {
	Items []ItemRecord `yaml:"items"`
}

// LoadItems reads all *.yaml and *.yml files from dir and returns the records
// they contain. A file holds either one record or a list under an "items" key.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid records with rarity normalised, or the
// first encountered error.
func LoadItems(dir string) ([]ItemRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadItems: cannot read directory %q: %w", dir, err)
	}

	var items []ItemRecord
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadItems: cannot read file %q: %w", path, err)
		}
		recs, err := ParseItems(data)
		if err != nil {
			return nil, fmt.Errorf("LoadItems: invalid file %q: %w", path, err)
		}
		items = append(items, recs...)
	}
	return items, nil
}

// ParseItems decodes YAML holding either one record or an "items" list.
//
// Postcondition: every returned record has passed Validate and carries a
// resolved rarity.
func ParseItems(data []byte) ([]ItemRecord, error) {
	var f itemFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("cannot parse items: %w", err)
	}
	recs := f.Items
	if len(recs) == 0 {
		var single ItemRecord
		if err := yaml.Unmarshal(data, &single); err != nil {
			return nil, fmt.Errorf("cannot parse item: %w", err)
		}
		if single.Name == "" && single.ID == "" {
			return nil, nil
		}
		recs = []ItemRecord{single}
	}
	for i := range recs {
		if err := recs[i].Validate(); err != nil {
			return nil, fmt.Errorf("item %q: %w", recs[i].Key(), err)
		}
		recs[i].Rarity = recs[i].Rarity.Resolve()
	}
	return recs, nil
}
