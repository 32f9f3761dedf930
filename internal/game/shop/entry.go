// Package shop builds persistent shop inventories and evolves them over time
// through simulated sales and restocking.
package shop

import (
	"github.com/cory-johannsen/hoard/internal/game/catalog"
)

// Entry is one stocked item. Quantity 0 means out of stock, not removed.
type Entry struct {
	ID            string             `yaml:"id"`
	Item          catalog.ItemRecord `yaml:"item"`
	Quantity      int                `yaml:"quantity"`
	PriceOverride *int               `yaml:"price_override,omitempty"`
}

// UnitPrice returns the override when set, else the catalog price, in copper.
func (e Entry) UnitPrice() int {
	if e.PriceOverride != nil {
		return *e.PriceOverride
	}
	return e.Item.Price
}

// Value returns the stock value of the entry in copper.
func (e Entry) Value() int {
	return e.UnitPrice() * max(e.Quantity, 0)
}

// Inventory is a shop's current stock.
type Inventory struct {
	ShopType string  `yaml:"shop_type"`
	Entries  []Entry `yaml:"entries"`
}

// Value returns the total stock value in copper.
func (inv Inventory) Value() int {
	total := 0
	for _, e := range inv.Entries {
		total += e.Value()
	}
	return total
}

// Sell removes up to qty units of the entry with the given ID and returns the
// number sold. Entries are kept at zero quantity.
func (inv *Inventory) Sell(id string, qty int) int {
	if qty <= 0 {
		return 0
	}
	for i := range inv.Entries {
		if inv.Entries[i].ID != id {
			continue
		}
		sold := min(qty, max(inv.Entries[i].Quantity, 0))
		inv.Entries[i].Quantity -= sold
		return sold
	}
	return 0
}
