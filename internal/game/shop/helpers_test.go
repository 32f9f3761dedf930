package shop_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/cory-johannsen/hoard/internal/game/catalog"
	"github.com/cory-johannsen/hoard/internal/game/shop"
)

type failingProvider struct{}

func (failingProvider) ListAll(context.Context) ([]catalog.ItemRecord, error) {
	return nil, errors.New("catalog offline")
}

// genericItems returns n records cycling through common, uncommon and rare
// with prices between 50 and 500 copper.
func genericItems(n int) []catalog.ItemRecord {
	rarities := []catalog.Rarity{catalog.Common, catalog.Uncommon, catalog.Rare}
	out := make([]catalog.ItemRecord, n)
	for i := range out {
		out[i] = catalog.ItemRecord{
			ID:     fmt.Sprintf("item-%03d", i),
			Name:   fmt.Sprintf("Item %d", i),
			Price:  50 + (i*37)%451,
			Rarity: rarities[i%len(rarities)],
			Type:   "wondrous",
		}
	}
	return out
}

func rareEntries(n int) []shop.Entry {
	out := make([]shop.Entry, n)
	for i := range out {
		out[i] = shop.Entry{
			ID: fmt.Sprintf("entry-%d", i),
			Item: catalog.ItemRecord{
				ID:     fmt.Sprintf("rare-%d", i),
				Name:   fmt.Sprintf("Rare %d", i),
				Price:  1000,
				Rarity: catalog.Rare,
				Type:   "wondrous",
			},
			Quantity: 4,
		}
	}
	return out
}

func keysOf(entries []shop.Entry) map[string]bool {
	out := make(map[string]bool, len(entries))
	for _, e := range entries {
		out[e.Item.Key()] = true
	}
	return out
}
