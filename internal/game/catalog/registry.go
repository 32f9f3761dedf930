package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrDuplicateItem is returned when a record key is registered twice.
var ErrDuplicateItem = errors.New("item already registered")

// ErrItemNotFound is returned when a lookup yields no record.
var ErrItemNotFound = errors.New("item not found")

// Provider supplies catalog snapshots to the generators.
type Provider interface {
	// ListAll returns every record, deduplicated by key, in a stable order.
	ListAll(ctx context.Context) ([]ItemRecord, error)
}

// Registry is an in-memory Provider keyed by ItemRecord.Key.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	items map[string]ItemRecord
}

// NewRegistry returns an empty Registry.
//
// Postcondition: the internal map is initialised.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]ItemRecord)}
}

// NewRegistryFrom returns a Registry holding recs. Later duplicates replace
// earlier ones.
func NewRegistryFrom(recs []ItemRecord) *Registry {
	r := NewRegistry()
	for _, rec := range recs {
		r.items[rec.Key()] = rec
	}
	return r
}

// LoadRegistry builds a Registry from the YAML files in dir.
//
// Postcondition: returns a populated Registry or an error naming the first
// invalid or duplicate record.
func LoadRegistry(dir string) (*Registry, error) {
	recs, err := LoadItems(dir)
	if err != nil {
		return nil, err
	}
	r := NewRegistry()
	for _, rec := range recs {
		if err := r.Register(rec); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds rec to the registry.
//
// Postcondition: Item(rec.Key()) returns (rec, nil); returns ErrDuplicateItem
// if the key is already registered.
func (r *Registry) Register(rec ItemRecord) error {
	key := rec.Key()
	if key == "" {
		return fmt.Errorf("catalog: Registry.Register: record has neither ID nor name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[key]; exists {
		return fmt.Errorf("catalog: Registry.Register: %q: %w", key, ErrDuplicateItem)
	}
	r.items[key] = rec
	return nil
}

// Item returns the record registered under key.
func (r *Registry) Item(key string) (ItemRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.items[key]
	if !ok {
		return ItemRecord{}, fmt.Errorf("catalog: %q: %w", key, ErrItemNotFound)
	}
	return rec, nil
}

// Len returns the number of registered records.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// ListAll returns a snapshot of every record sorted by key.
//
// Postcondition: the returned slice is owned by the caller.
func (r *Registry) ListAll(_ context.Context) ([]ItemRecord, error) {
	r.mu.RLock()
	out := make([]ItemRecord, 0, len(r.items))
	for _, rec := range r.items {
		out = append(out, rec)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out, nil
}
