package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/hoard/internal/game/catalog"
)

// Sink stores imported records. postgres.CatalogRepository is the database sink.
type Sink interface {
	UpsertAll(ctx context.Context, recs []catalog.ItemRecord) error
}

// FileSink writes records to a single items YAML file readable by
// catalog.LoadItems.
type FileSink struct {
	Path string
}

var _ Sink = FileSink{}

// UpsertAll serialises recs under an "items" key and writes them to Path,
// replacing any existing file.
//
// Postcondition: the written file parses back into recs, or an error is returned.
func (s FileSink) UpsertAll(_ context.Context, recs []catalog.ItemRecord) error {
	data, err := yaml.Marshal(struct {
		Items []catalog.ItemRecord `yaml:"items"`
	}{Items: recs})
	if err != nil {
		return fmt.Errorf("serialising items: %w", err)
	}

	// Validate output is loadable before writing.
	if _, err := catalog.ParseItems(data); err != nil {
		return fmt.Errorf("items failed validation: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("creating output directory for %s: %w", s.Path, err)
	}
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("writing items to %s: %w", s.Path, err)
	}
	return nil
}
