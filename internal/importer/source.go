package importer

import (
	"github.com/cory-johannsen/hoard/internal/game/catalog"
)

// Source loads item records from a format-specific source directory.
//
// Precondition: sourceDir must exist and contain the expected layout for the format.
// Postcondition: returns the records found (possibly unvalidated) or a non-nil error.
type Source interface {
	Load(sourceDir string) ([]catalog.ItemRecord, error)
}

// DirSource reads native hoard item files: *.yaml files holding either one
// record or an "items" list.
type DirSource struct{}

var _ Source = DirSource{}

// Load reads every item file directly under sourceDir.
func (DirSource) Load(sourceDir string) ([]catalog.ItemRecord, error) {
	return catalog.LoadItems(sourceDir)
}
