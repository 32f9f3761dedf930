package gomud

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/hoard/internal/game/catalog"
	"github.com/cory-johannsen/hoard/internal/importer"
)

var _ importer.Source = (*GomudSource)(nil)

// GomudSource implements importer.Source for the gomud asset layout:
//
//	sourceDir/
//	  items/   <- item YAML files, grouped into subdirectories by id range
type GomudSource struct {
	logger *zap.Logger
}

// NewSource constructs a GomudSource. Conversion warnings are logged to logger;
// a nil logger discards them.
func NewSource(logger *zap.Logger) *GomudSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GomudSource{logger: logger}
}

// Load reads every item file under sourceDir/items and converts it. Items that
// cannot be converted are skipped with a warning.
//
// Precondition: sourceDir must contain an items/ subdir.
// Postcondition: returns at least one record or a non-nil error.
func (s *GomudSource) Load(sourceDir string) ([]catalog.ItemRecord, error) {
	itemsDir := filepath.Join(sourceDir, "items")
	if _, err := os.Stat(itemsDir); err != nil {
		return nil, fmt.Errorf("required subdirectory %q not accessible in source: %w", filepath.Base(itemsDir), err)
	}

	files, err := yamlFiles(itemsDir)
	if err != nil {
		return nil, err
	}

	var results []catalog.ItemRecord
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading item file %s: %w", path, err)
		}
		item, err := ParseItem(data)
		if err != nil {
			return nil, fmt.Errorf("parsing item file %s: %w", path, err)
		}
		rec, warnings := ConvertItem(item)
		for _, w := range warnings {
			s.logger.Warn("gomud item conversion", zap.String("file", path), zap.String("warning", w))
		}
		if rec != nil {
			results = append(results, *rec)
		}
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("no item files found in %s", itemsDir)
	}
	return results, nil
}

// yamlFiles returns every YAML file below dir in lexical order.
func yamlFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".yaml") || strings.HasSuffix(d.Name(), ".yml") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	return paths, nil
}
