// Package importer loads item catalogs from external formats and stores them
// where the generators can read them.
package importer

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/hoard/internal/game/catalog"
)

// Importer orchestrates item import from a Source to a Sink.
type Importer struct {
	source Source
	sink   Sink
	logger *zap.Logger
}

// New constructs an Importer.
//
// Precondition: source and sink must be non-nil. A nil logger discards logs.
// Postcondition: returns a non-nil Importer.
func New(source Source, sink Sink, logger *zap.Logger) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer{source: source, sink: sink, logger: logger}
}

// Report summarises one import run.
type Report struct {
	Loaded     int
	Written    int
	Duplicates int
	Elapsed    time.Duration
}

// Run loads records from sourceDir, assigns IDs derived from names where
// missing, validates each record, and writes the deduplicated set, ordered by
// ID, to the sink. Later duplicates of a key replace earlier ones.
//
// Postcondition: either every record is handed to the sink or an error is
// returned and the sink is not called.
func (imp *Importer) Run(ctx context.Context, sourceDir string) (Report, error) {
	start := time.Now()

	recs, err := imp.source.Load(sourceDir)
	if err != nil {
		return Report{}, fmt.Errorf("loading source: %w", err)
	}
	report := Report{Loaded: len(recs)}
	imp.logger.Info("items loaded",
		zap.String("source", sourceDir),
		zap.Int("count", len(recs)),
		zap.Duration("elapsed", time.Since(start)),
	)

	byID := make(map[string]catalog.ItemRecord, len(recs))
	for _, rec := range recs {
		if rec.ID == "" {
			rec.ID = NameToID(rec.Name)
		}
		if err := rec.Validate(); err != nil {
			return Report{}, fmt.Errorf("item %q: %w", rec.Key(), err)
		}
		rec.Rarity = rec.Rarity.Resolve()
		if _, dup := byID[rec.ID]; dup {
			report.Duplicates++
			imp.logger.Warn("duplicate item id, keeping last", zap.String("id", rec.ID))
		}
		byID[rec.ID] = rec
	}

	out := make([]catalog.ItemRecord, 0, len(byID))
	for _, rec := range byID {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	if err := imp.sink.UpsertAll(ctx, out); err != nil {
		return Report{}, fmt.Errorf("storing items: %w", err)
	}
	report.Written = len(out)
	report.Elapsed = time.Since(start)

	imp.logger.Info("import complete",
		zap.Int("written", report.Written),
		zap.Int("duplicates", report.Duplicates),
		zap.Duration("elapsed", report.Elapsed),
	)
	return report, nil
}
