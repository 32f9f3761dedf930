// Package main provides the catalog import tool: it reads item files in a
// supported format and writes them to an items YAML file or the database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cory-johannsen/hoard/internal/config"
	"github.com/cory-johannsen/hoard/internal/importer"
	"github.com/cory-johannsen/hoard/internal/importer/gomud"
	"github.com/cory-johannsen/hoard/internal/observability"
	"github.com/cory-johannsen/hoard/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (defaults and HOARD_* env when empty)")
	format := flag.String("format", "", "source format: yaml or gomud")
	sourceDir := flag.String("source", "", "path to source asset directory")
	outputFile := flag.String("output", "", "items YAML file to write; empty stores into the database")
	flag.Parse()

	if *format == "" || *sourceDir == "" {
		fmt.Fprintln(os.Stderr, "usage: import-catalog -format <fmt> -source <dir> [-output <file>] [-config <file>]")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	logger, err := observability.NewLogger(cfg.Logging, "import-catalog")
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	var src importer.Source
	switch *format {
	case "yaml":
		src = importer.DirSource{}
	case "gomud":
		src = gomud.NewSource(logger)
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q (supported: yaml, gomud)\n", *format)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var sink importer.Sink
	if *outputFile != "" {
		sink = importer.FileSink{Path: *outputFile}
	} else {
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			log.Fatalf("connecting to database: %v", err)
		}
		defer pool.Close()
		sink = postgres.NewCatalogRepository(pool.DB())
	}

	report, err := importer.New(src, sink, logger).Run(ctx, *sourceDir)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}
	fmt.Printf("imported %d item(s) (%d loaded, %d duplicate) in %s\n",
		report.Written, report.Loaded, report.Duplicates, report.Elapsed.Round(time.Millisecond))
}
