// Package main provides the hoard CLI: it rolls treasure bundles, stocks new
// shops and restocks existing inventories, printing results as YAML.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"
)

const usage = `usage: hoard [-config <file>] <command> [flags]

commands:
  loot      roll a treasure bundle
  shop      generate a new shop inventory
  restock   evolve an existing shop inventory read from YAML
  types     list the known shop types
`

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if err == errUsage {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		log.Fatalf("hoard: %v", err)
	}
}
