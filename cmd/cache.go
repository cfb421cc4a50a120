package main

import (
	"context"

	"github.com/cratedig/cratedig/internal/repositories"
	"github.com/urfave/cli/v3"
)

// CacheStats reports per-table row counts for the local cache.
func (r *Runner) CacheStats(ctx context.Context, cmd *cli.Command) error {
	db, err := r.ensureDB()
	if err != nil {
		return err
	}

	stats, err := repositories.CacheStats(db)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(stats, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Cache")
	for _, table := range repositories.CacheTables() {
		r.writePlain("%-20s %d\n", table, stats[table])
	}

	return nil
}

// cacheCommand reports on the local cache
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Inspect the local cache",
		Commands: []*cli.Command{
			{
				Name:   "stats",
				Usage:  "Show row counts per cache table",
				Flags:  outputFlags(),
				Action: r.CacheStats,
			},
		},
	}
}
