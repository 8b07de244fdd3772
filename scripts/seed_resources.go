package main

import (
	"context"
	"fmt"
	"os"

	"zoo-food-costs/internal/config"
	"zoo-food-costs/internal/database"
)

// seedResources copies the local input files into the zoo_resources table so the
// service can run with RESOURCE_BACKEND=postgres. Each row is keyed by the same
// path the service is configured with.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := config.NewLogger(cfg.Logger, os.Stdout)
	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	paths := []string{cfg.Resources.PricesPath, cfg.Resources.DietPath, cfg.Resources.CensusPath}
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read %s: %v\n", path, err)
			os.Exit(1)
		}

		_, err = pool.Exec(ctx, `
			INSERT INTO zoo_resources (name, content, updated_at)
			VALUES ($1, $2, CURRENT_TIMESTAMP)
			ON CONFLICT (name) DO UPDATE SET content = EXCLUDED.content, updated_at = EXCLUDED.updated_at
		`, path, content)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed %s: %v\n", path, err)
			os.Exit(1)
		}

		fmt.Printf("Seeded %s (%d bytes)\n", path, len(content))
	}
}
