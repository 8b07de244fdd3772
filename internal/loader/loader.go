package loader

import (
	"context"
	"iter"
	"sync/atomic"

	"zoo-food-costs/internal/model"
	"zoo-food-costs/internal/resource"

	"github.com/rs/zerolog"
)

// Paths names the three backing resources within a Source.
type Paths struct {
	Prices string
	Diet   string
	Census string
}

// DefaultPaths returns the resource names used when none are configured.
func DefaultPaths() Paths {
	return Paths{
		Prices: "input_files/prices.txt",
		Diet:   "input_files/animals.csv",
		Census: "input_files/zoo.xml",
	}
}

// Loader reads and parses the price list, diet table and census.
//
// The price and diet tables are memoized for the lifetime of the Loader and never
// invalidated. Concurrent first calls may each read the resource and store the
// result; both store the same content, so the last write wins harmlessly. Failed
// loads are not cached. The census is read fresh on every call.
type Loader struct {
	source resource.Source
	paths  Paths
	logger zerolog.Logger

	prices atomic.Pointer[model.PriceTable]
	diets  atomic.Pointer[model.DietTable]
}

// New creates a loader reading resources from source.
func New(source resource.Source, paths Paths, logger zerolog.Logger) *Loader {
	return &Loader{
		source: source,
		paths:  paths,
		logger: logger.With().Str("component", "loader").Logger(),
	}
}

// Prices returns the price table, reading it on first use.
func (l *Loader) Prices(ctx context.Context) (model.PriceTable, error) {
	if cached := l.prices.Load(); cached != nil {
		return *cached, nil
	}

	rc, err := l.source.Open(ctx, l.paths.Prices)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	prices, err := parsePrices(rc, l.paths.Prices)
	if err != nil {
		l.logger.Error().Err(err).Str("resource", l.paths.Prices).Msg("failed to parse price list")
		return nil, err
	}

	l.prices.Store(&prices)

	l.logger.Info().
		Str("resource", l.paths.Prices).
		Int("prices_loaded", len(prices)).
		Msg("price list loaded")

	return prices, nil
}

// DietTable returns the per-species diet table, reading it on first use.
func (l *Loader) DietTable(ctx context.Context) (model.DietTable, error) {
	if cached := l.diets.Load(); cached != nil {
		return *cached, nil
	}

	rc, err := l.source.Open(ctx, l.paths.Diet)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	diets, err := parseDietTable(rc, l.paths.Diet)
	if err != nil {
		l.logger.Error().Err(err).Str("resource", l.paths.Diet).Msg("failed to parse diet table")
		return nil, err
	}

	l.diets.Store(&diets)

	l.logger.Info().
		Str("resource", l.paths.Diet).
		Int("species_loaded", len(diets)).
		Msg("diet table loaded")

	return diets, nil
}

// Census returns a single-pass sequence over every animal in the census. The
// resource is opened when iteration starts and closed when it ends. Open and parse
// failures are delivered as the sequence's error value, after which it stops.
func (l *Loader) Census(ctx context.Context) iter.Seq2[model.CensusEntry, error] {
	return func(yield func(model.CensusEntry, error) bool) {
		rc, err := l.source.Open(ctx, l.paths.Census)
		if err != nil {
			yield(model.CensusEntry{}, err)
			return
		}
		defer rc.Close()

		for entry, err := range censusEntries(rc, l.paths.Census) {
			if !yield(entry, err) {
				return
			}
		}
	}
}
