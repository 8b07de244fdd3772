package service

import (
	"context"
	"fmt"

	"zoo-food-costs/internal/model"

	"github.com/rs/zerolog"
)

// costService implements CostService.
type costService struct {
	loader DataLoader
	logger zerolog.Logger
}

// NewCostService creates a new cost service.
func NewCostService(loader DataLoader, logger zerolog.Logger) CostService {
	return &costService{
		loader: loader,
		logger: logger.With().Str("service", "cost").Logger(),
	}
}

// TotalFoodCost joins the census against the diet and price tables and sums the
// cost of every animal. Animals of a species without a diet entry cost nothing and
// their weight is never read. Any load or lookup failure aborts the whole computation.
func (s *costService) TotalFoodCost(ctx context.Context) (float64, error) {
	prices, err := s.loader.Prices(ctx)
	if err != nil {
		return 0, err
	}

	diets, err := s.loader.DietTable(ctx)
	if err != nil {
		return 0, err
	}

	total := 0.0
	animals, skipped := 0, 0
	for entry, err := range s.loader.Census(ctx) {
		if err != nil {
			return 0, err
		}
		animals++

		spec, ok := diets[entry.Species]
		if !ok {
			skipped++
			continue
		}

		weight, err := entry.Weight()
		if err != nil {
			s.logger.Error().Err(err).
				Str("species", entry.Species).
				Msg("invalid animal weight")
			return 0, err
		}

		cost, err := animalCost(weight, spec, prices)
		if err != nil {
			s.logger.Error().Err(err).
				Str("species", entry.Species).
				Msg("failed to price animal")
			return 0, err
		}
		total += cost
	}

	s.logger.Debug().
		Int("animals", animals).
		Int("unknown_species", skipped).
		Float64("total", total).
		Msg("computed food cost")

	return total, nil
}

// animalCost prices one animal's consumption according to its diet.
func animalCost(weight float64, spec model.DietSpec, prices model.PriceTable) (float64, error) {
	amount := weight * spec.Rate

	switch spec.Kind {
	case model.DietMeat:
		meat, err := prices.Lookup(model.FoodMeat)
		if err != nil {
			return 0, err
		}
		return amount * meat, nil

	case model.DietFruit:
		fruit, err := prices.Lookup(model.FoodFruit)
		if err != nil {
			return 0, err
		}
		return amount * fruit, nil

	case model.DietMixed:
		meat, err := prices.Lookup(model.FoodMeat)
		if err != nil {
			return 0, err
		}
		fruit, err := prices.Lookup(model.FoodFruit)
		if err != nil {
			return 0, err
		}
		return amount * (spec.MeatFraction*meat + (1-spec.MeatFraction)*fruit), nil

	default:
		return 0, fmt.Errorf("unsupported diet kind %d for %s", spec.Kind, spec.Species)
	}
}
