package service

import (
	"context"
	"iter"

	"zoo-food-costs/internal/model"
)

// CostService defines operations for food cost calculation.
type CostService interface {
	// TotalFoodCost computes the cost of feeding every animal in the census.
	TotalFoodCost(ctx context.Context) (float64, error)
}

// DataLoader provides the parsed price list, diet table and census.
type DataLoader interface {
	Prices(ctx context.Context) (model.PriceTable, error)
	DietTable(ctx context.Context) (model.DietTable, error)
	Census(ctx context.Context) iter.Seq2[model.CensusEntry, error]
}
