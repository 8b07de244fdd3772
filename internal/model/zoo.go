package model

import "strings"

// Price table keys for the two food categories.
const (
	FoodMeat  = "Meat"
	FoodFruit = "Fruit"
)

// PriceTable maps a food category to its unit price.
type PriceTable map[string]float64

// Lookup returns the price for category or a MissingKeyError.
func (p PriceTable) Lookup(category string) (float64, error) {
	price, ok := p[category]
	if !ok {
		return 0, MissingKeyError("price table", category)
	}
	return price, nil
}

// DietKind classifies what a species eats.
type DietKind int

const (
	DietMeat DietKind = iota + 1
	DietFruit
	DietMixed
)

// ParseDietKind maps the resource spelling ("meat", "fruit", "both") to a DietKind.
func ParseDietKind(s string) (DietKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "meat":
		return DietMeat, true
	case "fruit":
		return DietFruit, true
	case "both":
		return DietMixed, true
	default:
		return 0, false
	}
}

func (k DietKind) String() string {
	switch k {
	case DietMeat:
		return "Meat"
	case DietFruit:
		return "Fruit"
	case DietMixed:
		return "Mixed"
	default:
		return "Unknown"
	}
}

// DietSpec describes how much and what one species eats.
// MeatFraction is only meaningful when Kind is DietMixed.
type DietSpec struct {
	Species      string   `json:"species"`
	Rate         float64  `json:"rate"`
	Kind         DietKind `json:"kind"`
	MeatFraction float64  `json:"meatFraction,omitempty"`
}

// DietTable maps a species to its diet.
type DietTable map[string]DietSpec

// CensusEntry is a single animal in the zoo.
//
// A malformed weight does not stop the census: it is carried in WeightErr and
// only surfaces when Weight is called, so animals nobody prices never fail.
type CensusEntry struct {
	Species   string  `json:"species"`
	WeightKg  float64 `json:"weightKg"`
	WeightErr error   `json:"-"`
}

// Weight returns the animal's weight in kilograms, or the error recorded while
// reading it.
func (e CensusEntry) Weight() (float64, error) {
	if e.WeightErr != nil {
		return 0, e.WeightErr
	}
	return e.WeightKg, nil
}

// FoodCostResponse represents the response payload for the food cost endpoint.
type FoodCostResponse struct {
	TotalFoodCost float64 `json:"total_food_cost"`
}
