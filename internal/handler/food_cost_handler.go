package handler

import (
	"net/http"

	"zoo-food-costs/internal/model"
	"zoo-food-costs/internal/service"

	"github.com/rs/zerolog"
)

// foodCostFailure is the only detail exposed to clients when a calculation fails.
const foodCostFailure = "An error occurred while calculating food costs."

// FoodCostHandler handles food cost HTTP requests.
type FoodCostHandler struct {
	service service.CostService
	logger  zerolog.Logger
}

// NewFoodCostHandler creates a new food cost handler.
func NewFoodCostHandler(service service.CostService, logger zerolog.Logger) *FoodCostHandler {
	return &FoodCostHandler{
		service: service,
		logger:  logger.With().Str("handler", "food_cost").Logger(),
	}
}

// GetTotal handles GET /zoo/food_costs requests.
func (h *FoodCostHandler) GetTotal(w http.ResponseWriter, r *http.Request) {
	total, err := h.service.TotalFoodCost(r.Context())
	if err != nil {
		// Every failure is a server-side configuration or data problem.
		h.logger.Error().
			Err(err).
			Str("error_code", model.ErrorCode(err)).
			Msg("failed to calculate food costs")
		writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{Detail: foodCostFailure})
		return
	}

	writeJSON(w, http.StatusOK, model.FoodCostResponse{TotalFoodCost: total})
}
