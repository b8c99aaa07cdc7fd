package list_plans

import (
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
)

type Handler struct {
	service SubscriptionService
	logger  Logger
}

func NewHandler(service SubscriptionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// PlanResponse HTTP response model
type PlanResponse struct {
	ID              int64   `json:"id"`
	Tier            string  `json:"tier"`
	DiscountPercent float64 `json:"discountPercent"`
	MonthlyFee      float64 `json:"monthlyFee"`
	DurationDays    int     `json:"durationDays"`
}

// Handle GET /api/v1/subscription-plans
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	plans, err := h.service.ListPlans(r.Context())
	if err != nil {
		h.logger.Error("GET /subscription-plans - Failed to list plans: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]PlanResponse, 0, len(plans))
	for _, p := range plans {
		response = append(response, PlanResponse{
			ID:              p.ID,
			Tier:            p.Tier,
			DiscountPercent: p.DiscountPercent,
			MonthlyFee:      p.MonthlyFee,
			DurationDays:    p.DurationDays,
		})
	}

	h.logger.Info("GET /subscription-plans - Plans retrieved successfully: count=%d", len(response))
	handlers.RespondJSON(w, http.StatusOK, response)
}
