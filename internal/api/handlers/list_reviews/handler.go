package list_reviews

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/handlers/create_review"
	"github.com/m04kA/SMC-RentalService/internal/service/reviews"
)

const (
	msgInvalidVehicleID = "некорректный ID автомобиля"
	msgVehicleNotFound  = "автомобиль не найден"
)

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// VehicleReviewsResponse HTTP response model
type VehicleReviewsResponse struct {
	VehicleID     int64                           `json:"vehicleId"`
	AverageRating float64                         `json:"averageRating"`
	Reviews       []*create_review.ReviewResponse `json:"reviews"`
}

// Handle GET /api/v1/vehicles/{vehicleId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleID, err := strconv.ParseInt(vars["vehicleId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /vehicles/{vehicleId}/reviews - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	result, err := h.service.ListByVehicle(r.Context(), vehicleID)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrVehicleNotFound):
			h.logger.Warn("GET /vehicles/{vehicleId}/reviews - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		default:
			h.logger.Error("GET /vehicles/{vehicleId}/reviews - Failed to list reviews: vehicle_id=%d, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := &VehicleReviewsResponse{
		VehicleID:     result.VehicleID,
		AverageRating: result.AverageRating,
		Reviews:       make([]*create_review.ReviewResponse, 0, len(result.Reviews)),
	}
	for i := range result.Reviews {
		response.Reviews = append(response.Reviews, create_review.FromServiceResponse(&result.Reviews[i]))
	}

	h.logger.Info("GET /vehicles/{vehicleId}/reviews - Reviews retrieved successfully: vehicle_id=%d, count=%d",
		vehicleID, len(response.Reviews))
	handlers.RespondJSON(w, http.StatusOK, response)
}
