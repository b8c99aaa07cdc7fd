package create_review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/reviews"
)

const (
	msgInvalidVehicleID   = "некорректный ID автомобиля"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidReview      = "некорректные данные отзыва"
	msgVehicleNotFound    = "автомобиль не найден"
	msgNotAllowed         = "отзыв доступен только после завершенной аренды"
	msgDuplicateReview    = "отзыв на этот автомобиль уже оставлен"
	msgMissingUserID      = "отсутствует ID пользователя"
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

// Handle POST /api/v1/vehicles/{vehicleId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleID, err := strconv.ParseInt(vars["vehicleId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /vehicles/{vehicleId}/reviews - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /vehicles/{vehicleId}/reviews - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles/{vehicleId}/reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), vehicleID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrVehicleNotFound):
			h.logger.Warn("POST /vehicles/{vehicleId}/reviews - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, reviews.ErrNotAllowed):
			h.logger.Warn("POST /vehicles/{vehicleId}/reviews - No completed rental: user_id=%d, vehicle_id=%d",
				userID, vehicleID)
			handlers.RespondForbidden(w, msgNotAllowed)

		case errors.Is(err, reviews.ErrDuplicateReview):
			h.logger.Warn("POST /vehicles/{vehicleId}/reviews - Duplicate review: user_id=%d, vehicle_id=%d",
				userID, vehicleID)
			handlers.RespondConflict(w, msgDuplicateReview)

		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("POST /vehicles/{vehicleId}/reviews - Invalid review data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidReview)

		default:
			h.logger.Error("POST /vehicles/{vehicleId}/reviews - Failed to create review: vehicle_id=%d, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles/{vehicleId}/reviews - Review created successfully: review_id=%d, vehicle_id=%d, user_id=%d",
		result.ID, vehicleID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
