package remove_favorite

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/favorites"
)

const (
	msgInvalidVehicleID = "некорректный ID автомобиля"
	msgFavoriteNotFound = "автомобиль не найден в избранном"
	msgMissingUserID    = "отсутствует ID пользователя"
)

type Handler struct {
	service FavoriteService
	logger  Logger
}

func NewHandler(service FavoriteService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/vehicles/{vehicleId}/favorite
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleID, err := strconv.ParseInt(vars["vehicleId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /vehicles/{vehicleId}/favorite - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /vehicles/{vehicleId}/favorite - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	err = h.service.Remove(r.Context(), userID, vehicleID)
	if err != nil {
		switch {
		case errors.Is(err, favorites.ErrFavoriteNotFound):
			h.logger.Warn("DELETE /vehicles/{vehicleId}/favorite - Favorite not found: user_id=%d, vehicle_id=%d",
				userID, vehicleID)
			handlers.RespondNotFound(w, msgFavoriteNotFound)

		default:
			h.logger.Error("DELETE /vehicles/{vehicleId}/favorite - Failed to remove favorite: vehicle_id=%d, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /vehicles/{vehicleId}/favorite - Favorite removed successfully: user_id=%d, vehicle_id=%d",
		userID, vehicleID)
	w.WriteHeader(http.StatusNoContent)
}
