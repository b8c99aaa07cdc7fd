package add_favorite

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
	msgVehicleNotFound  = "автомобиль не найден"
	msgAlreadyFavorite  = "автомобиль уже в избранном"
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

// Handle POST /api/v1/vehicles/{vehicleId}/favorite
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleID, err := strconv.ParseInt(vars["vehicleId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /vehicles/{vehicleId}/favorite - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /vehicles/{vehicleId}/favorite - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	err = h.service.Add(r.Context(), userID, vehicleID)
	if err != nil {
		switch {
		case errors.Is(err, favorites.ErrVehicleNotFound):
			h.logger.Warn("POST /vehicles/{vehicleId}/favorite - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, favorites.ErrDuplicateFavorite):
			h.logger.Warn("POST /vehicles/{vehicleId}/favorite - Already in favorites: user_id=%d, vehicle_id=%d",
				userID, vehicleID)
			handlers.RespondConflict(w, msgAlreadyFavorite)

		default:
			h.logger.Error("POST /vehicles/{vehicleId}/favorite - Failed to add favorite: vehicle_id=%d, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles/{vehicleId}/favorite - Favorite added successfully: user_id=%d, vehicle_id=%d",
		userID, vehicleID)
	handlers.RespondJSON(w, http.StatusCreated, nil)
}
