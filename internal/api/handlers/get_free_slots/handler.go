package get_free_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	getFreeSlots "github.com/m04kA/SMC-RentalService/internal/usecase/get_free_slots"
)

const (
	msgInvalidVehicleID = "некорректный ID автомобиля"
	msgInvalidWindow    = "некорректное окно запроса, ожидается RFC3339"
	msgVehicleNotFound  = "автомобиль не найден"
)

type Handler struct {
	useCase GetFreeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles/{vehicleId}/free-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleID, err := strconv.ParseInt(vars["vehicleId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /vehicles/{vehicleId}/free-slots - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	req, err := ParseQuery(r, vehicleID)
	if err != nil {
		h.logger.Warn("GET /vehicles/{vehicleId}/free-slots - Invalid window: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindow)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getFreeSlots.ErrVehicleNotFound):
			h.logger.Warn("GET /vehicles/{vehicleId}/free-slots - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, getFreeSlots.ErrInvalidInput):
			h.logger.Warn("GET /vehicles/{vehicleId}/free-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("GET /vehicles/{vehicleId}/free-slots - Failed to get free slots: vehicle_id=%d, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vehicles/{vehicleId}/free-slots - Free slots retrieved successfully: vehicle_id=%d, count=%d",
		vehicleID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
