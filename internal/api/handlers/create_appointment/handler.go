package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-RentalService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidPeriod         = "некорректный период аренды, ожидается RFC3339"
	msgVehicleNotFound       = "автомобиль не найден"
	msgVehicleInactive       = "автомобиль недоступен для аренды"
	msgVehicleUnavailable    = "автомобиль занят в выбранный период"
	msgTooLateToBook         = "аренда должна начинаться не раньше чем через час"
	msgDateTooFar            = "начало аренды слишком далеко в будущем"
	msgPromotionNotFound     = "промокод не найден"
	msgPromotionInactive     = "промокод отключен"
	msgPromotionExpired      = "срок действия промокода истек"
	msgPromotionCapReached   = "лимит применений промокода исчерпан"
	msgPromotionEVOnly       = "промокод действует только на электромобили"
	msgInvalidAppointment    = "некорректные данные бронирования"
	msgMissingUserID         = "отсутствует ID пользователя"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse rental period: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrVehicleUnavailable):
			h.logger.Warn("POST /appointments - Vehicle unavailable: user_id=%d, vehicle_id=%d", userID, req.VehicleID)
			handlers.RespondConflict(w, msgVehicleUnavailable)

		case errors.Is(err, createAppointment.ErrVehicleNotFound):
			h.logger.Warn("POST /appointments - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createAppointment.ErrVehicleInactive):
			h.logger.Warn("POST /appointments - Vehicle inactive: vehicle_id=%d", req.VehicleID)
			handlers.RespondConflict(w, msgVehicleInactive)

		case errors.Is(err, createAppointment.ErrTooLateToBook):
			h.logger.Warn("POST /appointments - Too late to book: user_id=%d, vehicle_id=%d", userID, req.VehicleID)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createAppointment.ErrDateTooFarInFuture):
			h.logger.Warn("POST /appointments - Date too far in future: user_id=%d, vehicle_id=%d", userID, req.VehicleID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createAppointment.ErrPromotionNotFound):
			h.logger.Warn("POST /appointments - Promotion not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgPromotionNotFound)

		case errors.Is(err, createAppointment.ErrPromotionInactive):
			h.logger.Warn("POST /appointments - Promotion inactive: user_id=%d", userID)
			handlers.RespondConflict(w, msgPromotionInactive)

		case errors.Is(err, createAppointment.ErrPromotionExpired):
			h.logger.Warn("POST /appointments - Promotion expired: user_id=%d", userID)
			handlers.RespondConflict(w, msgPromotionExpired)

		case errors.Is(err, createAppointment.ErrPromotionUsageCapReached):
			h.logger.Warn("POST /appointments - Promotion usage cap reached: user_id=%d", userID)
			handlers.RespondConflict(w, msgPromotionCapReached)

		case errors.Is(err, createAppointment.ErrPromotionEVOnly):
			h.logger.Warn("POST /appointments - Promotion is EV-only: user_id=%d, vehicle_id=%d", userID, req.VehicleID)
			handlers.RespondConflict(w, msgPromotionEVOnly)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAppointment)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%d, vehicle_id=%d, error=%v",
				userID, req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, user_id=%d, vehicle_id=%d",
		result.ID, userID, req.VehicleID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
