package pay_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/payments"
)

const (
	msgInvalidAppointmentID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidCard          = "некорректный номер карты"
	msgNotFound             = "бронирование не найдено"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "доступ запрещен"
	msgNotPayable           = "бронирование нельзя оплатить в текущем статусе"
	msgAlreadyPaid          = "бронирование уже оплачено"
	msgDeclined             = "платеж отклонен банком"
)

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/pay
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/pay - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments/{id}/pay - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req PayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/{id}/pay - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Pay(r.Context(), appointmentID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/{id}/pay - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, payments.ErrAccessDenied):
			h.logger.Warn("POST /appointments/{id}/pay - Access denied: appointment_id=%d, user_id=%d",
				appointmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, payments.ErrAppointmentNotPayable):
			h.logger.Warn("POST /appointments/{id}/pay - Not payable: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgNotPayable)

		case errors.Is(err, payments.ErrAlreadyPaid):
			h.logger.Warn("POST /appointments/{id}/pay - Already paid: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgAlreadyPaid)

		case errors.Is(err, payments.ErrPaymentDeclined):
			h.logger.Warn("POST /appointments/{id}/pay - Payment declined: appointment_id=%d, user_id=%d",
				appointmentID, userID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgDeclined)

		case errors.Is(err, payments.ErrInvalidInput):
			h.logger.Warn("POST /appointments/{id}/pay - Invalid card: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCard)

		default:
			h.logger.Error("POST /appointments/{id}/pay - Failed to pay: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/pay - Payment completed successfully: payment_id=%d, appointment_id=%d, user_id=%d",
		result.ID, appointmentID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
