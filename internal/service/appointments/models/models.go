package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// ErrUnknownStatus возвращается при неизвестном статусе бронирования
var ErrUnknownStatus = errors.New("appointments.models: unknown status")

// GetUserAppointmentsRequest запрос истории бронирований пользователя
type GetUserAppointmentsRequest struct {
	UserID      int64   // Чья история запрашивается
	RequestorID int64   // Кто запрашивает (владелец или персонал)
	Status      *string // Фильтр по статусу (опционально)
}

// CancelAppointmentRequest запрос на отмену бронирования
type CancelAppointmentRequest struct {
	UserID             int64
	CancellationReason string
}

// UpdateStatusRequest запрос на смену статуса бронирования (персонал)
type UpdateStatusRequest struct {
	UserID int64
	Status string
}

// AppointmentResponse модель бронирования для ответа
type AppointmentResponse struct {
	ID                   int64
	UserID               int64
	VehicleID            int64
	StartAt              time.Time
	EndAt                time.Time
	Status               string
	VehicleBrand         string
	VehicleModel         string
	VehicleLicensePlate  string
	DailyRate            float64
	Days                 int
	BasePrice            float64
	SubscriptionDiscount float64
	PromotionDiscount    float64
	TotalPrice           float64
	PromoCode            *string
	Notes                *string
	CancellationReason   *string
	CancelledAt          *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// AppointmentListResponse список бронирований
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse
	Total        int
}

// ToDomainAppointmentStatus конвертирует строку в статус бронирования
func ToDomainAppointmentStatus(s string) (domain.AppointmentStatus, error) {
	switch domain.AppointmentStatus(s) {
	case domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusInProgress,
		domain.StatusCompleted,
		domain.StatusCancelledByUser,
		domain.StatusCancelledByCompany,
		domain.StatusNoShow:
		return domain.AppointmentStatus(s), nil
	default:
		return "", ErrUnknownStatus
	}
}

// FromDomainAppointment конвертирует domain модель в response
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                   a.ID,
		UserID:               a.UserID,
		VehicleID:            a.VehicleID,
		StartAt:              a.StartAt,
		EndAt:                a.EndAt,
		Status:               string(a.Status),
		VehicleBrand:         a.VehicleBrand,
		VehicleModel:         a.VehicleModel,
		VehicleLicensePlate:  a.VehicleLicensePlate,
		DailyRate:            a.DailyRate,
		Days:                 a.Days,
		BasePrice:            a.BasePrice,
		SubscriptionDiscount: a.SubscriptionDiscount,
		PromotionDiscount:    a.PromotionDiscount,
		TotalPrice:           a.TotalPrice,
		PromoCode:            a.PromoCode,
		Notes:                a.Notes,
		CancellationReason:   a.CancellationReason,
		CancelledAt:          a.CancelledAt,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в response
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	result := make([]*AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		result = append(result, FromDomainAppointment(a))
	}
	return &AppointmentListResponse{Appointments: result, Total: len(result)}
}
