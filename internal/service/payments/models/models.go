package models

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// PayRequest запрос на оплату бронирования
type PayRequest struct {
	UserID     int64
	CardNumber string
}

// PaymentResponse модель платежа для ответа
type PaymentResponse struct {
	ID             int64
	AppointmentID  int64
	Amount         float64
	Status         string
	TransactionRef string
	CardLast4      string
	PaidAt         *time.Time
	CreatedAt      time.Time
}

// FromDomainPayment конвертирует domain модель в response
func FromDomainPayment(p *domain.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:             p.ID,
		AppointmentID:  p.AppointmentID,
		Amount:         p.Amount,
		Status:         string(p.Status),
		TransactionRef: p.TransactionRef,
		CardLast4:      p.CardLast4,
		PaidAt:         p.PaidAt,
		CreatedAt:      p.CreatedAt,
	}
}
