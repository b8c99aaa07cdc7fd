package domain

import "time"

// PaymentStatus represents the state of a simulated payment
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Payment represents a simulated payment for an appointment
type Payment struct {
	ID             int64
	AppointmentID  int64
	UserID         int64
	Amount         float64
	Status         PaymentStatus
	TransactionRef string // UUID транзакции платёжного шлюза
	CardLast4      string
	PaidAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CanTransitionTo проверяет допустимость перехода платежа в новый статус
// Машина состояний: pending -> paid | failed; paid -> refunded
func (p *Payment) CanTransitionTo(status PaymentStatus) bool {
	switch p.Status {
	case PaymentStatusPending:
		return status == PaymentStatusPaid || status == PaymentStatusFailed
	case PaymentStatusPaid:
		return status == PaymentStatusRefunded
	default:
		return false
	}
}

// IsSettled returns true if the payment reached a terminal successful state
func (p *Payment) IsSettled() bool {
	return p.Status == PaymentStatusPaid || p.Status == PaymentStatusRefunded
}
