package pay_appointment

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/service/payments/models"
)

// PayRequest HTTP request model
type PayRequest struct {
	CardNumber string `json:"cardNumber"`
}

// PaymentResponse HTTP response model
type PaymentResponse struct {
	ID             int64   `json:"id"`
	AppointmentID  int64   `json:"appointmentId"`
	Amount         float64 `json:"amount"`
	Status         string  `json:"status"`
	TransactionRef string  `json:"transactionRef"`
	CardLast4      string  `json:"cardLast4"`
	PaidAt         *string `json:"paidAt,omitempty"`
	CreatedAt      string  `json:"createdAt"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *PayRequest) ToServiceRequest(userID int64) *models.PayRequest {
	return &models.PayRequest{
		UserID:     userID,
		CardNumber: r.CardNumber,
	}
}

// FromServiceResponse конвертирует модель сервиса в HTTP response
func FromServiceResponse(resp *models.PaymentResponse) *PaymentResponse {
	var paidAt *string
	if resp.PaidAt != nil {
		v := resp.PaidAt.Format(time.RFC3339)
		paidAt = &v
	}

	return &PaymentResponse{
		ID:             resp.ID,
		AppointmentID:  resp.AppointmentID,
		Amount:         resp.Amount,
		Status:         resp.Status,
		TransactionRef: resp.TransactionRef,
		CardLast4:      resp.CardLast4,
		PaidAt:         paidAt,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
