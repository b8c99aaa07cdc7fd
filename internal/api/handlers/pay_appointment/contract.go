package pay_appointment

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/payments/models"
)

type PaymentService interface {
	Pay(ctx context.Context, appointmentID int64, req *models.PayRequest) (*models.PaymentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
