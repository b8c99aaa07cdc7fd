package payments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/appointment"
	paymentRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-RentalService/internal/service/payments/models"
)

func TestChargeCard(t *testing.T) {
	assert.Equal(t, domain.PaymentStatusPaid, chargeCard("4276000000000000"))
	assert.Equal(t, domain.PaymentStatusPaid, chargeCard("4276000000000008"))
	assert.Equal(t, domain.PaymentStatusFailed, chargeCard("4276000000000001"))
	assert.Equal(t, domain.PaymentStatusFailed, chargeCard("4276000000000009"))
}

func TestValidateCardNumber(t *testing.T) {
	tests := []struct {
		name       string
		cardNumber string
		valid      bool
	}{
		{"valid 16 digits", "4276123456789012", true},
		{"valid 13 digits", "4276123456789", true},
		{"valid 19 digits", "4276123456789012345", true},
		{"too short", "427612345678", false},
		{"too long", "42761234567890123456", false},
		{"contains letters", "4276abcd56789012", false},
		{"contains spaces", "4276 1234 5678 9012", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCardNumber(tt.cardNumber)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidInput)
			}
		})
	}
}

// Фейки зависимостей сервиса

type fakeAppointmentRepo struct {
	appointment *domain.Appointment
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if f.appointment == nil || f.appointment.ID != id {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return f.appointment, nil
}

type fakePaymentRepo struct {
	latest  *domain.Payment
	created *domain.Payment
	status  domain.PaymentStatus
}

func (f *fakePaymentRepo) Create(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	stored := *p
	stored.ID = 7
	stored.CreatedAt = time.Now()
	f.created = &stored
	return &stored, nil
}

func (f *fakePaymentRepo) GetLatestByAppointment(_ context.Context, _ int64) (*domain.Payment, error) {
	if f.latest == nil {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	return f.latest, nil
}

func (f *fakePaymentRepo) UpdateStatus(_ context.Context, _ int64, status domain.PaymentStatus) error {
	f.status = status
	return nil
}

type fakeNotifier struct {
	titles []string
}

func (f *fakeNotifier) Notify(_ context.Context, _ int64, _ domain.NotificationType, title, _ string) error {
	f.titles = append(f.titles, title)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newService() (*Service, *fakeAppointmentRepo, *fakePaymentRepo, *fakeNotifier) {
	appointments := &fakeAppointmentRepo{appointment: &domain.Appointment{
		ID:         1,
		UserID:     10,
		TotalPrice: 250.50,
		Status:     domain.StatusConfirmed,
	}}
	payments := &fakePaymentRepo{}
	notifier := &fakeNotifier{}

	return NewService(payments, appointments, notifier, noopLogger{}), appointments, payments, notifier
}

func TestPay(t *testing.T) {
	t.Run("successful payment", func(t *testing.T) {
		svc, _, payments, notifier := newService()

		resp, err := svc.Pay(context.Background(), 1, &models.PayRequest{
			UserID:     10,
			CardNumber: "4276123456789012",
		})

		require.NoError(t, err)
		assert.Equal(t, string(domain.PaymentStatusPaid), resp.Status)
		assert.Equal(t, 250.50, resp.Amount)
		assert.Equal(t, "9012", resp.CardLast4)
		assert.NotEmpty(t, resp.TransactionRef)
		assert.Equal(t, domain.PaymentStatusPaid, payments.status)
		assert.Equal(t, []string{"Оплата прошла успешно"}, notifier.titles)
	})

	t.Run("declined payment", func(t *testing.T) {
		svc, _, payments, notifier := newService()

		_, err := svc.Pay(context.Background(), 1, &models.PayRequest{
			UserID:     10,
			CardNumber: "4276123456789013",
		})

		assert.ErrorIs(t, err, ErrPaymentDeclined)
		assert.Equal(t, domain.PaymentStatusFailed, payments.status)
		assert.Equal(t, []string{"Оплата отклонена"}, notifier.titles)
	})

	t.Run("only owner can pay", func(t *testing.T) {
		svc, _, _, _ := newService()

		_, err := svc.Pay(context.Background(), 1, &models.PayRequest{
			UserID:     99,
			CardNumber: "4276123456789012",
		})

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("cancelled appointment is not payable", func(t *testing.T) {
		svc, appointments, _, _ := newService()
		appointments.appointment.Status = domain.StatusCancelledByUser

		_, err := svc.Pay(context.Background(), 1, &models.PayRequest{
			UserID:     10,
			CardNumber: "4276123456789012",
		})

		assert.ErrorIs(t, err, ErrAppointmentNotPayable)
	})

	t.Run("completed appointment is not payable", func(t *testing.T) {
		svc, appointments, _, _ := newService()
		appointments.appointment.Status = domain.StatusCompleted

		_, err := svc.Pay(context.Background(), 1, &models.PayRequest{
			UserID:     10,
			CardNumber: "4276123456789012",
		})

		assert.ErrorIs(t, err, ErrAppointmentNotPayable)
	})

	t.Run("already settled payment blocks repeat", func(t *testing.T) {
		svc, _, payments, _ := newService()
		payments.latest = &domain.Payment{ID: 5, Status: domain.PaymentStatusPaid}

		_, err := svc.Pay(context.Background(), 1, &models.PayRequest{
			UserID:     10,
			CardNumber: "4276123456789012",
		})

		assert.ErrorIs(t, err, ErrAlreadyPaid)
	})

	t.Run("failed payment can be retried", func(t *testing.T) {
		svc, _, payments, _ := newService()
		payments.latest = &domain.Payment{ID: 5, Status: domain.PaymentStatusFailed}

		resp, err := svc.Pay(context.Background(), 1, &models.PayRequest{
			UserID:     10,
			CardNumber: "4276123456789012",
		})

		require.NoError(t, err)
		assert.Equal(t, string(domain.PaymentStatusPaid), resp.Status)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		svc, _, _, _ := newService()

		_, err := svc.Pay(context.Background(), 99, &models.PayRequest{
			UserID:     10,
			CardNumber: "4276123456789012",
		})

		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}
