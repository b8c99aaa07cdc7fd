package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/appointment"
	paymentRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-RentalService/internal/service/payments/models"
)

const (
	minCardNumberLength = 13
	maxCardNumberLength = 19
)

// Service сервис платежей
// Платёжный шлюз эмулируется: чётная последняя цифра карты - успех,
// нечётная - отказ
type Service struct {
	paymentRepo     PaymentRepository
	appointmentRepo AppointmentRepository
	notifier        Notifier
	logger          Logger
}

// NewService создает новый экземпляр сервиса платежей
func NewService(paymentRepo PaymentRepository, appointmentRepo AppointmentRepository, notifier Notifier, logger Logger) *Service {
	return &Service{
		paymentRepo:     paymentRepo,
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// Pay оплачивает бронирование
// Доступно только владельцу бронирования
func (s *Service) Pay(ctx context.Context, appointmentID int64, req *models.PayRequest) (*models.PaymentResponse, error) {
	s.logger.Info("Pay: user=%d pays appointment=%d", req.UserID, appointmentID)

	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Pay: appointment id=%d not found", appointmentID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Pay: failed to get appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: Pay - appointment lookup: %v", ErrInternal, err)
	}

	if appointment.UserID != req.UserID {
		s.logger.Warn("Pay: user=%d is not the owner of appointment=%d", req.UserID, appointmentID)
		return nil, ErrAccessDenied
	}

	if !appointment.IsActive() || appointment.Status == domain.StatusCompleted {
		s.logger.Warn("Pay: appointment id=%d is not payable, status=%s", appointmentID, appointment.Status)
		return nil, ErrAppointmentNotPayable
	}

	latest, err := s.paymentRepo.GetLatestByAppointment(ctx, appointmentID)
	if err != nil && !errors.Is(err, paymentRepo.ErrPaymentNotFound) {
		s.logger.Error("Pay: failed to get latest payment for appointment=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: Pay - payment lookup: %v", ErrInternal, err)
	}
	if latest != nil && latest.IsSettled() {
		s.logger.Warn("Pay: appointment id=%d already has settled payment id=%d", appointmentID, latest.ID)
		return nil, ErrAlreadyPaid
	}

	if err := validateCardNumber(req.CardNumber); err != nil {
		s.logger.Warn("Pay: invalid card number for appointment=%d: %v", appointmentID, err)
		return nil, err
	}

	payment, err := s.paymentRepo.Create(ctx, &domain.Payment{
		AppointmentID:  appointmentID,
		UserID:         req.UserID,
		Amount:         appointment.TotalPrice,
		Status:         domain.PaymentStatusPending,
		TransactionRef: uuid.NewString(),
		CardLast4:      req.CardNumber[len(req.CardNumber)-4:],
	})
	if err != nil {
		s.logger.Error("Pay: failed to create payment for appointment=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: Pay - create payment: %v", ErrInternal, err)
	}

	status := chargeCard(req.CardNumber)
	if err := s.paymentRepo.UpdateStatus(ctx, payment.ID, status); err != nil {
		s.logger.Error("Pay: failed to update payment id=%d status=%s: %v", payment.ID, status, err)
		return nil, fmt.Errorf("%w: Pay - update payment status: %v", ErrInternal, err)
	}
	payment.Status = status

	if status == domain.PaymentStatusFailed {
		s.logger.Warn("Pay: payment id=%d declined for appointment=%d", payment.ID, appointmentID)
		s.notifyPayment(ctx, req.UserID, "Оплата отклонена",
			fmt.Sprintf("Оплата бронирования №%d на сумму %.2f отклонена банком", appointmentID, payment.Amount))
		return nil, ErrPaymentDeclined
	}

	s.logger.Info("Pay: payment id=%d completed for appointment=%d amount=%.2f", payment.ID, appointmentID, payment.Amount)
	s.notifyPayment(ctx, req.UserID, "Оплата прошла успешно",
		fmt.Sprintf("Бронирование №%d оплачено на сумму %.2f", appointmentID, payment.Amount))

	return models.FromDomainPayment(payment), nil
}

// GetByAppointment возвращает последний платёж по бронированию
// Доступно владельцу бронирования
func (s *Service) GetByAppointment(ctx context.Context, appointmentID, userID int64) (*models.PaymentResponse, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByAppointment: failed to get appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: GetByAppointment - appointment lookup: %v", ErrInternal, err)
	}
	if appointment.UserID != userID {
		return nil, ErrAccessDenied
	}

	payment, err := s.paymentRepo.GetLatestByAppointment(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			return nil, fmt.Errorf("%w: no payments for appointment %d", ErrAppointmentNotFound, appointmentID)
		}
		s.logger.Error("GetByAppointment: failed to get payment for appointment=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: GetByAppointment - payment lookup: %v", ErrInternal, err)
	}

	return models.FromDomainPayment(payment), nil
}

// chargeCard эмулирует ответ платёжного шлюза
// Чётная последняя цифра номера карты - успех, нечётная - отказ
func chargeCard(cardNumber string) domain.PaymentStatus {
	last := cardNumber[len(cardNumber)-1]
	if (last-'0')%2 == 0 {
		return domain.PaymentStatusPaid
	}
	return domain.PaymentStatusFailed
}

// validateCardNumber валидирует номер карты: только цифры, 13-19 знаков
func validateCardNumber(cardNumber string) error {
	if len(cardNumber) < minCardNumberLength || len(cardNumber) > maxCardNumberLength {
		return fmt.Errorf("%w: card number must contain %d-%d digits", ErrInvalidInput, minCardNumberLength, maxCardNumberLength)
	}
	for _, c := range cardNumber {
		if c < '0' || c > '9' {
			return fmt.Errorf("%w: card number must contain only digits", ErrInvalidInput)
		}
	}
	return nil
}

// notifyPayment отправляет уведомление об оплате, ошибки не фатальны
func (s *Service) notifyPayment(ctx context.Context, userID int64, title, message string) {
	if err := s.notifier.Notify(ctx, userID, domain.NotificationPayment, title, message); err != nil {
		s.logger.Warn("notifyPayment: failed to notify user=%d: %v", userID, err)
	}
}
