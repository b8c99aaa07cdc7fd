package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/appointment"
	paymentRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-RentalService/internal/service/appointments/models"
)

// Service сервис для работы с бронированиями аренды
// Создание бронирования вынесено в отдельный usecase (create_appointment),
// здесь - чтение, отмена и управление статусами
type Service struct {
	appointmentRepo AppointmentRepository
	paymentRepo     PaymentRepository
	userRepo        UserRepository
	notifier        Notifier
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	appointmentRepo AppointmentRepository,
	paymentRepo PaymentRepository,
	userRepo UserRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		paymentRepo:     paymentRepo,
		userRepo:        userRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только своё бронирование, персонал - любое
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, userID)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkReadAccess(ctx, appointment, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", userID, id)
		return nil, err
	}

	return models.FromDomainAppointment(appointment), nil
}

// GetUserAppointments получает историю бронирований пользователя
// Свою историю видит владелец, чужую - только персонал
func (s *Service) GetUserAppointments(ctx context.Context, req *models.GetUserAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetUserAppointments: fetching appointments for user=%d by user=%d", req.UserID, req.RequestorID)

	if req.UserID != req.RequestorID {
		if err := s.checkStaffAccess(ctx, req.RequestorID); err != nil {
			return nil, err
		}
	}

	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserAppointments: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *req.Status)
		}
		domainStatus = &status
	}

	appointments, err := s.appointmentRepo.GetByUser(ctx, domain.UserAppointmentsFilter{
		UserID: req.UserID,
		Status: domainStatus,
	})
	if err != nil {
		s.logger.Error("GetUserAppointments: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserAppointments: fetched %d appointments for user=%d", len(appointments), req.UserID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет бронирование
// Владелец отменяет своё (cancelled_by_user), персонал - любое (cancelled_by_company)
// Оплаченный платёж при отмене возвращается (refunded)
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%d", appointmentID, req.UserID)

	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !appointment.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appointmentID, appointment.Status)
		return ErrCannotCancel
	}

	var cancelStatus domain.AppointmentStatus
	if appointment.UserID == req.UserID {
		cancelStatus = domain.StatusCancelledByUser
	} else {
		if err := s.checkStaffAccess(ctx, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel appointment id=%d", req.UserID, appointmentID)
			return ErrAccessDenied
		}
		cancelStatus = domain.StatusCancelledByCompany
	}

	if err := s.appointmentRepo.Cancel(ctx, appointmentID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.refundIfPaid(ctx, appointment)

	title := "Бронирование отменено"
	message := fmt.Sprintf("Аренда %s %s (%s - %s) отменена",
		appointment.VehicleBrand, appointment.VehicleModel,
		appointment.StartAt.Format(domain.DateFormat), appointment.EndAt.Format(domain.DateFormat))
	if err := s.notifier.Notify(ctx, appointment.UserID, domain.NotificationAppointmentCancelled, title, message); err != nil {
		// Уведомление не критично для отмены, только логируем
		s.logger.Error("Cancel: failed to notify user=%d: %v", appointment.UserID, err)
	}

	s.logger.Info("Cancel: appointment id=%d cancelled with status=%s", appointmentID, cancelStatus)
	return nil
}

// UpdateStatus обновляет статус бронирования
// Доступно только персоналу
func (s *Service) UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s by user=%d",
		appointmentID, req.Status, req.UserID)

	if err := s.checkStaffAccess(ctx, req.UserID); err != nil {
		s.logger.Warn("UpdateStatus: access denied for user=%d", req.UserID)
		return err
	}

	status, err := models.ToDomainAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s", req.Status)
		return ErrInvalidStatus
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Отмена идёт через Cancel с причиной и возвратом платежа
	if status == domain.StatusCancelledByUser || status == domain.StatusCancelledByCompany {
		s.logger.Warn("UpdateStatus: cancellation must go through Cancel, appointment id=%d", appointmentID)
		return ErrInvalidStatus
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, status); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	title := "Статус бронирования изменён"
	message := fmt.Sprintf("Аренда %s %s: новый статус %q",
		appointment.VehicleBrand, appointment.VehicleModel, status)
	if err := s.notifier.Notify(ctx, appointment.UserID, domain.NotificationAppointmentStatus, title, message); err != nil {
		s.logger.Error("UpdateStatus: failed to notify user=%d: %v", appointment.UserID, err)
	}

	s.logger.Info("UpdateStatus: appointment id=%d updated to status=%s", appointmentID, status)
	return nil
}

// refundIfPaid возвращает оплаченный платёж отменённого бронирования
// Ошибка возврата не откатывает отмену: фиксируем в логах и идём дальше
func (s *Service) refundIfPaid(ctx context.Context, appointment *domain.Appointment) {
	payment, err := s.paymentRepo.GetLatestByAppointment(ctx, appointment.ID)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			return
		}
		s.logger.Error("refundIfPaid: failed to get payment for appointment id=%d: %v", appointment.ID, err)
		return
	}

	if !payment.CanTransitionTo(domain.PaymentStatusRefunded) {
		return
	}

	if err := s.paymentRepo.UpdateStatus(ctx, payment.ID, domain.PaymentStatusRefunded); err != nil {
		s.logger.Error("refundIfPaid: failed to refund payment id=%d: %v", payment.ID, err)
		return
	}

	title := "Платёж возвращён"
	message := fmt.Sprintf("Возврат %.2f по отменённой аренде %s %s",
		payment.Amount, appointment.VehicleBrand, appointment.VehicleModel)
	if err := s.notifier.Notify(ctx, appointment.UserID, domain.NotificationPayment, title, message); err != nil {
		s.logger.Error("refundIfPaid: failed to notify user=%d: %v", appointment.UserID, err)
	}

	s.logger.Info("refundIfPaid: payment id=%d refunded for appointment id=%d", payment.ID, appointment.ID)
}

// checkReadAccess проверяет право на чтение бронирования
func (s *Service) checkReadAccess(ctx context.Context, appointment *domain.Appointment, userID int64) error {
	if appointment.UserID == userID {
		return nil
	}
	return s.checkStaffAccess(ctx, userID)
}

// checkStaffAccess проверяет, что пользователь - персонал проката
func (s *Service) checkStaffAccess(ctx context.Context, userID int64) error {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Warn("checkStaffAccess: failed to get user id=%d: %v", userID, err)
		return ErrAccessDenied
	}
	if !u.CanOperateAppointments() {
		return ErrAccessDenied
	}
	return nil
}
