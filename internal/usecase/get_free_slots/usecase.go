package get_free_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	vehicleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicle"
)

// UseCase use case для получения свободных интервалов автомобиля
type UseCase struct {
	appointmentRepo AppointmentRepository
	vehicleRepo     VehicleRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, vehicleRepo VehicleRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		vehicleRepo:     vehicleRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных интервалов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFreeSlots: vehicle=%d", req.VehicleID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetFreeSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование автомобиля
	if _, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			uc.logger.Warn("GetFreeSlots: vehicle id=%d not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("GetFreeSlots: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %w", ErrInternal, err)
	}

	// 3. Определяем окно запроса
	// По умолчанию - от "сейчас" до горизонта бронирования
	now := uc.timeProvider.Now()
	from := now
	if req.From != nil && req.From.After(now) {
		from = *req.From
	}
	to := now.AddDate(0, 0, domain.MaxAdvanceBookingDays)
	if req.To != nil && req.To.Before(to) {
		to = *req.To
	}
	if !to.After(from) {
		return nil, fmt.Errorf("%w: window end must be after window start", ErrInvalidInput)
	}

	// 4. Получаем активные бронирования автомобиля в окне
	appointments, err := uc.appointmentRepo.GetByVehicleWindow(ctx, domain.VehicleAppointmentsWindow{
		VehicleID: req.VehicleID,
		From:      from,
		To:        to,
	})
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %w", ErrInternal, err)
	}

	// 5. Вычисляем свободные интервалы
	slots := computeFreeSlots(from, to, appointments)

	uc.logger.Info("GetFreeSlots: vehicle=%d, %d free slots in window", req.VehicleID, len(slots))

	return &Response{
		VehicleID: req.VehicleID,
		From:      from,
		To:        to,
		Slots:     slots,
	}, nil
}
