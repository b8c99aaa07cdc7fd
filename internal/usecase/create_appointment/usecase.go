package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	promotionRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/promotion"
	subscriptionRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/subscription"
	vehicleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicle"
)

// UseCase use case для создания бронирования аренды
type UseCase struct {
	appointmentRepo  AppointmentRepository
	vehicleRepo      VehicleRepository
	promotionRepo    PromotionRepository
	subscriptionRepo SubscriptionRepository
	notifier         Notifier
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	vehicleRepo VehicleRepository,
	promotionRepo PromotionRepository,
	subscriptionRepo SubscriptionRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		vehicleRepo:      vehicleRepo,
		promotionRepo:    promotionRepo,
		subscriptionRepo: subscriptionRepo,
		notifier:         notifier,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// проверка пересечений и вставка выполняются атомарно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%d, vehicle=%d, start=%s, end=%s",
		req.UserID, req.VehicleID, req.StartAt.Format(domain.DateTimeFormat), req.EndAt.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация периода аренды относительно "сейчас"
	if err := validateRentalPeriod(req.StartAt, now); err != nil {
		uc.logger.Warn("CreateAppointment: rental period validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем автомобиль
	vehicle, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			uc.logger.Warn("CreateAppointment: vehicle id=%d not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %w", ErrInternal, err)
	}

	// 5. Проверяем, что автомобиль доступен для аренды
	if !vehicle.IsActive {
		uc.logger.Warn("CreateAppointment: vehicle id=%d is inactive", req.VehicleID)
		return nil, ErrVehicleInactive
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем активные бронирования автомобиля в окне запроса
		// с блокировкой (FOR UPDATE)
		window := domain.VehicleAppointmentsWindow{
			VehicleID: req.VehicleID,
			From:      req.StartAt,
			To:        req.EndAt,
		}

		appointments, err := uc.appointmentRepo.GetByVehicleWindow(txCtx, window)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %w", ErrInternal, err)
		}

		// 6.2. Проверяем отсутствие пересечений
		if hasOverlap(req.StartAt, req.EndAt, appointments) {
			uc.logger.Warn("CreateAppointment: vehicle id=%d is booked within requested period", req.VehicleID)
			return ErrVehicleUnavailable
		}

		// 6.3. Определяем скидку подписки
		var subscriptionPercent float64
		subscription, err := uc.subscriptionRepo.GetActiveByUser(txCtx, req.UserID)
		if err != nil && !errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
			uc.logger.Error("CreateAppointment: failed to get subscription: %v", err)
			return fmt.Errorf("%w: failed to get subscription: %w", ErrInternal, err)
		}
		if subscription != nil && subscription.IsActiveAt(now) {
			subscriptionPercent = subscription.DiscountPercent
			uc.logger.Info("CreateAppointment: subscription tier=%s discount=%.1f%% applied",
				subscription.Tier, subscriptionPercent)
		}

		// 6.4. Проверяем и применяем промокод
		var promo *domain.Promotion
		if req.PromoCode != nil {
			promo, err = uc.applyPromotion(txCtx, *req.PromoCode, vehicle, now)
			if err != nil {
				return err
			}
		}

		// 6.5. Вычисляем стоимость аренды
		breakdown := domain.CalculatePrice(vehicle.DailyRate, req.StartAt, req.EndAt, subscriptionPercent, promo)

		// 6.6. Создаем бронирование с денормализацией данных
		appointment := &domain.Appointment{
			UserID:    req.UserID,
			VehicleID: req.VehicleID,
			StartAt:   req.StartAt,
			EndAt:     req.EndAt,
			Status:    domain.StatusConfirmed,
			// Денормализация данных автомобиля
			VehicleBrand:        vehicle.Brand,
			VehicleModel:        vehicle.Model,
			VehicleLicensePlate: vehicle.LicensePlate,
			DailyRate:           vehicle.DailyRate,
			// Расчёт стоимости на момент бронирования
			Days:                 breakdown.Days,
			BasePrice:            breakdown.BasePrice,
			SubscriptionDiscount: breakdown.SubscriptionDiscount,
			PromotionDiscount:    breakdown.PromotionDiscount,
			TotalPrice:           breakdown.Total,
			PromoCode:            req.PromoCode,
			// Заметки
			Notes: req.Notes,
		}

		// 6.7. Сохраняем бронирование
		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		// 6.8. Уведомляем пользователя в той же транзакции
		message := fmt.Sprintf("%s %s забронирован с %s по %s, итого %.2f",
			created.VehicleBrand, created.VehicleModel,
			created.StartAt.Format(domain.DateTimeFormat), created.EndAt.Format(domain.DateTimeFormat),
			created.TotalPrice)
		if err := uc.notifier.Notify(txCtx, req.UserID, domain.NotificationAppointmentCreated,
			"Бронирование создано", message); err != nil {
			uc.logger.Error("CreateAppointment: failed to notify user=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: failed to notify user: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d, total=%.2f",
		result.ID, result.TotalPrice)

	// Конвертируем в response
	return &Response{
		ID:                   result.ID,
		UserID:               result.UserID,
		VehicleID:            result.VehicleID,
		StartAt:              result.StartAt,
		EndAt:                result.EndAt,
		Status:               string(result.Status),
		VehicleBrand:         result.VehicleBrand,
		VehicleModel:         result.VehicleModel,
		VehicleLicensePlate:  result.VehicleLicensePlate,
		DailyRate:            result.DailyRate,
		Days:                 result.Days,
		BasePrice:            result.BasePrice,
		SubscriptionDiscount: result.SubscriptionDiscount,
		PromotionDiscount:    result.PromotionDiscount,
		TotalPrice:           result.TotalPrice,
		PromoCode:            result.PromoCode,
		Notes:                result.Notes,
		CreatedAt:            result.CreatedAt,
		UpdatedAt:            result.UpdatedAt,
	}, nil
}

// applyPromotion проверяет применимость промокода и резервирует одно применение
// Вызывается внутри сериализуемой транзакции: строка промокода
// блокируется (FOR UPDATE), инкремент счётчика защищён от гонки
func (uc *UseCase) applyPromotion(ctx context.Context, code string, vehicle *domain.Vehicle, now time.Time) (*domain.Promotion, error) {
	promo, err := uc.promotionRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, promotionRepo.ErrPromotionNotFound) {
			uc.logger.Warn("CreateAppointment: promotion code=%s not found", code)
			return nil, ErrPromotionNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get promotion code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: failed to get promotion: %w", ErrInternal, err)
	}

	if !promo.IsActive {
		uc.logger.Warn("CreateAppointment: promotion code=%s is inactive", code)
		return nil, ErrPromotionInactive
	}
	if !promo.IsWithinWindow(now) {
		uc.logger.Warn("CreateAppointment: promotion code=%s is outside its validity window", code)
		return nil, ErrPromotionExpired
	}
	if !promo.HasUsageLeft() {
		uc.logger.Warn("CreateAppointment: promotion code=%s usage cap reached", code)
		return nil, ErrPromotionUsageCapReached
	}
	if !promo.AppliesToVehicle(vehicle) {
		uc.logger.Warn("CreateAppointment: promotion code=%s is EV-only, vehicle id=%d is not electric",
			code, vehicle.ID)
		return nil, ErrPromotionEVOnly
	}

	if err := uc.promotionRepo.IncrementUsage(ctx, promo.ID); err != nil {
		if errors.Is(err, promotionRepo.ErrUsageCapReached) {
			uc.logger.Warn("CreateAppointment: promotion code=%s usage cap reached on increment", code)
			return nil, ErrPromotionUsageCapReached
		}
		uc.logger.Error("CreateAppointment: failed to increment usage of promotion code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: failed to increment promotion usage: %w", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: promotion code=%s applied, discount=%.1f%%", code, promo.Percent)
	return promo, nil
}
