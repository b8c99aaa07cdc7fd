package promotions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	promotionRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/promotion"
	subscriptionRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/subscription"
	vehicleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-RentalService/internal/service/promotions/models"
)

// Service сервис промокодов
type Service struct {
	promotionRepo    PromotionRepository
	vehicleRepo      VehicleRepository
	subscriptionRepo SubscriptionRepository
	userRepo         UserRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewService создает новый экземпляр сервиса промокодов
func NewService(
	promotionRepo PromotionRepository,
	vehicleRepo VehicleRepository,
	subscriptionRepo SubscriptionRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		promotionRepo:    promotionRepo,
		vehicleRepo:      vehicleRepo,
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Create создает промокод
// Доступно только менеджерам
func (s *Service) Create(ctx context.Context, req *models.CreatePromotionRequest) (*models.PromotionResponse, error) {
	s.logger.Info("Create: user=%d creates promotion code=%s", req.UserID, req.Code)

	if err := s.checkManagerAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: invalid request: %v", err)
		return nil, err
	}

	created, err := s.promotionRepo.Create(ctx, &domain.Promotion{
		Code:              req.Code,
		Description:       req.Description,
		Percent:           req.Percent,
		MaxDiscountAmount: req.MaxDiscountAmount,
		IsActive:          true,
		StartsAt:          req.StartsAt,
		EndsAt:            req.EndsAt,
		EVOnly:            req.EVOnly,
		UsageCap:          req.UsageCap,
	})
	if err != nil {
		if errors.Is(err, promotionRepo.ErrDuplicateCode) {
			s.logger.Warn("Create: duplicate promotion code=%s", req.Code)
			return nil, ErrDuplicateCode
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: promotion id=%d code=%s created", created.ID, created.Code)
	return models.FromDomainPromotion(created), nil
}

// Validate проверяет применимость промокода и возвращает котировку аренды
// Ничего не изменяет: dry-run расчёт для страницы оформления
func (s *Service) Validate(ctx context.Context, req *models.ValidatePromotionRequest) (*models.QuoteResponse, error) {
	s.logger.Info("Validate: code=%s vehicle=%d user=%d", req.Code, req.VehicleID, req.UserID)

	if req.Code == "" || req.VehicleID <= 0 || !req.EndAt.After(req.StartAt) {
		return nil, fmt.Errorf("%w: code, vehicleId and a valid period are required", ErrInvalidInput)
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("Validate: vehicle id=%d not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("Validate: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: Validate - vehicle lookup: %v", ErrInternal, err)
	}

	promo, err := s.promotionRepo.GetByCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, promotionRepo.ErrPromotionNotFound) {
			s.logger.Warn("Validate: promotion code=%s not found", req.Code)
			return nil, ErrPromotionNotFound
		}
		s.logger.Error("Validate: failed to get promotion code=%s: %v", req.Code, err)
		return nil, fmt.Errorf("%w: Validate - promotion lookup: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	if err := CheckApplicability(promo, vehicle, now); err != nil {
		s.logger.Warn("Validate: promotion code=%s not applicable: %v", req.Code, err)
		return nil, err
	}

	// Скидка подписки участвует в котировке, если она есть
	var subscriptionPercent float64
	if req.UserID > 0 {
		sub, err := s.subscriptionRepo.GetActiveByUser(ctx, req.UserID)
		if err != nil && !errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
			s.logger.Error("Validate: failed to get subscription for user=%d: %v", req.UserID, err)
			return nil, fmt.Errorf("%w: Validate - subscription lookup: %v", ErrInternal, err)
		}
		if sub != nil && sub.IsActiveAt(now) {
			subscriptionPercent = sub.DiscountPercent
		}
	}

	breakdown := domain.CalculatePrice(vehicle.DailyRate, req.StartAt, req.EndAt, subscriptionPercent, promo)

	s.logger.Info("Validate: code=%s applicable, total=%.2f (base=%.2f)", req.Code, breakdown.Total, breakdown.BasePrice)
	return models.FromPriceBreakdown(breakdown), nil
}

// CheckApplicability проверяет применимость промокода к автомобилю на момент now
// Используется и в dry-run котировке, и при создании бронирования
func CheckApplicability(promo *domain.Promotion, vehicle *domain.Vehicle, now time.Time) error {
	if !promo.IsActive {
		return ErrPromotionInactive
	}
	if !promo.IsWithinWindow(now) {
		return ErrPromotionExpired
	}
	if !promo.HasUsageLeft() {
		return ErrPromotionUsageCapReached
	}
	if !promo.AppliesToVehicle(vehicle) {
		return ErrPromotionEVOnly
	}
	return nil
}

// validateCreateRequest валидирует запрос на создание промокода
func validateCreateRequest(req *models.CreatePromotionRequest) error {
	if req.Code == "" {
		return fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	if req.Percent <= 0 || req.Percent > 100 {
		return fmt.Errorf("%w: percent must be in (0, 100]", ErrInvalidInput)
	}
	if req.MaxDiscountAmount < 0 {
		return fmt.Errorf("%w: maxDiscountAmount must be non-negative", ErrInvalidInput)
	}
	if !req.EndsAt.After(req.StartsAt) {
		return fmt.Errorf("%w: endsAt must be after startsAt", ErrInvalidInput)
	}
	if req.UsageCap < 0 {
		return fmt.Errorf("%w: usageCap must be non-negative", ErrInvalidInput)
	}
	return nil
}

// checkManagerAccess проверяет, что пользователь - менеджер
func (s *Service) checkManagerAccess(ctx context.Context, userID int64) error {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Warn("checkManagerAccess: failed to get user id=%d: %v", userID, err)
		return ErrAccessDenied
	}
	if !u.CanManageFleet() {
		s.logger.Warn("checkManagerAccess: user id=%d role=%s denied", userID, u.Role)
		return ErrAccessDenied
	}
	return nil
}
