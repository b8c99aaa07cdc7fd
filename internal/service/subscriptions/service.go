package subscriptions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	subscriptionRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/subscription"
	"github.com/m04kA/SMC-RentalService/internal/service/subscriptions/models"
)

// Service сервис подписок
type Service struct {
	subscriptionRepo SubscriptionRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewService создает новый экземпляр сервиса подписок
func NewService(subscriptionRepo SubscriptionRepository, logger Logger) *Service {
	return &Service{
		subscriptionRepo: subscriptionRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// ListPlans возвращает доступные тарифы подписки
func (s *Service) ListPlans(ctx context.Context) ([]models.PlanResponse, error) {
	plans, err := s.subscriptionRepo.ListPlans(ctx)
	if err != nil {
		s.logger.Error("ListPlans: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPlans - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainPlans(plans), nil
}

// Subscribe оформляет подписку на тариф
// Скидка тарифа фиксируется в подписке на момент оформления
func (s *Service) Subscribe(ctx context.Context, req *models.SubscribeRequest) (*models.SubscriptionResponse, error) {
	s.logger.Info("Subscribe: user=%d plan=%d", req.UserID, req.PlanID)

	if req.PlanID <= 0 {
		return nil, fmt.Errorf("%w: planId is required", ErrInvalidInput)
	}

	existing, err := s.subscriptionRepo.GetActiveByUser(ctx, req.UserID)
	if err != nil && !errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
		s.logger.Error("Subscribe: failed to check active subscription for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Subscribe - subscription lookup: %v", ErrInternal, err)
	}
	if existing != nil {
		s.logger.Warn("Subscribe: user=%d already has active subscription id=%d", req.UserID, existing.ID)
		return nil, ErrAlreadySubscribed
	}

	plan, err := s.subscriptionRepo.GetPlanByID(ctx, req.PlanID)
	if err != nil {
		if errors.Is(err, subscriptionRepo.ErrPlanNotFound) {
			s.logger.Warn("Subscribe: plan id=%d not found", req.PlanID)
			return nil, ErrPlanNotFound
		}
		s.logger.Error("Subscribe: failed to get plan id=%d: %v", req.PlanID, err)
		return nil, fmt.Errorf("%w: Subscribe - plan lookup: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	created, err := s.subscriptionRepo.Create(ctx, &domain.Subscription{
		UserID:          req.UserID,
		PlanID:          plan.ID,
		Tier:            plan.Tier,
		DiscountPercent: plan.DiscountPercent,
		StartedAt:       now,
		ExpiresAt:       now.Add(time.Duration(plan.DurationDays) * 24 * time.Hour),
	})
	if err != nil {
		s.logger.Error("Subscribe: failed to create subscription for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Subscribe - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Subscribe: subscription id=%d created for user=%d tier=%s", created.ID, req.UserID, created.Tier)
	return models.FromDomainSubscription(created), nil
}

// GetActive возвращает активную подписку пользователя
func (s *Service) GetActive(ctx context.Context, userID int64) (*models.SubscriptionResponse, error) {
	sub, err := s.subscriptionRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		s.logger.Error("GetActive: failed to get subscription for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetActive - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSubscription(sub), nil
}
