package models

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// SubscribeRequest запрос на оформление подписки
type SubscribeRequest struct {
	UserID int64
	PlanID int64
}

// PlanResponse модель тарифа подписки для ответа
type PlanResponse struct {
	ID              int64
	Tier            string
	DiscountPercent float64
	MonthlyFee      float64
	DurationDays    int
}

// SubscriptionResponse модель подписки для ответа
type SubscriptionResponse struct {
	ID              int64
	UserID          int64
	PlanID          int64
	Tier            string
	DiscountPercent float64
	StartedAt       time.Time
	ExpiresAt       time.Time
}

// FromDomainPlan конвертирует domain модель тарифа в response
func FromDomainPlan(p *domain.SubscriptionPlan) *PlanResponse {
	return &PlanResponse{
		ID:              p.ID,
		Tier:            p.Tier,
		DiscountPercent: p.DiscountPercent,
		MonthlyFee:      p.MonthlyFee,
		DurationDays:    p.DurationDays,
	}
}

// FromDomainPlans конвертирует список тарифов в response
func FromDomainPlans(plans []*domain.SubscriptionPlan) []PlanResponse {
	result := make([]PlanResponse, 0, len(plans))
	for _, p := range plans {
		result = append(result, *FromDomainPlan(p))
	}
	return result
}

// FromDomainSubscription конвертирует domain модель подписки в response
func FromDomainSubscription(s *domain.Subscription) *SubscriptionResponse {
	return &SubscriptionResponse{
		ID:              s.ID,
		UserID:          s.UserID,
		PlanID:          s.PlanID,
		Tier:            s.Tier,
		DiscountPercent: s.DiscountPercent,
		StartedAt:       s.StartedAt,
		ExpiresAt:       s.ExpiresAt,
	}
}
