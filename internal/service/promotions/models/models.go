package models

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// CreatePromotionRequest запрос на создание промокода (только менеджер)
type CreatePromotionRequest struct {
	UserID            int64 // Инициатор операции
	Code              string
	Description       *string
	Percent           float64
	MaxDiscountAmount float64
	StartsAt          time.Time
	EndsAt            time.Time
	EVOnly            bool
	UsageCap          int
}

// ValidatePromotionRequest запрос на проверку промокода (dry-run расчёт скидки)
type ValidatePromotionRequest struct {
	UserID    int64 // Для учёта скидки подписки в котировке
	Code      string
	VehicleID int64
	StartAt   time.Time
	EndAt     time.Time
}

// PromotionResponse модель промокода для ответа
type PromotionResponse struct {
	ID                int64
	Code              string
	Description       *string
	Percent           float64
	MaxDiscountAmount float64
	IsActive          bool
	StartsAt          time.Time
	EndsAt            time.Time
	EVOnly            bool
	UsageCap          int
	UsageCount        int
	CreatedAt         time.Time
}

// QuoteResponse котировка аренды со скидками
type QuoteResponse struct {
	Days                 int
	BasePrice            float64
	SubscriptionDiscount float64
	PromotionDiscount    float64
	Total                float64
}

// FromDomainPromotion конвертирует domain модель в response
func FromDomainPromotion(p *domain.Promotion) *PromotionResponse {
	return &PromotionResponse{
		ID:                p.ID,
		Code:              p.Code,
		Description:       p.Description,
		Percent:           p.Percent,
		MaxDiscountAmount: p.MaxDiscountAmount,
		IsActive:          p.IsActive,
		StartsAt:          p.StartsAt,
		EndsAt:            p.EndsAt,
		EVOnly:            p.EVOnly,
		UsageCap:          p.UsageCap,
		UsageCount:        p.UsageCount,
		CreatedAt:         p.CreatedAt,
	}
}

// FromPriceBreakdown конвертирует расчёт цены в котировку
func FromPriceBreakdown(b domain.PriceBreakdown) *QuoteResponse {
	return &QuoteResponse{
		Days:                 b.Days,
		BasePrice:            b.BasePrice,
		SubscriptionDiscount: b.SubscriptionDiscount,
		PromotionDiscount:    b.PromotionDiscount,
		Total:                b.Total,
	}
}
