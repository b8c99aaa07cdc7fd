package create_promotion

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/promotions/models"
)

// CreatePromotionRequest HTTP request model
type CreatePromotionRequest struct {
	Code              string  `json:"code"`
	Description       *string `json:"description,omitempty"`
	Percent           float64 `json:"percent"`
	MaxDiscountAmount float64 `json:"maxDiscountAmount"`
	StartsAt          string  `json:"startsAt"` // RFC3339
	EndsAt            string  `json:"endsAt"`   // RFC3339
	EVOnly            bool    `json:"evOnly"`
	UsageCap          int     `json:"usageCap"`
}

// PromotionResponse HTTP response model
type PromotionResponse struct {
	ID                int64   `json:"id"`
	Code              string  `json:"code"`
	Description       *string `json:"description,omitempty"`
	Percent           float64 `json:"percent"`
	MaxDiscountAmount float64 `json:"maxDiscountAmount"`
	IsActive          bool    `json:"isActive"`
	StartsAt          string  `json:"startsAt"`
	EndsAt            string  `json:"endsAt"`
	EVOnly            bool    `json:"evOnly"`
	UsageCap          int     `json:"usageCap"`
	UsageCount        int     `json:"usageCount"`
	CreatedAt         string  `json:"createdAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreatePromotionRequest) ToServiceRequest(userID int64) (*models.CreatePromotionRequest, error) {
	startsAt, err := time.Parse(domain.DateTimeFormat, r.StartsAt)
	if err != nil {
		return nil, err
	}

	endsAt, err := time.Parse(domain.DateTimeFormat, r.EndsAt)
	if err != nil {
		return nil, err
	}

	return &models.CreatePromotionRequest{
		UserID:            userID,
		Code:              r.Code,
		Description:       r.Description,
		Percent:           r.Percent,
		MaxDiscountAmount: r.MaxDiscountAmount,
		StartsAt:          startsAt,
		EndsAt:            endsAt,
		EVOnly:            r.EVOnly,
		UsageCap:          r.UsageCap,
	}, nil
}

// FromServiceResponse конвертирует модель сервиса в HTTP response
func FromServiceResponse(resp *models.PromotionResponse) *PromotionResponse {
	return &PromotionResponse{
		ID:                resp.ID,
		Code:              resp.Code,
		Description:       resp.Description,
		Percent:           resp.Percent,
		MaxDiscountAmount: resp.MaxDiscountAmount,
		IsActive:          resp.IsActive,
		StartsAt:          resp.StartsAt.Format(domain.DateTimeFormat),
		EndsAt:            resp.EndsAt.Format(domain.DateTimeFormat),
		EVOnly:            resp.EVOnly,
		UsageCap:          resp.UsageCap,
		UsageCount:        resp.UsageCount,
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
	}
}
