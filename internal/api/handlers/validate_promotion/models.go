package validate_promotion

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/promotions/models"
)

// ValidatePromotionRequest HTTP request model
type ValidatePromotionRequest struct {
	Code      string `json:"code"`
	VehicleID int64  `json:"vehicleId"`
	StartAt   string `json:"startAt"` // RFC3339
	EndAt     string `json:"endAt"`   // RFC3339
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	Days                 int     `json:"days"`
	BasePrice            float64 `json:"basePrice"`
	SubscriptionDiscount float64 `json:"subscriptionDiscount"`
	PromotionDiscount    float64 `json:"promotionDiscount"`
	Total                float64 `json:"total"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *ValidatePromotionRequest) ToServiceRequest(userID int64) (*models.ValidatePromotionRequest, error) {
	startAt, err := time.Parse(domain.DateTimeFormat, r.StartAt)
	if err != nil {
		return nil, err
	}

	endAt, err := time.Parse(domain.DateTimeFormat, r.EndAt)
	if err != nil {
		return nil, err
	}

	return &models.ValidatePromotionRequest{
		UserID:    userID,
		Code:      r.Code,
		VehicleID: r.VehicleID,
		StartAt:   startAt,
		EndAt:     endAt,
	}, nil
}

// FromServiceResponse конвертирует модель сервиса в HTTP response
func FromServiceResponse(resp *models.QuoteResponse) *QuoteResponse {
	return &QuoteResponse{
		Days:                 resp.Days,
		BasePrice:            resp.BasePrice,
		SubscriptionDiscount: resp.SubscriptionDiscount,
		PromotionDiscount:    resp.PromotionDiscount,
		Total:                resp.Total,
	}
}
