package subscribe

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/service/subscriptions/models"
)

// SubscribeRequest HTTP request model
type SubscribeRequest struct {
	PlanID int64 `json:"planId"`
}

// SubscriptionResponse HTTP response model
type SubscriptionResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	PlanID          int64   `json:"planId"`
	Tier            string  `json:"tier"`
	DiscountPercent float64 `json:"discountPercent"`
	StartedAt       string  `json:"startedAt"`
	ExpiresAt       string  `json:"expiresAt"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *SubscribeRequest) ToServiceRequest(userID int64) *models.SubscribeRequest {
	return &models.SubscribeRequest{
		UserID: userID,
		PlanID: r.PlanID,
	}
}

// FromServiceResponse конвертирует модель сервиса в HTTP response
func FromServiceResponse(resp *models.SubscriptionResponse) *SubscriptionResponse {
	return &SubscriptionResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		PlanID:          resp.PlanID,
		Tier:            resp.Tier,
		DiscountPercent: resp.DiscountPercent,
		StartedAt:       resp.StartedAt.Format(time.RFC3339),
		ExpiresAt:       resp.ExpiresAt.Format(time.RFC3339),
	}
}
