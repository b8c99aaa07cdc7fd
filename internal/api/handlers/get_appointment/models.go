package get_appointment

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/appointments/models"
)

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	VehicleID int64  `json:"vehicleId"`
	StartAt   string `json:"startAt"`
	EndAt     string `json:"endAt"`
	Status    string `json:"status"`

	VehicleBrand        string  `json:"vehicleBrand"`
	VehicleModel        string  `json:"vehicleModel"`
	VehicleLicensePlate string  `json:"vehicleLicensePlate"`
	DailyRate           float64 `json:"dailyRate"`

	Days                 int     `json:"days"`
	BasePrice            float64 `json:"basePrice"`
	SubscriptionDiscount float64 `json:"subscriptionDiscount"`
	PromotionDiscount    float64 `json:"promotionDiscount"`
	TotalPrice           float64 `json:"totalPrice"`
	PromoCode            *string `json:"promoCode,omitempty"`

	Notes *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromServiceResponse конвертирует модель сервиса в HTTP response
func FromServiceResponse(resp *models.AppointmentResponse) *AppointmentResponse {
	var cancelledAt *string
	if resp.CancelledAt != nil {
		v := resp.CancelledAt.Format(time.RFC3339)
		cancelledAt = &v
	}

	return &AppointmentResponse{
		ID:                   resp.ID,
		UserID:               resp.UserID,
		VehicleID:            resp.VehicleID,
		StartAt:              resp.StartAt.Format(domain.DateTimeFormat),
		EndAt:                resp.EndAt.Format(domain.DateTimeFormat),
		Status:               resp.Status,
		VehicleBrand:         resp.VehicleBrand,
		VehicleModel:         resp.VehicleModel,
		VehicleLicensePlate:  resp.VehicleLicensePlate,
		DailyRate:            resp.DailyRate,
		Days:                 resp.Days,
		BasePrice:            resp.BasePrice,
		SubscriptionDiscount: resp.SubscriptionDiscount,
		PromotionDiscount:    resp.PromotionDiscount,
		TotalPrice:           resp.TotalPrice,
		PromoCode:            resp.PromoCode,
		Notes:                resp.Notes,
		CancellationReason:   resp.CancellationReason,
		CancelledAt:          cancelledAt,
		CreatedAt:            resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            resp.UpdatedAt.Format(time.RFC3339),
	}
}
