package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	createAppointment "github.com/m04kA/SMC-RentalService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	VehicleID int64   `json:"vehicleId"`
	StartAt   string  `json:"startAt"` // RFC3339
	EndAt     string  `json:"endAt"`   // RFC3339
	PromoCode *string `json:"promoCode,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

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

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(userID int64) (*createAppointment.Request, error) {
	startAt, err := time.Parse(domain.DateTimeFormat, r.StartAt)
	if err != nil {
		return nil, err
	}

	endAt, err := time.Parse(domain.DateTimeFormat, r.EndAt)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		UserID:    userID,
		VehicleID: r.VehicleID,
		StartAt:   startAt,
		EndAt:     endAt,
		PromoCode: r.PromoCode,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
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
		CreatedAt:            resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            resp.UpdatedAt.Format(time.RFC3339),
	}
}
