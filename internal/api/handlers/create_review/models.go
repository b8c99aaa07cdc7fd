package create_review

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/service/reviews/models"
)

// CreateReviewRequest HTTP request model
type CreateReviewRequest struct {
	Rating  int     `json:"rating"`
	Comment *string `json:"comment,omitempty"`
}

// ReviewResponse HTTP response model
type ReviewResponse struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"userId"`
	VehicleID int64   `json:"vehicleId"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateReviewRequest) ToServiceRequest(userID int64) *models.CreateReviewRequest {
	return &models.CreateReviewRequest{
		UserID:  userID,
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}

// FromServiceResponse конвертирует модель сервиса в HTTP response
func FromServiceResponse(resp *models.ReviewResponse) *ReviewResponse {
	return &ReviewResponse{
		ID:        resp.ID,
		UserID:    resp.UserID,
		VehicleID: resp.VehicleID,
		Rating:    resp.Rating,
		Comment:   resp.Comment,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
