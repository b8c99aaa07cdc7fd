package models

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// CreateReviewRequest запрос на создание отзыва
type CreateReviewRequest struct {
	UserID  int64
	Rating  int
	Comment *string
}

// ReviewResponse модель отзыва для ответа
type ReviewResponse struct {
	ID        int64
	UserID    int64
	VehicleID int64
	Rating    int
	Comment   *string
	CreatedAt time.Time
}

// VehicleReviewsResponse отзывы по автомобилю со средней оценкой
type VehicleReviewsResponse struct {
	VehicleID     int64
	AverageRating float64
	Reviews       []ReviewResponse
}

// FromDomainReview конвертирует domain модель в response
func FromDomainReview(r *domain.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		VehicleID: r.VehicleID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

// FromDomainReviews конвертирует список отзывов в response
func FromDomainReviews(reviews []*domain.Review) []ReviewResponse {
	result := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, *FromDomainReview(r))
	}
	return result
}
