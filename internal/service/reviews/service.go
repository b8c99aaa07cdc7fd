package reviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	reviewRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/review"
	vehicleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-RentalService/internal/service/reviews/models"
)

// Service сервис отзывов
type Service struct {
	reviewRepo      ReviewRepository
	vehicleRepo     VehicleRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(reviewRepo ReviewRepository, vehicleRepo VehicleRepository, appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		reviewRepo:      reviewRepo,
		vehicleRepo:     vehicleRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Create создает отзыв на автомобиль
// Доступно только после завершённой аренды этого автомобиля
func (s *Service) Create(ctx context.Context, vehicleID int64, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("Create: user=%d reviews vehicle=%d rating=%d", req.UserID, vehicleID, req.Rating)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: invalid request: %v", err)
		return nil, err
	}

	if _, err := s.vehicleRepo.GetByID(ctx, vehicleID); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("Create: vehicle id=%d not found", vehicleID)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("Create: failed to get vehicle id=%d: %v", vehicleID, err)
		return nil, fmt.Errorf("%w: Create - vehicle lookup: %v", ErrInternal, err)
	}

	completed, err := s.appointmentRepo.HasCompletedByUserAndVehicle(ctx, req.UserID, vehicleID)
	if err != nil {
		s.logger.Error("Create: failed to check completed rentals user=%d vehicle=%d: %v", req.UserID, vehicleID, err)
		return nil, fmt.Errorf("%w: Create - rental history lookup: %v", ErrInternal, err)
	}
	if !completed {
		s.logger.Warn("Create: user=%d has no completed rental of vehicle=%d", req.UserID, vehicleID)
		return nil, ErrNotAllowed
	}

	created, err := s.reviewRepo.Create(ctx, &domain.Review{
		UserID:    req.UserID,
		VehicleID: vehicleID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		if errors.Is(err, reviewRepo.ErrDuplicateReview) {
			s.logger.Warn("Create: user=%d already reviewed vehicle=%d", req.UserID, vehicleID)
			return nil, ErrDuplicateReview
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: review id=%d created for vehicle=%d", created.ID, vehicleID)
	return models.FromDomainReview(created), nil
}

// ListByVehicle возвращает отзывы по автомобилю со средней оценкой
func (s *Service) ListByVehicle(ctx context.Context, vehicleID int64) (*models.VehicleReviewsResponse, error) {
	if _, err := s.vehicleRepo.GetByID(ctx, vehicleID); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("ListByVehicle: failed to get vehicle id=%d: %v", vehicleID, err)
		return nil, fmt.Errorf("%w: ListByVehicle - vehicle lookup: %v", ErrInternal, err)
	}

	list, err := s.reviewRepo.GetByVehicle(ctx, vehicleID)
	if err != nil {
		s.logger.Error("ListByVehicle: failed to get reviews for vehicle=%d: %v", vehicleID, err)
		return nil, fmt.Errorf("%w: ListByVehicle - repository error: %v", ErrInternal, err)
	}

	avg, err := s.reviewRepo.AverageRatingByVehicle(ctx, vehicleID)
	if err != nil {
		s.logger.Error("ListByVehicle: failed to get average rating for vehicle=%d: %v", vehicleID, err)
		return nil, fmt.Errorf("%w: ListByVehicle - average rating: %v", ErrInternal, err)
	}

	return &models.VehicleReviewsResponse{
		VehicleID:     vehicleID,
		AverageRating: avg,
		Reviews:       models.FromDomainReviews(list),
	}, nil
}

// validateCreateRequest валидирует запрос на создание отзыва
func validateCreateRequest(req *models.CreateReviewRequest) error {
	if req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
		return fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}
	if req.Comment != nil && len(*req.Comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment must not exceed %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}
	return nil
}
