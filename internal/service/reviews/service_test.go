package reviews

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	reviewRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/review"
	vehicleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-RentalService/internal/service/reviews/models"
)

type fakeReviewRepo struct {
	reviews   []*domain.Review
	duplicate bool
	average   float64
}

func (f *fakeReviewRepo) Create(_ context.Context, r *domain.Review) (*domain.Review, error) {
	if f.duplicate {
		return nil, reviewRepo.ErrDuplicateReview
	}
	stored := *r
	stored.ID = 5
	stored.CreatedAt = time.Now()
	f.reviews = append(f.reviews, &stored)
	return &stored, nil
}

func (f *fakeReviewRepo) GetByVehicle(_ context.Context, _ int64) ([]*domain.Review, error) {
	return f.reviews, nil
}

func (f *fakeReviewRepo) AverageRatingByVehicle(_ context.Context, _ int64) (float64, error) {
	return f.average, nil
}

type fakeVehicleRepo struct {
	exists bool
}

func (f *fakeVehicleRepo) GetByID(_ context.Context, id int64) (*domain.Vehicle, error) {
	if !f.exists {
		return nil, vehicleRepo.ErrVehicleNotFound
	}
	return &domain.Vehicle{ID: id}, nil
}

type fakeAppointmentRepo struct {
	hasCompleted bool
}

func (f *fakeAppointmentRepo) HasCompletedByUserAndVehicle(_ context.Context, _, _ int64) (bool, error) {
	return f.hasCompleted, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestCreateReview(t *testing.T) {
	newService := func() (*Service, *fakeReviewRepo, *fakeVehicleRepo, *fakeAppointmentRepo) {
		reviews := &fakeReviewRepo{}
		vehicles := &fakeVehicleRepo{exists: true}
		appointments := &fakeAppointmentRepo{hasCompleted: true}
		return NewService(reviews, vehicles, appointments, noopLogger{}), reviews, vehicles, appointments
	}

	t.Run("creates review after completed rental", func(t *testing.T) {
		svc, _, _, _ := newService()

		resp, err := svc.Create(context.Background(), 1, &models.CreateReviewRequest{
			UserID: 10,
			Rating: 5,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.ID)
		assert.Equal(t, 5, resp.Rating)
	})

	t.Run("rejects review without completed rental", func(t *testing.T) {
		svc, _, _, appointments := newService()
		appointments.hasCompleted = false

		_, err := svc.Create(context.Background(), 1, &models.CreateReviewRequest{
			UserID: 10,
			Rating: 4,
		})

		assert.ErrorIs(t, err, ErrNotAllowed)
	})

	t.Run("rejects rating outside 1..5", func(t *testing.T) {
		svc, _, _, _ := newService()

		_, err := svc.Create(context.Background(), 1, &models.CreateReviewRequest{UserID: 10, Rating: 0})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.Create(context.Background(), 1, &models.CreateReviewRequest{UserID: 10, Rating: 6})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects overlong comment", func(t *testing.T) {
		svc, _, _, _ := newService()
		comment := strings.Repeat("a", domain.MaxCommentLength+1)

		_, err := svc.Create(context.Background(), 1, &models.CreateReviewRequest{
			UserID:  10,
			Rating:  4,
			Comment: &comment,
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		svc, _, vehicles, _ := newService()
		vehicles.exists = false

		_, err := svc.Create(context.Background(), 1, &models.CreateReviewRequest{UserID: 10, Rating: 4})

		assert.ErrorIs(t, err, ErrVehicleNotFound)
	})

	t.Run("second review of the same vehicle is rejected", func(t *testing.T) {
		svc, reviews, _, _ := newService()
		reviews.duplicate = true

		_, err := svc.Create(context.Background(), 1, &models.CreateReviewRequest{UserID: 10, Rating: 4})

		assert.ErrorIs(t, err, ErrDuplicateReview)
	})
}

func TestListByVehicle(t *testing.T) {
	reviews := &fakeReviewRepo{
		reviews: []*domain.Review{
			{ID: 1, VehicleID: 1, Rating: 5},
			{ID: 2, VehicleID: 1, Rating: 4},
		},
		average: 4.5,
	}
	svc := NewService(reviews, &fakeVehicleRepo{exists: true}, &fakeAppointmentRepo{}, noopLogger{})

	resp, err := svc.ListByVehicle(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.VehicleID)
	assert.Equal(t, 4.5, resp.AverageRating)
	assert.Len(t, resp.Reviews, 2)
}
