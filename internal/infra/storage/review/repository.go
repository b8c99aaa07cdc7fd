package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

const uniqueViolationCode = "23505"

// Repository репозиторий отзывов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает отзыв
// Уникальность пары (user_id, vehicle_id) обеспечивается индексом
func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reviews").
		Columns(
			"user_id",
			"vehicle_id",
			"rating",
			"comment",
		).
		Values(
			review.UserID,
			review.VehicleID,
			review.Rating,
			review.Comment,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&review.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode {
			return nil, ErrDuplicateReview
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	review.CreatedAt = createdAt.Time

	return review, nil
}

// GetByVehicle получает отзывы об автомобиле (сначала новые)
func (r *Repository) GetByVehicle(ctx context.Context, vehicleID int64) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"vehicle_id",
		"rating",
		"comment",
		"created_at",
	).
		From("reviews").
		Where(squirrel.Eq{"vehicle_id": vehicleID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByVehicle - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVehicle - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		var createdAt sql.NullTime
		if err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.VehicleID,
			&review.Rating,
			&review.Comment,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: GetByVehicle - scan row: %w", ErrScanRow, err)
		}
		review.CreatedAt = createdAt.Time
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByVehicle - rows error: %w", ErrScanRow, err)
	}

	return reviews, nil
}

// AverageRatingByVehicle вычисляет средний рейтинг автомобиля
// Возвращает 0, если отзывов нет
func (r *Repository) AverageRatingByVehicle(ctx context.Context, vehicleID int64) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(AVG(rating), 0)").
		From("reviews").
		Where(squirrel.Eq{"vehicle_id": vehicleID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: AverageRatingByVehicle - build select query: %w", ErrBuildQuery, err)
	}

	var avg float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&avg); err != nil {
		return 0, fmt.Errorf("%w: AverageRatingByVehicle - scan: %w", ErrScanRow, err)
	}

	return avg, nil
}
