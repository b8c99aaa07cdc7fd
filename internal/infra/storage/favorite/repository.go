package favorite

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

const uniqueViolationCode = "23505"

// Repository репозиторий избранного
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория избранного
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Add добавляет автомобиль в избранное пользователя
func (r *Repository) Add(ctx context.Context, userID, vehicleID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("favorites").
		Columns("user_id", "vehicle_id").
		Values(userID, vehicleID).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Add - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode {
			return ErrDuplicateFavorite
		}
		return fmt.Errorf("%w: Add - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// Remove убирает автомобиль из избранного пользователя
func (r *Repository) Remove(ctx context.Context, userID, vehicleID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("favorites").
		Where(squirrel.Eq{"user_id": userID, "vehicle_id": vehicleID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Remove - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Remove - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Remove - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}

// ListVehicleIDs получает ID автомобилей в избранном пользователя
// (сначала добавленные последними)
func (r *Repository) ListVehicleIDs(ctx context.Context, userID int64) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("vehicle_id").
		From("favorites").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListVehicleIDs - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListVehicleIDs - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: ListVehicleIDs - scan row: %w", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListVehicleIDs - rows error: %w", ErrScanRow, err)
	}

	return ids, nil
}
