package promotion

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

// pq unique_violation
const uniqueViolationCode = "23505"

var promotionColumns = []string{
	"id",
	"code",
	"description",
	"percent",
	"max_discount_amount",
	"is_active",
	"starts_at",
	"ends_at",
	"ev_only",
	"usage_cap",
	"usage_count",
	"created_at",
	"updated_at",
}

// Repository репозиторий промокодов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория промокодов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый промокод
func (r *Repository) Create(ctx context.Context, p *domain.Promotion) (*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("promotions").
		Columns(
			"code",
			"description",
			"percent",
			"max_discount_amount",
			"is_active",
			"starts_at",
			"ends_at",
			"ev_only",
			"usage_cap",
		).
		Values(
			p.Code,
			p.Description,
			p.Percent,
			p.MaxDiscountAmount,
			p.IsActive,
			p.StartsAt,
			p.EndsAt,
			p.EVOnly,
			p.UsageCap,
		).
		Suffix("RETURNING id, usage_count, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.UsageCount, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode {
			return nil, ErrDuplicateCode
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByCode получает промокод по коду
// Внутри транзакции добавляет FOR UPDATE: конкурирующее применение
// одного промокода не пробьёт лимит использований
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(promotionColumns...).
		From("promotions").
		Where(squirrel.Eq{"code": code})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %w", ErrBuildQuery, err)
	}

	var p domain.Promotion
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.Code,
		&p.Description,
		&p.Percent,
		&p.MaxDiscountAmount,
		&p.IsActive,
		&p.StartsAt,
		&p.EndsAt,
		&p.EVOnly,
		&p.UsageCap,
		&p.UsageCount,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPromotionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan promotion: %w", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// IncrementUsage увеличивает счётчик применений промокода
// Условие в WHERE не даёт пробить лимит: 0 затронутых строк = лимит исчерпан
func (r *Repository) IncrementUsage(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("promotions").
		Set("usage_count", squirrel.Expr("usage_count + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("(usage_cap = 0 OR usage_count < usage_cap)")).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrUsageCapReached
	}

	return nil
}

// DeactivateExpired снимает флаг активности с промокодов, окно которых истекло
// Используется фоновой задачей
func (r *Repository) DeactivateExpired(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("promotions").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.Expr("ends_at < NOW()")).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeactivateExpired - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeactivateExpired - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeactivateExpired - get rows affected: %w", ErrExecQuery, err)
	}

	return rowsAffected, nil
}
