package subscription

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

// Repository репозиторий подписок и тарифных планов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория подписок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetPlanByID получает тарифный план по ID
func (r *Repository) GetPlanByID(ctx context.Context, id int64) (*domain.SubscriptionPlan, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tier",
		"discount_percent",
		"monthly_fee",
		"duration_days",
		"created_at",
	).
		From("subscription_plans").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPlanByID - build select query: %w", ErrBuildQuery, err)
	}

	var plan domain.SubscriptionPlan
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&plan.ID,
		&plan.Tier,
		&plan.DiscountPercent,
		&plan.MonthlyFee,
		&plan.DurationDays,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPlanByID - scan plan: %w", ErrScanRow, err)
	}

	plan.CreatedAt = createdAt.Time

	return &plan, nil
}

// ListPlans получает все тарифные планы (отсортированы по скидке)
func (r *Repository) ListPlans(ctx context.Context) ([]*domain.SubscriptionPlan, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tier",
		"discount_percent",
		"monthly_fee",
		"duration_days",
		"created_at",
	).
		From("subscription_plans").
		OrderBy("discount_percent ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListPlans - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPlans - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	plans := make([]*domain.SubscriptionPlan, 0)
	for rows.Next() {
		var plan domain.SubscriptionPlan
		var createdAt sql.NullTime
		if err := rows.Scan(
			&plan.ID,
			&plan.Tier,
			&plan.DiscountPercent,
			&plan.MonthlyFee,
			&plan.DurationDays,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListPlans - scan row: %w", ErrScanRow, err)
		}
		plan.CreatedAt = createdAt.Time
		plans = append(plans, &plan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPlans - rows error: %w", ErrScanRow, err)
	}

	return plans, nil
}

// Create оформляет подписку пользователю
func (r *Repository) Create(ctx context.Context, s *domain.Subscription) (*domain.Subscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("subscriptions").
		Columns(
			"user_id",
			"plan_id",
			"tier",
			"discount_percent",
			"started_at",
			"expires_at",
		).
		Values(
			s.UserID,
			s.PlanID,
			s.Tier,
			s.DiscountPercent,
			s.StartedAt,
			s.ExpiresAt,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time

	return s, nil
}

// GetActiveByUser получает активную подписку пользователя
// Активная = не отменена и не истекла на момент запроса
func (r *Repository) GetActiveByUser(ctx context.Context, userID int64) (*domain.Subscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"plan_id",
		"tier",
		"discount_percent",
		"started_at",
		"expires_at",
		"cancelled_at",
		"created_at",
	).
		From("subscriptions").
		Where(squirrel.Eq{"user_id": userID, "cancelled_at": nil}).
		Where(squirrel.Expr("expires_at > NOW()")).
		OrderBy("expires_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByUser - build select query: %w", ErrBuildQuery, err)
	}

	var s domain.Subscription
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.UserID,
		&s.PlanID,
		&s.Tier,
		&s.DiscountPercent,
		&s.StartedAt,
		&s.ExpiresAt,
		&s.CancelledAt,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByUser - scan subscription: %w", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time

	return &s, nil
}
