package subscriptions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	subscriptionRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/subscription"
	"github.com/m04kA/SMC-RentalService/internal/service/subscriptions/models"
)

type fakeSubscriptionRepo struct {
	active  *domain.Subscription
	plans   []*domain.SubscriptionPlan
	created *domain.Subscription
}

func (f *fakeSubscriptionRepo) ListPlans(_ context.Context) ([]*domain.SubscriptionPlan, error) {
	return f.plans, nil
}

func (f *fakeSubscriptionRepo) GetPlanByID(_ context.Context, id int64) (*domain.SubscriptionPlan, error) {
	for _, p := range f.plans {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, subscriptionRepo.ErrPlanNotFound
}

func (f *fakeSubscriptionRepo) Create(_ context.Context, s *domain.Subscription) (*domain.Subscription, error) {
	stored := *s
	stored.ID = 3
	f.created = &stored
	return &stored, nil
}

func (f *fakeSubscriptionRepo) GetActiveByUser(_ context.Context, _ int64) (*domain.Subscription, error) {
	if f.active == nil {
		return nil, subscriptionRepo.ErrSubscriptionNotFound
	}
	return f.active, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestSubscribe(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	newService := func() (*Service, *fakeSubscriptionRepo) {
		repo := &fakeSubscriptionRepo{
			plans: []*domain.SubscriptionPlan{
				{ID: 1, Tier: "silver", DiscountPercent: 5, DurationDays: 30},
				{ID: 2, Tier: "gold", DiscountPercent: 10, DurationDays: 90},
			},
		}
		svc := NewService(repo, noopLogger{})
		svc.timeProvider = &fixedTimeProvider{now: now}
		return svc, repo
	}

	t.Run("fixes plan discount and computes expiry", func(t *testing.T) {
		svc, repo := newService()

		resp, err := svc.Subscribe(context.Background(), &models.SubscribeRequest{UserID: 10, PlanID: 2})

		require.NoError(t, err)
		assert.Equal(t, "gold", resp.Tier)
		assert.Equal(t, 10.0, resp.DiscountPercent)
		assert.Equal(t, now, repo.created.StartedAt)
		assert.Equal(t, now.Add(90*24*time.Hour), repo.created.ExpiresAt)
	})

	t.Run("second active subscription is rejected", func(t *testing.T) {
		svc, repo := newService()
		repo.active = &domain.Subscription{ID: 1, UserID: 10}

		_, err := svc.Subscribe(context.Background(), &models.SubscribeRequest{UserID: 10, PlanID: 1})

		assert.ErrorIs(t, err, ErrAlreadySubscribed)
	})

	t.Run("unknown plan", func(t *testing.T) {
		svc, _ := newService()

		_, err := svc.Subscribe(context.Background(), &models.SubscribeRequest{UserID: 10, PlanID: 99})

		assert.ErrorIs(t, err, ErrPlanNotFound)
	})
}

func TestGetActive(t *testing.T) {
	repo := &fakeSubscriptionRepo{}
	svc := NewService(repo, noopLogger{})

	_, err := svc.GetActive(context.Background(), 10)
	assert.ErrorIs(t, err, ErrSubscriptionNotFound)

	repo.active = &domain.Subscription{ID: 1, UserID: 10, Tier: "gold"}
	resp, err := svc.GetActive(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "gold", resp.Tier)
}
