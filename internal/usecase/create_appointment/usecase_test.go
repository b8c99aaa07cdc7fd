package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	promotionRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/promotion"
	subscriptionRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/subscription"
	vehicleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

// Фейки зависимостей use case

type fakeAppointmentRepo struct {
	existing []*domain.Appointment
	created  *domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	stored := *a
	stored.ID = 42
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.created = &stored
	return &stored, nil
}

func (f *fakeAppointmentRepo) GetByVehicleWindow(_ context.Context, _ domain.VehicleAppointmentsWindow) ([]*domain.Appointment, error) {
	return f.existing, nil
}

type fakeVehicleRepo struct {
	vehicle *domain.Vehicle
}

func (f *fakeVehicleRepo) GetByID(_ context.Context, id int64) (*domain.Vehicle, error) {
	if f.vehicle == nil || f.vehicle.ID != id {
		return nil, vehicleRepo.ErrVehicleNotFound
	}
	return f.vehicle, nil
}

type fakePromotionRepo struct {
	promo      *domain.Promotion
	usageCalls int
}

func (f *fakePromotionRepo) GetByCode(_ context.Context, code string) (*domain.Promotion, error) {
	if f.promo == nil || f.promo.Code != code {
		return nil, promotionRepo.ErrPromotionNotFound
	}
	return f.promo, nil
}

func (f *fakePromotionRepo) IncrementUsage(_ context.Context, _ int64) error {
	f.usageCalls++
	return nil
}

type fakeSubscriptionRepo struct {
	subscription *domain.Subscription
}

func (f *fakeSubscriptionRepo) GetActiveByUser(_ context.Context, _ int64) (*domain.Subscription, error) {
	if f.subscription == nil {
		return nil, subscriptionRepo.ErrSubscriptionNotFound
	}
	return f.subscription, nil
}

type fakeNotifier struct {
	notified []string
}

func (f *fakeNotifier) Notify(_ context.Context, _ int64, _ domain.NotificationType, title, _ string) error {
	f.notified = append(f.notified, title)
	return nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

type useCaseFixture struct {
	uc            *UseCase
	appointments  *fakeAppointmentRepo
	vehicles      *fakeVehicleRepo
	promotions    *fakePromotionRepo
	subscriptions *fakeSubscriptionRepo
	notifier      *fakeNotifier
	now           time.Time
}

func newFixture() *useCaseFixture {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	f := &useCaseFixture{
		appointments: &fakeAppointmentRepo{},
		vehicles: &fakeVehicleRepo{vehicle: &domain.Vehicle{
			ID:           1,
			Brand:        "Tesla",
			Model:        "Model 3",
			Fuel:         domain.FuelTypeElectric,
			LicensePlate: "A123BC",
			DailyRate:    100,
			IsActive:     true,
		}},
		promotions:    &fakePromotionRepo{},
		subscriptions: &fakeSubscriptionRepo{},
		notifier:      &fakeNotifier{},
		now:           now,
	}

	f.uc = NewUseCase(f.appointments, f.vehicles, f.promotions, f.subscriptions,
		f.notifier, &fakeTxManager{}, noopLogger{})
	f.uc.timeProvider = &fixedTimeProvider{now: now}

	return f
}

func (f *useCaseFixture) request() *Request {
	return &Request{
		UserID:    10,
		VehicleID: 1,
		StartAt:   f.now.Add(2 * time.Hour),
		EndAt:     f.now.Add(50 * time.Hour),
	}
}

func TestCreateAppointment(t *testing.T) {
	t.Run("creates confirmed appointment with denormalized vehicle data", func(t *testing.T) {
		f := newFixture()

		resp, err := f.uc.Execute(context.Background(), f.request())

		require.NoError(t, err)
		assert.Equal(t, int64(42), resp.ID)
		assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
		assert.Equal(t, "Tesla", resp.VehicleBrand)
		assert.Equal(t, "Model 3", resp.VehicleModel)
		assert.Equal(t, "A123BC", resp.VehicleLicensePlate)
		assert.Equal(t, 100.0, resp.DailyRate)
		assert.Equal(t, 2, resp.Days)
		assert.Equal(t, 200.0, resp.TotalPrice)
		assert.Equal(t, []string{"Бронирование создано"}, f.notifier.notified)
	})

	t.Run("rejects start less than an hour from now", func(t *testing.T) {
		f := newFixture()
		req := f.request()
		req.StartAt = f.now.Add(30 * time.Minute)

		_, err := f.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrTooLateToBook)
	})

	t.Run("rejects start beyond the booking horizon", func(t *testing.T) {
		f := newFixture()
		req := f.request()
		req.StartAt = f.now.AddDate(0, 0, domain.MaxAdvanceBookingDays+1)
		req.EndAt = req.StartAt.Add(24 * time.Hour)

		_, err := f.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrDateTooFarInFuture)
	})

	t.Run("rejects end before start", func(t *testing.T) {
		f := newFixture()
		req := f.request()
		req.EndAt = req.StartAt.Add(-time.Hour)

		_, err := f.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		f := newFixture()
		req := f.request()
		req.VehicleID = 99

		_, err := f.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrVehicleNotFound)
	})

	t.Run("inactive vehicle cannot be booked", func(t *testing.T) {
		f := newFixture()
		f.vehicles.vehicle.IsActive = false

		_, err := f.uc.Execute(context.Background(), f.request())

		assert.ErrorIs(t, err, ErrVehicleInactive)
	})

	t.Run("overlapping active appointment blocks booking", func(t *testing.T) {
		f := newFixture()
		req := f.request()
		f.appointments.existing = []*domain.Appointment{{
			StartAt: req.StartAt.Add(-time.Hour),
			EndAt:   req.StartAt.Add(time.Hour),
			Status:  domain.StatusConfirmed,
		}}

		_, err := f.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrVehicleUnavailable)
	})

	t.Run("cancelled appointment does not block booking", func(t *testing.T) {
		f := newFixture()
		req := f.request()
		f.appointments.existing = []*domain.Appointment{{
			StartAt: req.StartAt,
			EndAt:   req.EndAt,
			Status:  domain.StatusCancelledByUser,
		}}

		_, err := f.uc.Execute(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("back to back appointment does not block booking", func(t *testing.T) {
		f := newFixture()
		req := f.request()
		f.appointments.existing = []*domain.Appointment{{
			StartAt: req.EndAt,
			EndAt:   req.EndAt.Add(24 * time.Hour),
			Status:  domain.StatusConfirmed,
		}}

		_, err := f.uc.Execute(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("active subscription discount is applied", func(t *testing.T) {
		f := newFixture()
		f.subscriptions.subscription = &domain.Subscription{
			Tier:            "gold",
			DiscountPercent: 10,
			ExpiresAt:       f.now.AddDate(0, 1, 0),
		}

		resp, err := f.uc.Execute(context.Background(), f.request())

		require.NoError(t, err)
		assert.Equal(t, 20.0, resp.SubscriptionDiscount)
		assert.Equal(t, 180.0, resp.TotalPrice)
	})

	t.Run("expired subscription gives no discount", func(t *testing.T) {
		f := newFixture()
		f.subscriptions.subscription = &domain.Subscription{
			Tier:            "gold",
			DiscountPercent: 10,
			ExpiresAt:       f.now.Add(-time.Hour),
		}

		resp, err := f.uc.Execute(context.Background(), f.request())

		require.NoError(t, err)
		assert.Equal(t, 0.0, resp.SubscriptionDiscount)
	})

	t.Run("valid promo code is applied and usage incremented", func(t *testing.T) {
		f := newFixture()
		f.promotions.promo = &domain.Promotion{
			ID:       7,
			Code:     "SUMMER20",
			Percent:  20,
			IsActive: true,
			StartsAt: f.now.AddDate(0, 0, -1),
			EndsAt:   f.now.AddDate(0, 1, 0),
		}
		req := f.request()
		req.PromoCode = ptr.Ptr("SUMMER20")

		resp, err := f.uc.Execute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, 40.0, resp.PromotionDiscount)
		assert.Equal(t, 160.0, resp.TotalPrice)
		assert.Equal(t, 1, f.promotions.usageCalls)
		require.NotNil(t, resp.PromoCode)
		assert.Equal(t, "SUMMER20", *resp.PromoCode)
	})

	t.Run("unknown promo code", func(t *testing.T) {
		f := newFixture()
		req := f.request()
		req.PromoCode = ptr.Ptr("NOPE")

		_, err := f.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrPromotionNotFound)
	})

	t.Run("promo outside validity window", func(t *testing.T) {
		f := newFixture()
		f.promotions.promo = &domain.Promotion{
			ID:       7,
			Code:     "OLD",
			Percent:  20,
			IsActive: true,
			StartsAt: f.now.AddDate(0, -2, 0),
			EndsAt:   f.now.AddDate(0, -1, 0),
		}
		req := f.request()
		req.PromoCode = ptr.Ptr("OLD")

		_, err := f.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrPromotionExpired)
	})

	t.Run("promo usage cap reached", func(t *testing.T) {
		f := newFixture()
		f.promotions.promo = &domain.Promotion{
			ID:         7,
			Code:       "CAPPED",
			Percent:    20,
			IsActive:   true,
			StartsAt:   f.now.AddDate(0, 0, -1),
			EndsAt:     f.now.AddDate(0, 1, 0),
			UsageCap:   5,
			UsageCount: 5,
		}
		req := f.request()
		req.PromoCode = ptr.Ptr("CAPPED")

		_, err := f.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrPromotionUsageCapReached)
	})

	t.Run("ev only promo rejected for petrol vehicle", func(t *testing.T) {
		f := newFixture()
		f.vehicles.vehicle.Fuel = domain.FuelTypePetrol
		f.promotions.promo = &domain.Promotion{
			ID:       7,
			Code:     "EVDRIVE",
			Percent:  20,
			IsActive: true,
			StartsAt: f.now.AddDate(0, 0, -1),
			EndsAt:   f.now.AddDate(0, 1, 0),
			EVOnly:   true,
		}
		req := f.request()
		req.PromoCode = ptr.Ptr("EVDRIVE")

		_, err := f.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrPromotionEVOnly)
	})
}
