package promotions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

func TestCheckApplicability(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	validPromo := func() *domain.Promotion {
		return &domain.Promotion{
			Code:     "SUMMER20",
			Percent:  20,
			IsActive: true,
			StartsAt: now.AddDate(0, 0, -14),
			EndsAt:   now.AddDate(0, 0, 14),
		}
	}

	petrol := &domain.Vehicle{Fuel: domain.FuelTypePetrol}
	electric := &domain.Vehicle{Fuel: domain.FuelTypeElectric}

	t.Run("applicable promo passes all checks", func(t *testing.T) {
		assert.NoError(t, CheckApplicability(validPromo(), petrol, now))
	})

	t.Run("inactive promo", func(t *testing.T) {
		promo := validPromo()
		promo.IsActive = false

		assert.ErrorIs(t, CheckApplicability(promo, petrol, now), ErrPromotionInactive)
	})

	t.Run("promo before its window", func(t *testing.T) {
		promo := validPromo()
		promo.StartsAt = now.AddDate(0, 0, 1)
		promo.EndsAt = now.AddDate(0, 0, 30)

		assert.ErrorIs(t, CheckApplicability(promo, petrol, now), ErrPromotionExpired)
	})

	t.Run("promo after its window", func(t *testing.T) {
		promo := validPromo()
		promo.StartsAt = now.AddDate(0, 0, -30)
		promo.EndsAt = now.AddDate(0, 0, -1)

		assert.ErrorIs(t, CheckApplicability(promo, petrol, now), ErrPromotionExpired)
	})

	t.Run("usage cap reached", func(t *testing.T) {
		promo := validPromo()
		promo.UsageCap = 100
		promo.UsageCount = 100

		assert.ErrorIs(t, CheckApplicability(promo, petrol, now), ErrPromotionUsageCapReached)
	})

	t.Run("ev only promo needs electric vehicle", func(t *testing.T) {
		promo := validPromo()
		promo.EVOnly = true

		assert.ErrorIs(t, CheckApplicability(promo, petrol, now), ErrPromotionEVOnly)
		assert.NoError(t, CheckApplicability(promo, electric, now))
	})

	t.Run("inactive check comes before window check", func(t *testing.T) {
		promo := validPromo()
		promo.IsActive = false
		promo.EndsAt = now.AddDate(0, 0, -1)

		assert.ErrorIs(t, CheckApplicability(promo, petrol, now), ErrPromotionInactive)
	})
}
