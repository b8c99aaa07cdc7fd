package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRentalDays(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		startAt  time.Time
		endAt    time.Time
		expected int
	}{
		{
			name:     "exactly one day",
			startAt:  base,
			endAt:    base.Add(24 * time.Hour),
			expected: 1,
		},
		{
			name:     "one day plus one hour rounds up",
			startAt:  base,
			endAt:    base.Add(25 * time.Hour),
			expected: 2,
		},
		{
			name:     "less than a day counts as one",
			startAt:  base,
			endAt:    base.Add(3 * time.Hour),
			expected: 1,
		},
		{
			name:     "exactly three days",
			startAt:  base,
			endAt:    base.Add(72 * time.Hour),
			expected: 3,
		},
		{
			name:     "zero duration still one day",
			startAt:  base,
			endAt:    base,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RentalDays(tt.startAt, tt.endAt))
		})
	}
}

func TestCalculatePrice(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("no discounts", func(t *testing.T) {
		breakdown := CalculatePrice(100, base, base.Add(48*time.Hour), 0, nil)

		assert.Equal(t, 2, breakdown.Days)
		assert.Equal(t, 200.0, breakdown.BasePrice)
		assert.Equal(t, 0.0, breakdown.SubscriptionDiscount)
		assert.Equal(t, 0.0, breakdown.PromotionDiscount)
		assert.Equal(t, 200.0, breakdown.Total)
	})

	t.Run("subscription discount only", func(t *testing.T) {
		breakdown := CalculatePrice(100, base, base.Add(48*time.Hour), 10, nil)

		assert.Equal(t, 20.0, breakdown.SubscriptionDiscount)
		assert.Equal(t, 180.0, breakdown.Total)
	})

	t.Run("discounts stack additively from base price", func(t *testing.T) {
		promo := &Promotion{Percent: 20}
		breakdown := CalculatePrice(100, base, base.Add(48*time.Hour), 10, promo)

		// 10% и 20% считаются от 200, а не последовательно
		assert.Equal(t, 20.0, breakdown.SubscriptionDiscount)
		assert.Equal(t, 40.0, breakdown.PromotionDiscount)
		assert.Equal(t, 140.0, breakdown.Total)
	})

	t.Run("promo discount capped by max amount", func(t *testing.T) {
		promo := &Promotion{Percent: 50, MaxDiscountAmount: 30}
		breakdown := CalculatePrice(100, base, base.Add(48*time.Hour), 0, promo)

		assert.Equal(t, 30.0, breakdown.PromotionDiscount)
		assert.Equal(t, 170.0, breakdown.Total)
	})

	t.Run("zero max amount means no cap", func(t *testing.T) {
		promo := &Promotion{Percent: 50, MaxDiscountAmount: 0}
		breakdown := CalculatePrice(100, base, base.Add(48*time.Hour), 0, promo)

		assert.Equal(t, 100.0, breakdown.PromotionDiscount)
	})

	t.Run("total never negative", func(t *testing.T) {
		promo := &Promotion{Percent: 80}
		breakdown := CalculatePrice(100, base, base.Add(24*time.Hour), 50, promo)

		assert.Equal(t, 0.0, breakdown.Total)
	})

	t.Run("rounds to cents", func(t *testing.T) {
		breakdown := CalculatePrice(99.99, base, base.Add(24*time.Hour), 33, nil)

		assert.Equal(t, 33.0, breakdown.SubscriptionDiscount)
		assert.Equal(t, 66.99, breakdown.Total)
	})
}
