package domain

import "time"

// SubscriptionPlan represents a membership plan granting a flat discount on bookings
type SubscriptionPlan struct {
	ID              int64
	Tier            string
	DiscountPercent float64
	MonthlyFee      float64
	DurationDays    int
	CreatedAt       time.Time
}

// Subscription represents a user's membership
// У пользователя может быть не более одной активной подписки
type Subscription struct {
	ID     int64
	UserID int64
	PlanID int64

	// Denormalized plan data: скидка фиксируется на момент оформления
	Tier            string
	DiscountPercent float64

	StartedAt   time.Time
	ExpiresAt   time.Time
	CancelledAt *time.Time
	CreatedAt   time.Time
}

// IsActiveAt returns true if the subscription grants a discount at the given moment
func (s *Subscription) IsActiveAt(now time.Time) bool {
	return s.CancelledAt == nil && now.Before(s.ExpiresAt)
}
