package domain

import "time"

// Promotion represents a time-boxed, usage-capped discount code
type Promotion struct {
	ID                int64
	Code              string
	Description       *string
	Percent           float64 // Процент скидки от базовой цены
	MaxDiscountAmount float64 // Потолок суммы скидки (0 = без потолка)
	IsActive          bool
	StartsAt          time.Time
	EndsAt            time.Time
	EVOnly            bool // Промокод только для электромобилей
	UsageCap          int  // Лимит применений (0 = без лимита)
	UsageCount        int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsWithinWindow returns true if now falls inside the promotion's validity window
func (p *Promotion) IsWithinWindow(now time.Time) bool {
	return !now.Before(p.StartsAt) && !now.After(p.EndsAt)
}

// HasUsageLeft returns true if the usage cap has not been reached
func (p *Promotion) HasUsageLeft() bool {
	return p.UsageCap == 0 || p.UsageCount < p.UsageCap
}

// AppliesToVehicle returns true if the promotion can be used with the vehicle
// EV-only промокоды применимы только к электромобилям
func (p *Promotion) AppliesToVehicle(v *Vehicle) bool {
	return !p.EVOnly || v.IsElectric()
}
