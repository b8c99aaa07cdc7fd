package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPromotionIsWithinWindow(t *testing.T) {
	startsAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	endsAt := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)
	p := &Promotion{StartsAt: startsAt, EndsAt: endsAt}

	assert.True(t, p.IsWithinWindow(startsAt))
	assert.True(t, p.IsWithinWindow(endsAt))
	assert.True(t, p.IsWithinWindow(startsAt.Add(15*24*time.Hour)))
	assert.False(t, p.IsWithinWindow(startsAt.Add(-time.Second)))
	assert.False(t, p.IsWithinWindow(endsAt.Add(time.Second)))
}

func TestPromotionHasUsageLeft(t *testing.T) {
	assert.True(t, (&Promotion{UsageCap: 0, UsageCount: 1000}).HasUsageLeft())
	assert.True(t, (&Promotion{UsageCap: 10, UsageCount: 9}).HasUsageLeft())
	assert.False(t, (&Promotion{UsageCap: 10, UsageCount: 10}).HasUsageLeft())
	assert.False(t, (&Promotion{UsageCap: 10, UsageCount: 11}).HasUsageLeft())
}

func TestPromotionAppliesToVehicle(t *testing.T) {
	electric := &Vehicle{Fuel: FuelTypeElectric}
	petrol := &Vehicle{Fuel: FuelTypePetrol}

	regular := &Promotion{EVOnly: false}
	evOnly := &Promotion{EVOnly: true}

	assert.True(t, regular.AppliesToVehicle(electric))
	assert.True(t, regular.AppliesToVehicle(petrol))
	assert.True(t, evOnly.AppliesToVehicle(electric))
	assert.False(t, evOnly.AppliesToVehicle(petrol))
}
