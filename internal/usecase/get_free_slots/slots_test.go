package get_free_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

func TestComputeFreeSlots(t *testing.T) {
	from := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

	day := func(d, h int) time.Time {
		return time.Date(2025, 6, d, h, 0, 0, 0, time.UTC)
	}

	appointment := func(start, end time.Time, status domain.AppointmentStatus) *domain.Appointment {
		return &domain.Appointment{StartAt: start, EndAt: end, Status: status}
	}

	t.Run("empty calendar yields single slot over the whole window", func(t *testing.T) {
		slots := computeFreeSlots(from, to, nil)

		require.Len(t, slots, 1)
		assert.Equal(t, from, slots[0].StartAt)
		assert.Equal(t, to, slots[0].EndAt)
	})

	t.Run("single appointment splits window in two", func(t *testing.T) {
		slots := computeFreeSlots(from, to, []*domain.Appointment{
			appointment(day(3, 0), day(5, 0), domain.StatusConfirmed),
		})

		require.Len(t, slots, 2)
		assert.Equal(t, from, slots[0].StartAt)
		assert.Equal(t, day(3, 0), slots[0].EndAt)
		assert.Equal(t, day(5, 0), slots[1].StartAt)
		assert.Equal(t, to, slots[1].EndAt)
	})

	t.Run("back to back appointments leave no gap between them", func(t *testing.T) {
		slots := computeFreeSlots(from, to, []*domain.Appointment{
			appointment(day(2, 0), day(4, 0), domain.StatusConfirmed),
			appointment(day(4, 0), day(6, 0), domain.StatusConfirmed),
		})

		require.Len(t, slots, 2)
		assert.Equal(t, day(2, 0), slots[0].EndAt)
		assert.Equal(t, day(6, 0), slots[1].StartAt)
	})

	t.Run("cancelled appointments are ignored", func(t *testing.T) {
		slots := computeFreeSlots(from, to, []*domain.Appointment{
			appointment(day(3, 0), day(5, 0), domain.StatusCancelledByUser),
			appointment(day(6, 0), day(7, 0), domain.StatusNoShow),
		})

		require.Len(t, slots, 1)
		assert.Equal(t, from, slots[0].StartAt)
		assert.Equal(t, to, slots[0].EndAt)
	})

	t.Run("appointment crossing window start is clamped", func(t *testing.T) {
		slots := computeFreeSlots(from, to, []*domain.Appointment{
			appointment(day(1, 0), day(2, 0), domain.StatusInProgress),
		})

		require.Len(t, slots, 1)
		assert.Equal(t, day(2, 0), slots[0].StartAt)
		assert.Equal(t, to, slots[0].EndAt)
	})

	t.Run("appointment crossing window end is clamped", func(t *testing.T) {
		slots := computeFreeSlots(from, to, []*domain.Appointment{
			appointment(day(9, 0), day(12, 0), domain.StatusConfirmed),
		})

		require.Len(t, slots, 1)
		assert.Equal(t, from, slots[0].StartAt)
		assert.Equal(t, day(9, 0), slots[0].EndAt)
	})

	t.Run("gaps shorter than minimum rental are suppressed", func(t *testing.T) {
		// Зазор между бронированиями всего 30 минут
		slots := computeFreeSlots(from, to, []*domain.Appointment{
			appointment(day(2, 0), day(3, 12), domain.StatusConfirmed),
			appointment(day(3, 12).Add(30*time.Minute), day(5, 0), domain.StatusConfirmed),
		})

		require.Len(t, slots, 2)
		assert.Equal(t, day(2, 0), slots[0].EndAt)
		assert.Equal(t, day(5, 0), slots[1].StartAt)
	})

	t.Run("fully booked window yields no slots", func(t *testing.T) {
		slots := computeFreeSlots(from, to, []*domain.Appointment{
			appointment(day(1, 0), day(11, 0), domain.StatusConfirmed),
		})

		assert.Empty(t, slots)
	})

	t.Run("overlapping appointments do not produce phantom gaps", func(t *testing.T) {
		slots := computeFreeSlots(from, to, []*domain.Appointment{
			appointment(day(2, 0), day(5, 0), domain.StatusConfirmed),
			appointment(day(3, 0), day(4, 0), domain.StatusPending),
		})

		require.Len(t, slots, 2)
		assert.Equal(t, day(2, 0), slots[0].EndAt)
		assert.Equal(t, day(5, 0), slots[1].StartAt)
	})
}
