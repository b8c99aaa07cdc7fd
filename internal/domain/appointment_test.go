package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentOverlaps(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	appointment := &Appointment{
		StartAt: base,
		EndAt:   base.Add(48 * time.Hour),
	}

	tests := []struct {
		name     string
		startAt  time.Time
		endAt    time.Time
		expected bool
	}{
		{
			name:     "fully inside",
			startAt:  base.Add(12 * time.Hour),
			endAt:    base.Add(24 * time.Hour),
			expected: true,
		},
		{
			name:     "fully covering",
			startAt:  base.Add(-24 * time.Hour),
			endAt:    base.Add(72 * time.Hour),
			expected: true,
		},
		{
			name:     "partial overlap at start",
			startAt:  base.Add(-12 * time.Hour),
			endAt:    base.Add(12 * time.Hour),
			expected: true,
		},
		{
			name:     "partial overlap at end",
			startAt:  base.Add(36 * time.Hour),
			endAt:    base.Add(60 * time.Hour),
			expected: true,
		},
		{
			name:     "back to back before does not overlap",
			startAt:  base.Add(-24 * time.Hour),
			endAt:    base,
			expected: false,
		},
		{
			name:     "back to back after does not overlap",
			startAt:  base.Add(48 * time.Hour),
			endAt:    base.Add(72 * time.Hour),
			expected: false,
		},
		{
			name:     "completely before",
			startAt:  base.Add(-48 * time.Hour),
			endAt:    base.Add(-24 * time.Hour),
			expected: false,
		},
		{
			name:     "completely after",
			startAt:  base.Add(72 * time.Hour),
			endAt:    base.Add(96 * time.Hour),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, appointment.Overlaps(tt.startAt, tt.endAt))
		})
	}
}

func TestAppointmentIsActive(t *testing.T) {
	tests := []struct {
		status   AppointmentStatus
		expected bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusInProgress, true},
		{StatusCompleted, true},
		{StatusCancelledByUser, false},
		{StatusCancelledByCompany, false},
		{StatusNoShow, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			a := &Appointment{Status: tt.status}
			assert.Equal(t, tt.expected, a.IsActive())
		})
	}
}

func TestAppointmentCanBeCancelled(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Appointment{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Appointment{Status: StatusInProgress}).CanBeCancelled())
	assert.False(t, (&Appointment{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Appointment{Status: StatusCancelledByUser}).CanBeCancelled())
}
