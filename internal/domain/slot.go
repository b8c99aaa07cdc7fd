package domain

import "time"

// FreeSlot represents a free range between appointments of a vehicle
type FreeSlot struct {
	StartAt time.Time
	EndAt   time.Time
}

// Duration returns the length of the free range
func (s *FreeSlot) Duration() time.Duration {
	return s.EndAt.Sub(s.StartAt)
}

// FitsRental returns true if a rental of at least minDuration fits into the slot
func (s *FreeSlot) FitsRental(minDuration time.Duration) bool {
	return s.Duration() >= minDuration
}
