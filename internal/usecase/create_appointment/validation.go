package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.VehicleID <= 0 {
		return fmt.Errorf("%w: vehicleID must be positive", ErrInvalidInput)
	}

	if req.StartAt.IsZero() || req.EndAt.IsZero() {
		return fmt.Errorf("%w: startAt and endAt are required", ErrInvalidInput)
	}

	if !req.EndAt.After(req.StartAt) {
		return fmt.Errorf("%w: endAt must be after startAt", ErrInvalidInput)
	}

	if req.PromoCode != nil && *req.PromoCode == "" {
		return fmt.Errorf("%w: promoCode must not be empty", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateRentalPeriod проверяет время начала аренды относительно "сейчас"
func validateRentalPeriod(startAt, now time.Time) error {
	if startAt.Before(now.Add(domain.MinRentalNotice)) {
		return ErrTooLateToBook
	}

	maxStart := now.AddDate(0, 0, domain.MaxAdvanceBookingDays)
	if startAt.After(maxStart) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, domain.MaxAdvanceBookingDays)
	}

	return nil
}

// hasOverlap проверяет пересечение запрошенного интервала с бронированиями
// Граничащие интервалы не конфликтуют: аренда может начаться ровно
// в момент окончания предыдущей
func hasOverlap(startAt, endAt time.Time, appointments []*domain.Appointment) bool {
	for _, a := range appointments {
		if !a.IsActive() {
			continue
		}
		if a.Overlaps(startAt, endAt) {
			return true
		}
	}
	return false
}
