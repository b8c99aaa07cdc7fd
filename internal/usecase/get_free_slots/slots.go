package get_free_slots

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// computeFreeSlots вычисляет свободные интервалы автомобиля в окне [from, to)
//
// Бронирования приходят упорядоченными по start_at. Курсор движется
// от начала окна: каждый зазор между курсором и началом очередного
// бронирования - кандидат в свободный интервал. Бронирования
// обрезаются границами окна, интервалы короче минимальной
// длительности аренды отбрасываются.
//
// Примеры (окно 01.06 10:00 - 10.06 10:00):
// - Бронирование 03.06-05.06 → слоты [01.06 10:00, 03.06) и [05.06, 10.06 10:00)
// - Бронирований нет → один слот на все окно
func computeFreeSlots(from, to time.Time, appointments []*domain.Appointment) []Slot {
	slots := make([]Slot, 0)
	cursor := from

	for _, a := range appointments {
		if !a.IsActive() {
			continue
		}

		// Бронирования целиком вне окна в выборку не попадают,
		// но частично пересекающие границы обрезаем
		start := a.StartAt
		if start.Before(from) {
			start = from
		}
		end := a.EndAt
		if end.After(to) {
			end = to
		}

		if cursor.Before(start) {
			appendIfFits(&slots, cursor, start)
		}

		if end.After(cursor) {
			cursor = end
		}
	}

	if cursor.Before(to) {
		appendIfFits(&slots, cursor, to)
	}

	return slots
}

// appendIfFits добавляет интервал, если в него помещается минимальная аренда
func appendIfFits(slots *[]Slot, start, end time.Time) {
	free := domain.FreeSlot{StartAt: start, EndAt: end}
	if free.FitsRental(domain.MinFreeSlotDuration) {
		*slots = append(*slots, Slot{StartAt: start, EndAt: end})
	}
}
