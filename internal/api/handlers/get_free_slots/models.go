package get_free_slots

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	getFreeSlots "github.com/m04kA/SMC-RentalService/internal/usecase/get_free_slots"
)

// SlotResponse свободный интервал
type SlotResponse struct {
	StartAt string `json:"startAt"`
	EndAt   string `json:"endAt"`
}

// FreeSlotsResponse HTTP response model
type FreeSlotsResponse struct {
	VehicleID int64          `json:"vehicleId"`
	From      string         `json:"from"`
	To        string         `json:"to"`
	Slots     []SlotResponse `json:"slots"`
}

// ParseQuery извлекает окно запроса из query параметров
func ParseQuery(r *http.Request, vehicleID int64) (*getFreeSlots.Request, error) {
	q := r.URL.Query()
	req := &getFreeSlots.Request{VehicleID: vehicleID}

	if v := q.Get("from"); v != "" {
		from, err := time.Parse(domain.DateTimeFormat, v)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}
	if v := q.Get("to"); v != "" {
		to, err := time.Parse(domain.DateTimeFormat, v)
		if err != nil {
			return nil, err
		}
		req.To = &to
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFreeSlots.Response) *FreeSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartAt: s.StartAt.Format(domain.DateTimeFormat),
			EndAt:   s.EndAt.Format(domain.DateTimeFormat),
		})
	}

	return &FreeSlotsResponse{
		VehicleID: resp.VehicleID,
		From:      resp.From.Format(domain.DateTimeFormat),
		To:        resp.To.Format(domain.DateTimeFormat),
		Slots:     slots,
	}
}
