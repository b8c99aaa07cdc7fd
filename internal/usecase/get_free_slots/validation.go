package get_free_slots

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VehicleID <= 0 {
		return fmt.Errorf("%w: vehicleID must be positive", ErrInvalidInput)
	}

	if req.From != nil && req.To != nil && !req.To.After(*req.From) {
		return fmt.Errorf("%w: to must be after from", ErrInvalidInput)
	}

	return nil
}
