package update_parking_session

import "fmt"

func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}
	if req.VehicleID != nil && *req.VehicleID <= 0 {
		return fmt.Errorf("%w: vehicle_id must be positive", ErrInvalidInput)
	}
	if req.SpaceID != nil && *req.SpaceID <= 0 {
		return fmt.Errorf("%w: space_id must be positive", ErrInvalidInput)
	}
	if req.TariffID != nil && *req.TariffID <= 0 {
		return fmt.Errorf("%w: tariff_id must be positive", ErrInvalidInput)
	}
	if req.TimeIn != nil && req.TimeIn.IsZero() {
		return fmt.Errorf("%w: time_in must not be empty", ErrInvalidInput)
	}
	return nil
}
