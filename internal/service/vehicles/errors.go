package vehicles

import "errors"

var (
	ErrVehicleNotFound   = errors.New("vehicle not found")
	ErrPlateTaken        = errors.New("license plate already exists")
	ErrReferenceNotFound = errors.New("client or vehicle type not found")
	ErrVehicleInUse      = errors.New("vehicle is used by parking sessions")
	ErrInvalidInput      = errors.New("invalid input data")
	ErrInternal          = errors.New("service: internal error")
)
