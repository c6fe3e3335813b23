package parking_spaces

import "errors"

var (
	ErrSpaceNotFound = errors.New("parking space not found")
	ErrNumberTaken   = errors.New("parking space number already exists")
	ErrUnknownType   = errors.New("vehicle type not found")
	ErrSpaceInUse    = errors.New("parking space is used by parking sessions")
	ErrInvalidInput  = errors.New("invalid input data")
	ErrInternal      = errors.New("service: internal error")
)
