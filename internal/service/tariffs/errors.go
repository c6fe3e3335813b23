package tariffs

import "errors"

var (
	ErrTariffNotFound = errors.New("tariff not found")
	ErrTariffInUse    = errors.New("tariff is used by parking sessions")
	ErrInvalidInput   = errors.New("invalid input data")
	ErrInternal       = errors.New("service: internal error")
)
