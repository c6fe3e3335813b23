package reports

import "errors"

var (
	// ErrInvalidPeriod начало периода позже конца
	ErrInvalidPeriod = errors.New("reports: start_date is after end_date")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reports: internal error")
)
