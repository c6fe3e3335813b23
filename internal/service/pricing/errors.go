package pricing

import "errors"

var (
	// ErrInvalidInterval время выезда не позже времени въезда
	ErrInvalidInterval = errors.New("pricing: time_out must be after time_in")

	// ErrTariffNotFound тариф не найден
	ErrTariffNotFound = errors.New("pricing: tariff not found")

	// ErrInternal ошибка хранилища при поиске тарифа
	ErrInternal = errors.New("pricing: internal error")
)
