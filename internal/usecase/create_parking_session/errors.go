package create_parking_session

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_parking_session: invalid input data")

	// ErrInvalidInterval время выезда не позже времени въезда
	ErrInvalidInterval = errors.New("create_parking_session: time_out must be after time_in")

	// ErrTariffNotFound тариф для расчёта стоимости не найден
	ErrTariffNotFound = errors.New("create_parking_session: tariff not found")

	// ErrReferenceNotFound автомобиль, место или тариф не существуют
	ErrReferenceNotFound = errors.New("create_parking_session: vehicle, space or tariff not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_parking_session: internal error")
)
