package update_parking_session

import "errors"

var (
	// ErrSessionNotFound сессия не найдена
	ErrSessionNotFound = errors.New("update_parking_session: session not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_parking_session: invalid input data")

	// ErrReferenceNotFound новые автомобиль, место или тариф не существуют
	ErrReferenceNotFound = errors.New("update_parking_session: vehicle, space or tariff not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_parking_session: internal error")
)
