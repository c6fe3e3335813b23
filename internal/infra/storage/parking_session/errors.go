package parking_session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("parking_session.repository: session not found")

	// ErrReferenceNotFound возвращается при нарушении внешнего ключа
	// (несуществующие автомобиль, место или тариф)
	ErrReferenceNotFound = errors.New("parking_session.repository: referenced entity not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("parking_session.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("parking_session.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("parking_session.repository: failed to scan row")
)
