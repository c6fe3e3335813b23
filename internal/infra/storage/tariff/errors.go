package tariff

import "errors"

var (
	// ErrTariffNotFound возвращается, когда тариф не найден
	ErrTariffNotFound = errors.New("tariff.repository: tariff not found")

	// ErrTariffInUse возвращается при удалении тарифа, на который ссылаются сессии
	ErrTariffInUse = errors.New("tariff.repository: tariff is referenced by sessions")

	ErrBuildQuery = errors.New("tariff.repository: failed to build query")
	ErrExecQuery  = errors.New("tariff.repository: failed to execute query")
	ErrScanRow    = errors.New("tariff.repository: failed to scan row")
)
