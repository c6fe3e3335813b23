package vehicle

import "errors"

var (
	ErrVehicleNotFound = errors.New("vehicle.repository: vehicle not found")

	// ErrPlateTaken госномер уникален
	ErrPlateTaken = errors.New("vehicle.repository: license plate already exists")

	// ErrReferenceNotFound несуществующие клиент или тип транспорта
	ErrReferenceNotFound = errors.New("vehicle.repository: client or vehicle type not found")

	// ErrVehicleInUse автомобиль используется в сессиях
	ErrVehicleInUse = errors.New("vehicle.repository: vehicle is referenced by sessions")

	ErrBuildQuery = errors.New("vehicle.repository: failed to build query")
	ErrExecQuery  = errors.New("vehicle.repository: failed to execute query")
	ErrScanRow    = errors.New("vehicle.repository: failed to scan row")
)
