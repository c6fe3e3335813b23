package parking_space

import "errors"

var (
	ErrSpaceNotFound = errors.New("parking_space.repository: parking space not found")

	// ErrNumberTaken номер места уникален
	ErrNumberTaken = errors.New("parking_space.repository: parking space number already exists")

	// ErrUnknownType несуществующий тип транспорта
	ErrUnknownType = errors.New("parking_space.repository: vehicle type not found")

	// ErrSpaceInUse место используется в сессиях
	ErrSpaceInUse = errors.New("parking_space.repository: parking space is referenced by sessions")

	ErrBuildQuery = errors.New("parking_space.repository: failed to build query")
	ErrExecQuery  = errors.New("parking_space.repository: failed to execute query")
	ErrScanRow    = errors.New("parking_space.repository: failed to scan row")
)
