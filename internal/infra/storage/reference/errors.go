package reference

import "errors"

var (
	ErrBuildQuery = errors.New("reference.repository: failed to build query")
	ErrExecQuery  = errors.New("reference.repository: failed to execute query")
	ErrScanRow    = errors.New("reference.repository: failed to scan row")
)
