package client

import "errors"

var (
	ErrClientNotFound = errors.New("client.repository: client not found")
	ErrBuildQuery     = errors.New("client.repository: failed to build query")
	ErrExecQuery      = errors.New("client.repository: failed to execute query")
	ErrScanRow        = errors.New("client.repository: failed to scan row")
)
