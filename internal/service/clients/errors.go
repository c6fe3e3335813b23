package clients

import "errors"

var (
	ErrClientNotFound = errors.New("client not found")
	ErrInvalidInput   = errors.New("invalid input data")
	ErrInternal       = errors.New("service: internal error")
)
