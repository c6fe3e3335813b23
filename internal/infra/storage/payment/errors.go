package payment

import "errors"

var (
	ErrPaymentNotFound = errors.New("payment.repository: payment not found")

	// ErrReferenceNotFound несуществующие сессия или способ оплаты
	ErrReferenceNotFound = errors.New("payment.repository: session or payment method not found")

	ErrBuildQuery = errors.New("payment.repository: failed to build query")
	ErrExecQuery  = errors.New("payment.repository: failed to execute query")
	ErrScanRow    = errors.New("payment.repository: failed to scan row")
)
