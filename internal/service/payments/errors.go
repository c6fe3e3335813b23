package payments

import "errors"

var (
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrSessionNotFound сессия, за которую платят, не существует
	ErrSessionNotFound = errors.New("parking session not found")
	// ErrAmountUnavailable сумма не передана, а стоимость сессии ещё не посчитана
	ErrAmountUnavailable = errors.New("payment amount is not set and session total_cost is empty")
	ErrReferenceNotFound = errors.New("session or payment method not found")
	ErrInvalidInput      = errors.New("invalid input data")
	ErrInternal          = errors.New("service: internal error")
)
