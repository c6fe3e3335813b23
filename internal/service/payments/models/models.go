package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest Amount nil означает "взять total_cost сессии"
type CreatePaymentRequest struct {
	SessionID int64
	Amount    *decimal.Decimal
	MethodID  int64
	Time      *time.Time
}

type UpdatePaymentRequest struct {
	SessionID *int64
	Amount    *decimal.Decimal
	MethodID  *int64
	Time      *time.Time
}
