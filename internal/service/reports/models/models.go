package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodRequest границы отчёта; nil - без ограничения
type PeriodRequest struct {
	Start *time.Time
	End   *time.Time
}

// RevenueReport выручка за период
type RevenueReport struct {
	TotalRevenue decimal.Decimal
	PeriodStart  time.Time
	PeriodEnd    time.Time
}

// SessionsReport число сессий за период
type SessionsReport struct {
	TotalSessions int64
	PeriodStart   time.Time
	PeriodEnd     time.Time
}

// AverageCheckReport средний чек за период
type AverageCheckReport struct {
	AverageCheck decimal.Decimal
	PeriodStart  time.Time
	PeriodEnd    time.Time
}
