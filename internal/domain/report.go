package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Granularity of the dashboard time series
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// ParseGranularity returns the granularity for s; anything unknown becomes day
func ParseGranularity(s string) Granularity {
	switch Granularity(s) {
	case GranularityWeek:
		return GranularityWeek
	case GranularityMonth:
		return GranularityMonth
	default:
		return GranularityDay
	}
}

// Window is the length of the scalar metrics window ending at "now"
func (g Granularity) Window() time.Duration {
	switch g {
	case GranularityWeek:
		return 7 * Day
	case GranularityMonth:
		return 30 * Day
	default:
		return Day
	}
}

// Lookback is how far back the time series reach
func (g Granularity) Lookback() time.Duration {
	switch g {
	case GranularityWeek:
		return 12 * Week
	case GranularityMonth:
		return 365 * Day
	default:
		return 7 * Day
	}
}

// KeyLayout формат ключа периода в ответе
func (g Granularity) KeyLayout() string {
	if g == GranularityDay {
		return DateFormat
	}
	return PeriodStartFormat
}

// PeriodRevenue revenue attributed to one calendar bucket
type PeriodRevenue struct {
	Period  string
	Revenue decimal.Decimal
}

// PeriodCount number of sessions that started in one calendar bucket
type PeriodCount struct {
	Period string
	Count  int64
}

// RevenueStats сумма стоимости и число закрытых сессий за период
type RevenueStats struct {
	Total decimal.Decimal
	Count int64
}

// ReportPeriod границы отчёта; nil - без ограничения
type ReportPeriod struct {
	Start *time.Time
	End   *time.Time
}

// Dashboard is the aggregated operational snapshot
type Dashboard struct {
	TotalRevenue     decimal.Decimal
	TotalSessions    int64
	AverageCheck     decimal.Decimal
	ActiveSessions   int64
	FreeSpaces       int64
	RevenueByPeriod  []PeriodRevenue
	SessionsByPeriod []PeriodCount
}

// AverageCheck returns total / count, zero when there is nothing to average
func AverageCheck(total decimal.Decimal, count int64) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(count))
}
