package get_dashboard

import (
	"slices"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

func closed(in, out time.Time, cost string) domain.ParkingSession {
	c := decimal.RequireFromString(cost)
	return domain.ParkingSession{TimeIn: in, TimeOut: &out, TotalCost: &c}
}

func date(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}

func revenues(seq []domain.PeriodRevenue) map[string]string {
	out := make(map[string]string, len(seq))
	for _, r := range seq {
		out[r.Period] = r.Revenue.StringFixed(2)
	}
	return out
}

func TestRevenueByPeriod_DaySplit(t *testing.T) {
	// 6 часов в первый день и 18 во второй
	sessions := []domain.ParkingSession{closed(date(2024, 1, 1, 18, 0), date(2024, 1, 2, 18, 0), "100")}
	now := date(2024, 1, 3, 0, 0)

	got := slices.Collect(revenueByPeriod(domain.GranularityDay, sessions, now))

	require.Len(t, got, 2)
	assert.Equal(t, "2024-01-01", got[0].Period)
	assert.Equal(t, "25.00", got[0].Revenue.StringFixed(2))
	assert.Equal(t, "2024-01-02", got[1].Period)
	assert.Equal(t, "75.00", got[1].Revenue.StringFixed(2))
}

func TestRevenueByPeriod_SortedAndSummed(t *testing.T) {
	sessions := []domain.ParkingSession{
		closed(date(2024, 1, 2, 10, 0), date(2024, 1, 2, 12, 0), "40"),
		closed(date(2024, 1, 1, 10, 0), date(2024, 1, 1, 11, 0), "10"),
		closed(date(2024, 1, 2, 13, 0), date(2024, 1, 2, 14, 0), "5.555"),
	}
	now := date(2024, 1, 3, 0, 0)

	got := slices.Collect(revenueByPeriod(domain.GranularityDay, sessions, now))

	require.Len(t, got, 2)
	assert.Equal(t, "2024-01-01", got[0].Period)
	assert.Equal(t, "2024-01-02", got[1].Period)
	assert.Equal(t, "45.56", got[1].Revenue.StringFixed(2))
}

func TestRevenueByPeriod_Week(t *testing.T) {
	// воскресенье 12:00 -> понедельник 12:00: половина в каждой неделе
	sessions := []domain.ParkingSession{closed(date(2024, 1, 7, 12, 0), date(2024, 1, 8, 12, 0), "80")}
	now := date(2024, 1, 10, 0, 0)

	got := revenues(slices.Collect(revenueByPeriod(domain.GranularityWeek, sessions, now)))

	assert.Equal(t, map[string]string{
		"2024-01-01T00:00:00": "40.00",
		"2024-01-08T00:00:00": "40.00",
	}, got)
}

func TestRevenueByPeriod_MonthRollsOverYear(t *testing.T) {
	sessions := []domain.ParkingSession{closed(date(2023, 12, 31, 12, 0), date(2024, 1, 1, 12, 0), "48")}
	now := date(2024, 1, 15, 0, 0)

	got := revenues(slices.Collect(revenueByPeriod(domain.GranularityMonth, sessions, now)))

	assert.Equal(t, map[string]string{
		"2023-12-01T00:00:00": "24.00",
		"2024-01-01T00:00:00": "24.00",
	}, got)
}

func TestRevenueByPeriod_SkipsOutsideLookbackAndOpen(t *testing.T) {
	now := date(2024, 2, 1, 0, 0)
	open := domain.ParkingSession{TimeIn: date(2024, 1, 31, 10, 0)}
	sessions := []domain.ParkingSession{
		closed(date(2024, 1, 1, 10, 0), date(2024, 1, 1, 11, 0), "10"), // раньше 7 дней
		closed(date(2024, 2, 2, 10, 0), date(2024, 2, 2, 11, 0), "10"), // в будущем
		open,
		closed(date(2024, 1, 30, 10, 0), date(2024, 1, 30, 11, 0), "10"),
	}

	got := slices.Collect(revenueByPeriod(domain.GranularityDay, sessions, now))

	require.Len(t, got, 1)
	assert.Equal(t, "2024-01-30", got[0].Period)
}

func TestRevenueByPeriod_ZeroDuration(t *testing.T) {
	at := date(2024, 1, 1, 10, 0)
	sessions := []domain.ParkingSession{closed(at, at, "10")}

	got := slices.Collect(revenueByPeriod(domain.GranularityDay, sessions, date(2024, 1, 2, 0, 0)))

	assert.Empty(t, got)
}

func TestRevenueByPeriod_Restartable(t *testing.T) {
	sessions := []domain.ParkingSession{closed(date(2024, 1, 1, 18, 0), date(2024, 1, 2, 18, 0), "100")}
	seq := revenueByPeriod(domain.GranularityDay, sessions, date(2024, 1, 3, 0, 0))

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)

	// досрочный выход из range не ломает последовательность
	for range seq {
		break
	}
	assert.Len(t, slices.Collect(seq), 2)
}

func TestWeekStart(t *testing.T) {
	tests := map[string]struct {
		in   time.Time
		want time.Time
	}{
		"monday":    {in: date(2024, 1, 8, 15, 30), want: date(2024, 1, 8, 0, 0)},
		"sunday":    {in: date(2024, 1, 14, 23, 0), want: date(2024, 1, 8, 0, 0)},
		"wednesday": {in: date(2024, 1, 3, 1, 0), want: date(2024, 1, 1, 0, 0)},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, weekStart(tt.in))
		})
	}
}
