package get_dashboard

import (
	"iter"
	"maps"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// dayEnd последний момент календарного дня; между днями остаётся зазор в 1µs
const dayEnd = domain.Day - time.Microsecond

// revenueByPeriod распределяет стоимость закрытых сессий по календарным периодам
// пропорционально времени, проведённому в каждом из них.
// Учитываются сессии с time_in <= now и time_out >= now - lookback.
// Последовательность ленивая: каждый range пересчитывает результат заново.
func revenueByPeriod(g domain.Granularity, sessions []domain.ParkingSession, now time.Time) iter.Seq[domain.PeriodRevenue] {
	return func(yield func(domain.PeriodRevenue) bool) {
		since := now.Add(-g.Lookback())
		totals := make(map[string]decimal.Decimal)

		for i := range sessions {
			s := &sessions[i]
			if !s.IsClosed() || s.TimeIn.After(now) || s.TimeOut.Before(since) {
				continue
			}
			for key, amount := range apportion(g, s.TimeIn, *s.TimeOut, *s.TotalCost) {
				totals[key] = totals[key].Add(amount)
			}
		}

		for _, key := range slices.Sorted(maps.Keys(totals)) {
			if !yield(domain.PeriodRevenue{Period: key, Revenue: totals[key].Round(domain.MoneyPlaces)}) {
				return
			}
		}
	}
}

// apportion отдаёт (ключ периода, доля стоимости) для каждого периода,
// с которым интервал [in, out] пересекается ненулевой длительностью
func apportion(g domain.Granularity, in, out time.Time, cost decimal.Decimal) iter.Seq2[string, decimal.Decimal] {
	return func(yield func(string, decimal.Decimal) bool) {
		total := out.Sub(in)

		emit := func(start, end time.Time) bool {
			from, to := later(in, start), earlier(out, end)
			if !from.Before(to) {
				return true
			}
			return yield(start.Format(g.KeyLayout()), share(cost, to.Sub(from), total))
		}

		switch g {
		case domain.GranularityWeek:
			for cursor := in; !cursor.After(out); {
				start := weekStart(cursor)
				end := start.AddDate(0, 0, 7)
				if !emit(start, end) {
					return
				}
				cursor = end
			}
		case domain.GranularityMonth:
			for cursor := in; !cursor.After(out); {
				start := monthStart(cursor)
				end := start.AddDate(0, 1, 0)
				if !emit(start, end) {
					return
				}
				cursor = end
			}
		default:
			last := dayStart(out)
			for day := dayStart(in); !day.After(last); day = day.AddDate(0, 0, 1) {
				if !emit(day, day.Add(dayEnd)) {
					return
				}
			}
		}
	}
}

// share cost * part / total; ноль для сессии нулевой длительности
func share(cost decimal.Decimal, part, total time.Duration) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return cost.Mul(decimal.NewFromInt(int64(part))).Div(decimal.NewFromInt(int64(total)))
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// weekStart понедельник 00:00 недели, содержащей t
func weekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return dayStart(t).AddDate(0, 0, -offset)
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func later(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlier(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
