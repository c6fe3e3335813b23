package report

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

const (
	sessionsTable = "parking_sessions"
	spacesTable   = "parking_spaces"
)

// closedSession сессия учитывается в выручке, только если есть и выезд, и стоимость
var closedSession = squirrel.And{
	squirrel.NotEq{"time_out": nil},
	squirrel.NotEq{"total_cost": nil},
}

// Repository агрегирующие запросы для отчётов
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// RevenueStats сумма total_cost и число закрытых сессий,
// у которых time_in <= End и time_out >= Start
func (r *Repository) RevenueStats(ctx context.Context, period domain.ReportPeriod) (domain.RevenueStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildRevenueQuery(period)
	if err != nil {
		return domain.RevenueStats{}, fmt.Errorf("%w: RevenueStats - build select query: %v", ErrBuildQuery, err)
	}

	var stats domain.RevenueStats
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&stats.Total, &stats.Count); err != nil {
		return domain.RevenueStats{}, fmt.Errorf("%w: RevenueStats - scan: %v", ErrScanRow, err)
	}

	return stats, nil
}

// SessionsCount число сессий, начавшихся в периоде
func (r *Repository) SessionsCount(ctx context.Context, period domain.ReportPeriod) (int64, error) {
	query, args, err := buildSessionsCountQuery(period)
	if err != nil {
		return 0, fmt.Errorf("%w: SessionsCount - build select query: %v", ErrBuildQuery, err)
	}
	return r.count(ctx, "SessionsCount", query, args)
}

// ActiveSessionsCount число сессий без времени выезда
func (r *Repository) ActiveSessionsCount(ctx context.Context) (int64, error) {
	query, args, err := psqlbuilder.Select("COUNT(id)").
		From(sessionsTable).
		Where(squirrel.Eq{"time_out": nil}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: ActiveSessionsCount - build select query: %v", ErrBuildQuery, err)
	}
	return r.count(ctx, "ActiveSessionsCount", query, args)
}

// TotalSpaces общее число парковочных мест
func (r *Repository) TotalSpaces(ctx context.Context) (int64, error) {
	query, args, err := psqlbuilder.Select("COUNT(id)").From(spacesTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: TotalSpaces - build select query: %v", ErrBuildQuery, err)
	}
	return r.count(ctx, "TotalSpaces", query, args)
}

// OccupiedSpaces число различных мест с открытыми сессиями
func (r *Repository) OccupiedSpaces(ctx context.Context) (int64, error) {
	query, args, err := psqlbuilder.Select("COUNT(DISTINCT space_id)").
		From(sessionsTable).
		Where(squirrel.Eq{"time_out": nil}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: OccupiedSpaces - build select query: %v", ErrBuildQuery, err)
	}
	return r.count(ctx, "OccupiedSpaces", query, args)
}

// ClosedSessionsOverlapping закрытые сессии с time_in <= to и time_out >= from
func (r *Repository) ClosedSessionsOverlapping(ctx context.Context, from, to time.Time) ([]domain.ParkingSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildOverlappingQuery(from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: ClosedSessionsOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ClosedSessionsOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sessions := make([]domain.ParkingSession, 0)
	for rows.Next() {
		var (
			s       domain.ParkingSession
			timeOut time.Time
			cost    decimal.Decimal
		)
		if err := rows.Scan(&s.ID, &s.TimeIn, &timeOut, &cost); err != nil {
			return nil, fmt.Errorf("%w: ClosedSessionsOverlapping - scan row: %v", ErrScanRow, err)
		}
		s.TimeIn = types.ToNaive(s.TimeIn)
		timeOut = types.ToNaive(timeOut)
		s.TimeOut = &timeOut
		s.TotalCost = &cost
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ClosedSessionsOverlapping - rows error: %v", ErrScanRow, err)
	}

	return sessions, nil
}

// SessionsByPeriod число сессий по календарным периодам начала (time_in >= since)
func (r *Repository) SessionsByPeriod(ctx context.Context, granularity domain.Granularity, since time.Time) ([]domain.PeriodCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildSessionsByPeriodQuery(granularity, since)
	if err != nil {
		return nil, fmt.Errorf("%w: SessionsByPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: SessionsByPeriod - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make([]domain.PeriodCount, 0)
	for rows.Next() {
		var (
			bucket time.Time
			count  int64
		)
		if err := rows.Scan(&bucket, &count); err != nil {
			return nil, fmt.Errorf("%w: SessionsByPeriod - scan row: %v", ErrScanRow, err)
		}
		counts = append(counts, domain.PeriodCount{
			Period: types.ToNaive(bucket).Format(granularity.KeyLayout()),
			Count:  count,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: SessionsByPeriod - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

func (r *Repository) count(ctx context.Context, op, query string, args []interface{}) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var n sql.NullInt64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %s - scan: %v", ErrScanRow, op, err)
	}
	return n.Int64, nil
}

func buildRevenueQuery(period domain.ReportPeriod) (string, []interface{}, error) {
	builder := psqlbuilder.Select("COALESCE(SUM(total_cost), 0)", "COUNT(id)").
		From(sessionsTable).
		Where(closedSession)

	if period.Start != nil {
		builder = builder.Where(squirrel.GtOrEq{"time_out": *period.Start})
	}
	if period.End != nil {
		builder = builder.Where(squirrel.LtOrEq{"time_in": *period.End})
	}

	return builder.ToSql()
}

func buildSessionsCountQuery(period domain.ReportPeriod) (string, []interface{}, error) {
	builder := psqlbuilder.Select("COUNT(id)").From(sessionsTable)

	if period.Start != nil {
		builder = builder.Where(squirrel.GtOrEq{"time_in": *period.Start})
	}
	if period.End != nil {
		builder = builder.Where(squirrel.LtOrEq{"time_in": *period.End})
	}

	return builder.ToSql()
}

func buildOverlappingQuery(from, to time.Time) (string, []interface{}, error) {
	return psqlbuilder.Select("id", "time_in", "time_out", "total_cost").
		From(sessionsTable).
		Where(closedSession).
		Where(squirrel.LtOrEq{"time_in": to}).
		Where(squirrel.GtOrEq{"time_out": from}).
		OrderBy("id ASC").
		ToSql()
}

// granularity приходит только из domain.ParseGranularity, поэтому подставляется литералом
func buildSessionsByPeriodQuery(granularity domain.Granularity, since time.Time) (string, []interface{}, error) {
	bucket := fmt.Sprintf("date_trunc('%s', time_in)", granularity)

	return psqlbuilder.Select(bucket+" AS period", "COUNT(id)").
		From(sessionsTable).
		Where(squirrel.GtOrEq{"time_in": since}).
		GroupBy("1").
		OrderBy("1").
		ToSql()
}
