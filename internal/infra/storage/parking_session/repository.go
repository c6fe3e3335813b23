package parking_session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"gopkg.in/guregu/null.v4"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/pgerr"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

const table = "parking_sessions"

var columns = []string{
	"id",
	"vehicle_id",
	"space_id",
	"tariff_id",
	"time_in",
	"time_out",
	"total_cost",
	"created_at",
}

// Repository репозиторий парковочных сессий
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую сессию
// Если в контексте есть транзакция, запрос выполняется в ней
func (r *Repository) Create(ctx context.Context, session *domain.ParkingSession) (*domain.ParkingSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildInsertQuery(session)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&session.ID, &createdAt)
	if pgerr.IsForeignKeyViolation(err) {
		return nil, fmt.Errorf("%w: %v", ErrReferenceNotFound, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	session.CreatedAt = types.ToNaive(createdAt.Time)

	return session, nil
}

// GetByID получает сессию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ParkingSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	session, err := scanSession(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan session: %v", ErrScanRow, err)
	}

	return session, nil
}

// List возвращает сессии, опционально только открытые или только закрытые
func (r *Repository) List(ctx context.Context, filter domain.SessionFilter) ([]*domain.ParkingSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sessions := make([]*domain.ParkingSession, 0)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return sessions, nil
}

// Update перезаписывает все изменяемые поля сессии
func (r *Repository) Update(ctx context.Context, session *domain.ParkingSession) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildUpdateQuery(session)
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if pgerr.IsForeignKeyViolation(err) {
		return fmt.Errorf("%w: %v", ErrReferenceNotFound, err)
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func buildInsertQuery(session *domain.ParkingSession) (string, []interface{}, error) {
	return psqlbuilder.Insert(table).
		Columns("vehicle_id", "space_id", "tariff_id", "time_in", "time_out", "total_cost").
		Values(
			session.VehicleID,
			session.SpaceID,
			session.TariffID,
			session.TimeIn,
			null.TimeFromPtr(session.TimeOut),
			nullDecimal(session.TotalCost),
		).
		Suffix("RETURNING id, created_at").
		ToSql()
}

func buildListQuery(filter domain.SessionFilter) (string, []interface{}, error) {
	builder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("id ASC")

	if filter.Active != nil {
		if *filter.Active {
			builder = builder.Where(squirrel.Eq{"time_out": nil})
		} else {
			builder = builder.Where(squirrel.NotEq{"time_out": nil})
		}
	}

	return builder.ToSql()
}

func buildUpdateQuery(session *domain.ParkingSession) (string, []interface{}, error) {
	return psqlbuilder.Update(table).
		Set("vehicle_id", session.VehicleID).
		Set("space_id", session.SpaceID).
		Set("tariff_id", session.TariffID).
		Set("time_in", session.TimeIn).
		Set("time_out", null.TimeFromPtr(session.TimeOut)).
		Set("total_cost", nullDecimal(session.TotalCost)).
		Where(squirrel.Eq{"id": session.ID}).
		ToSql()
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSession(row scanner) (*domain.ParkingSession, error) {
	var (
		session   domain.ParkingSession
		timeOut   null.Time
		totalCost decimal.NullDecimal
		createdAt sql.NullTime
	)

	err := row.Scan(
		&session.ID,
		&session.VehicleID,
		&session.SpaceID,
		&session.TariffID,
		&session.TimeIn,
		&timeOut,
		&totalCost,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	session.TimeIn = types.ToNaive(session.TimeIn)
	session.TimeOut = types.ToNaivePtr(timeOut.Ptr())
	if totalCost.Valid {
		session.TotalCost = &totalCost.Decimal
	}
	session.CreatedAt = types.ToNaive(createdAt.Time)

	return &session, nil
}
