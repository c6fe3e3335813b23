package tariff

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/pgerr"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

const table = "tariffs"

var columns = []string{"id", "name", "price_per_hour", "price_per_day", "created_at"}

// Repository репозиторий тарифов
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, tariff *domain.Tariff) (*domain.Tariff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("name", "price_per_hour", "price_per_day").
		Values(tariff.Name, tariff.PricePerHour, tariff.PricePerDay).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&tariff.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	tariff.CreatedAt = types.ToNaive(createdAt.Time)

	return tariff, nil
}

// GetByID получает тариф по ID
// Используется калькулятором стоимости, поэтому учитывает транзакцию из контекста
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Tariff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	tariff, err := scanTariff(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTariffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan tariff: %v", ErrScanRow, err)
	}

	return tariff, nil
}

func (r *Repository) List(ctx context.Context) ([]*domain.Tariff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tariffs := make([]*domain.Tariff, 0)
	for rows.Next() {
		tariff, err := scanTariff(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		tariffs = append(tariffs, tariff)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return tariffs, nil
}

func (r *Repository) Update(ctx context.Context, tariff *domain.Tariff) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("name", tariff.Name).
		Set("price_per_hour", tariff.PricePerHour).
		Set("price_per_day", tariff.PricePerDay).
		Where(squirrel.Eq{"id": tariff.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrTariffNotFound
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if pgerr.IsForeignKeyViolation(err) {
		return fmt.Errorf("%w: %v", ErrTariffInUse, err)
	}
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrTariffNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTariff(row scanner) (*domain.Tariff, error) {
	var (
		tariff    domain.Tariff
		createdAt sql.NullTime
	)
	if err := row.Scan(&tariff.ID, &tariff.Name, &tariff.PricePerHour, &tariff.PricePerDay, &createdAt); err != nil {
		return nil, err
	}
	tariff.CreatedAt = types.ToNaive(createdAt.Time)
	return &tariff, nil
}
