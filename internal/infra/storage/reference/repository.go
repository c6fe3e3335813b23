package reference

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

const (
	tableVehicleTypes   = "vehicle_types"
	tablePaymentMethods = "payment_methods"
)

// Repository справочники: типы транспорта и способы оплаты (только чтение)
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListVehicleTypes(ctx context.Context) ([]domain.VehicleType, error) {
	items, err := r.list(ctx, tableVehicleTypes)
	if err != nil {
		return nil, fmt.Errorf("ListVehicleTypes: %w", err)
	}

	types := make([]domain.VehicleType, 0, len(items))
	for _, it := range items {
		types = append(types, domain.VehicleType{ID: it.id, Name: it.name})
	}
	return types, nil
}

func (r *Repository) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	items, err := r.list(ctx, tablePaymentMethods)
	if err != nil {
		return nil, fmt.Errorf("ListPaymentMethods: %w", err)
	}

	methods := make([]domain.PaymentMethod, 0, len(items))
	for _, it := range items {
		methods = append(methods, domain.PaymentMethod{ID: it.id, Name: it.name})
	}
	return methods, nil
}

type item struct {
	id   int64
	name string
}

func (r *Repository) list(ctx context.Context, table string) ([]item, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From(table).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBuildQuery, table, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrExecQuery, table, err)
	}
	defer rows.Close()

	items := make([]item, 0)
	for rows.Next() {
		var it item
		if err := rows.Scan(&it.id, &it.name); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrScanRow, table, err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrScanRow, table, err)
	}

	return items, nil
}
