package txmanager

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
)

var ErrBeginTx = errors.New("txmanager: failed to begin transaction")

// TxFunc функция, выполняемая внутри транзакции
type TxFunc = func(ctx context.Context) error

// TxManager управляет транзакциями; транзакция передаётся через контекст
type TxManager struct {
	db dbmetrics.DBExecutor
}

func New(db dbmetrics.DBExecutor) *TxManager {
	return &TxManager{db: db}
}

// Do выполняет fn в транзакции; вложенный вызов переиспользует внешнюю транзакцию
func (m *TxManager) Do(ctx context.Context, fn TxFunc) (err error) {
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := dbmetrics.BeginTx(ctx, m.db, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: commit: %w", err)
	}
	return nil
}
