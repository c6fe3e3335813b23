package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubExecutor struct{}

func (stubExecutor) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (stubExecutor) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (stubExecutor) QueryRowContext(context.Context, string, ...interface{}) *sql.Row { return nil }

type stubTx struct{ stubExecutor }

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

func TestGetExecutor(t *testing.T) {
	fallback := stubExecutor{}

	assert.Equal(t, fallback, GetExecutor(context.Background(), fallback))
	assert.False(t, IsInTransaction(context.Background()))

	tx := &stubTx{}
	ctx := WithTx(context.Background(), tx)
	assert.Same(t, tx, GetExecutor(ctx, fallback))
	assert.True(t, IsInTransaction(ctx))
}

func TestBeginTx_Unsupported(t *testing.T) {
	_, err := BeginTx(context.Background(), stubExecutor{}, nil)
	assert.ErrorIs(t, err, ErrUnsupportedDB)
}
