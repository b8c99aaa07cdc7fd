package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
)

type fakeTx struct {
	commits   int
	rollbacks int
}

func (t *fakeTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	t.commits++
	return nil
}

func (t *fakeTx) Rollback() error {
	t.rollbacks++
	return nil
}

type fakeTxBeginner struct {
	begins int
	tx     *fakeTx
}

func (b *fakeTxBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.begins++
	return b.tx, nil
}

func serializationFailureErr() *pq.Error {
	return &pq.Error{Code: "40001"}
}

func TestDoSerializableSuccessFirstAttempt(t *testing.T) {
	beginner := &fakeTxBeginner{tx: &fakeTx{}}
	mgr := NewTransactionManager(beginner)

	calls := 0
	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, beginner.tx.commits)
	assert.Equal(t, 0, beginner.tx.rollbacks)
}

func TestDoSerializableRetriesOnSerializationFailure(t *testing.T) {
	beginner := &fakeTxBeginner{tx: &fakeTx{}}
	mgr := NewTransactionManager(beginner)

	calls := 0
	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return serializationFailureErr()
	})

	require.Error(t, err)
	assert.Equal(t, maxRetries, calls)
	assert.Equal(t, maxRetries, beginner.tx.rollbacks)
	assert.Equal(t, 0, beginner.tx.commits)
}

// Репозитории оборачивают ошибки драйвера в свои sentinel-ошибки.
// Ошибка сериализации должна распознаваться и сквозь такую обёртку.
func TestDoSerializableRetriesWrappedSerializationFailure(t *testing.T) {
	beginner := &fakeTxBeginner{tx: &fakeTx{}}
	mgr := NewTransactionManager(beginner)

	errExecQuery := errors.New("storage.appointment: failed to execute query")

	calls := 0
	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return fmt.Errorf("%w: GetByVehicleWindow - execute query: %w", errExecQuery, serializationFailureErr())
	})

	require.Error(t, err)
	assert.Equal(t, maxRetries, calls)
	assert.ErrorIs(t, err, errExecQuery)
}

func TestDoSerializableRecoversAfterRetry(t *testing.T) {
	beginner := &fakeTxBeginner{tx: &fakeTx{}}
	mgr := NewTransactionManager(beginner)

	calls := 0
	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return serializationFailureErr()
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, beginner.tx.commits)
	assert.Equal(t, 1, beginner.tx.rollbacks)
}

func TestDoSerializableNoRetryOnBusinessError(t *testing.T) {
	beginner := &fakeTxBeginner{tx: &fakeTx{}}
	mgr := NewTransactionManager(beginner)

	errBusiness := errors.New("appointment slot is taken")

	calls := 0
	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return errBusiness
	})

	require.ErrorIs(t, err, errBusiness)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, beginner.tx.rollbacks)
}
