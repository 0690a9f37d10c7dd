package booking

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResult struct {
	rows int64
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, nil }

type recordingExecutor struct {
	queries []string
	rows    int64
}

func (e *recordingExecutor) ExecContext(_ context.Context, query string, _ ...interface{}) (sql.Result, error) {
	e.queries = append(e.queries, query)
	return fakeResult{rows: e.rows}, nil
}

func (e *recordingExecutor) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (e *recordingExecutor) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func TestDelete_SingleStatement(t *testing.T) {
	// The slot rows ride on the booking_id foreign key cascade. One DELETE
	// means a failure partway cannot strand a booking without its slot
	// rows, which would show the slots as free while the booking still
	// lists them.
	executor := &recordingExecutor{rows: 1}
	repo := NewRepository(executor)

	err := repo.Delete(context.Background(), 42)
	require.NoError(t, err)

	require.Len(t, executor.queries, 1)
	assert.Contains(t, executor.queries[0], "DELETE FROM bookings")
	assert.NotContains(t, executor.queries[0], "booking_slots")
}

func TestDelete_NotFound(t *testing.T) {
	executor := &recordingExecutor{rows: 0}
	repo := NewRepository(executor)

	err := repo.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
