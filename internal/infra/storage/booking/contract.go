package booking

import (
	"context"
	"database/sql"

	"github.com/fleetops/FMS-CarBookingService/pkg/dbmetrics"
)

// Database access goes through the dbmetrics executor interfaces
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions. Satisfied by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
