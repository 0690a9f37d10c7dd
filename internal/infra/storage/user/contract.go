package user

import "github.com/fleetops/FMS-CarBookingService/pkg/dbmetrics"

// Database access goes through the dbmetrics executor interfaces
type DBExecutor = dbmetrics.DBExecutor
