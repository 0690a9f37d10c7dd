package reports

import (
	"context"
	"time"

	"github.com/fleetops/FMS-CarBookingService/internal/service/reports/models"
)

// ReportService is the service interface of the handler
type ReportService interface {
	Usage(ctx context.Context, startDate, endDate time.Time) (*models.UsageReportResponse, error)
	ExportXLSX(ctx context.Context, startDate, endDate time.Time) ([]byte, string, error)
	ExportPDF(ctx context.Context, startDate, endDate time.Time) ([]byte, string, error)
}

// Logger is the logging interface of the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
