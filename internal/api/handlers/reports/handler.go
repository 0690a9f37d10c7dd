package reports

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fleetops/FMS-CarBookingService/internal/api/handlers"
	"github.com/fleetops/FMS-CarBookingService/internal/domain"
	reportsService "github.com/fleetops/FMS-CarBookingService/internal/service/reports"
)

const (
	msgInvalidPeriod = "ช่วงวันที่ไม่ถูกต้อง (ต้องระบุ start_date และ end_date)"
	msgInvalidFormat = "รูปแบบไฟล์ไม่ถูกต้อง (รองรับ xlsx และ pdf)"
)

const (
	formatXLSX = "xlsx"
	formatPDF  = "pdf"
)

// Handler serves the usage report and its file exports.
type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Usage GET /api/v1/reports/usage?start_date=...&end_date=...
func (h *Handler) Usage(w http.ResponseWriter, r *http.Request) {
	startDate, endDate, ok := h.period(w, r)
	if !ok {
		return
	}

	result, err := h.service.Usage(r.Context(), startDate, endDate)
	if err != nil {
		if errors.Is(err, reportsService.ErrInvalidPeriod) {
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		h.logger.Error("GET /reports/usage - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Export GET /api/v1/reports/usage/export?format=xlsx|pdf&start_date=...&end_date=...
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	startDate, endDate, ok := h.period(w, r)
	if !ok {
		return
	}

	var (
		data        []byte
		filename    string
		contentType string
		err         error
	)

	switch r.URL.Query().Get("format") {
	case formatXLSX, "":
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		data, filename, err = h.service.ExportXLSX(r.Context(), startDate, endDate)
	case formatPDF:
		contentType = "application/pdf"
		data, filename, err = h.service.ExportPDF(r.Context(), startDate, endDate)
	default:
		handlers.RespondBadRequest(w, msgInvalidFormat)
		return
	}

	if err != nil {
		if errors.Is(err, reportsService.ErrInvalidPeriod) {
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		h.logger.Error("GET /reports/usage/export - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Warn("GET /reports/usage/export - Failed to write response: %v", err)
	}
}

func (h *Handler) period(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	query := r.URL.Query()

	startDate, err := time.Parse(domain.DateFormat, query.Get("start_date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return time.Time{}, time.Time{}, false
	}

	endDate, err := time.Parse(domain.DateFormat, query.Get("end_date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return time.Time{}, time.Time{}, false
	}

	return startDate, endDate, true
}
