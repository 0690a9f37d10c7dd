package reports

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/xuri/excelize/v2"
)

const (
	sheetRows        = "การใช้งาน"
	sheetVehicles    = "สรุปตามรถ"
	sheetDepartments = "สรุปตามแผนก"
)

// ExportXLSX renders the usage report as a workbook with three sheets:
// raw rows, per-vehicle totals and per-department totals.
func (s *Service) ExportXLSX(ctx context.Context, startDate, endDate time.Time) ([]byte, string, error) {
	report, err := s.Usage(ctx, startDate, endDate)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetRows); err != nil {
		return nil, "", fmt.Errorf("%w: ExportXLSX - rename sheet: %v", ErrInternal, err)
	}

	writeRow := func(sheet string, row int, values []interface{}) error {
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		return nil
	}

	if err := writeRow(sheetRows, 1, []interface{}{
		"ทะเบียนรถ", "วันที่", "ผู้ขับ", "แผนก", "ช่วงเวลา", "ระยะเวลา", "ระยะทาง (กม.)",
	}); err != nil {
		return nil, "", fmt.Errorf("%w: ExportXLSX - write header: %v", ErrInternal, err)
	}

	for i, row := range report.Rows {
		miles := ""
		if row.TotalMile != nil {
			miles = strconv.Itoa(*row.TotalMile)
		}
		if err := writeRow(sheetRows, i+2, []interface{}{
			row.Plate, row.Date, row.DriverName, row.Department, row.TimeSlot, row.Duration, miles,
		}); err != nil {
			return nil, "", fmt.Errorf("%w: ExportXLSX - write row: %v", ErrInternal, err)
		}
	}

	if _, err := f.NewSheet(sheetVehicles); err != nil {
		return nil, "", fmt.Errorf("%w: ExportXLSX - add sheet: %v", ErrInternal, err)
	}
	if err := writeRow(sheetVehicles, 1, []interface{}{
		"ทะเบียนรถ", "จำนวนเที่ยว", "ระยะเวลารวม", "ระยะทางรวม (กม.)",
	}); err != nil {
		return nil, "", fmt.Errorf("%w: ExportXLSX - write header: %v", ErrInternal, err)
	}
	for i, v := range report.Vehicles {
		if err := writeRow(sheetVehicles, i+2, []interface{}{
			v.Plate, v.Trips, v.Duration, v.TotalMiles,
		}); err != nil {
			return nil, "", fmt.Errorf("%w: ExportXLSX - write row: %v", ErrInternal, err)
		}
	}

	if _, err := f.NewSheet(sheetDepartments); err != nil {
		return nil, "", fmt.Errorf("%w: ExportXLSX - add sheet: %v", ErrInternal, err)
	}
	if err := writeRow(sheetDepartments, 1, []interface{}{
		"แผนก", "จำนวนเที่ยว", "ระยะเวลารวม", "ระยะทางรวม (กม.)",
	}); err != nil {
		return nil, "", fmt.Errorf("%w: ExportXLSX - write header: %v", ErrInternal, err)
	}
	for i, d := range report.Departments {
		if err := writeRow(sheetDepartments, i+2, []interface{}{
			d.Department, d.Trips, d.Duration, d.TotalMiles,
		}); err != nil {
			return nil, "", fmt.Errorf("%w: ExportXLSX - write row: %v", ErrInternal, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("%w: ExportXLSX - write buffer: %v", ErrInternal, err)
	}

	filename := fmt.Sprintf("vehicle-usage_%s_%s.xlsx", report.StartDate, report.EndDate)

	s.logger.Info("ExportXLSX: report %s..%s exported (%d rows)",
		report.StartDate, report.EndDate, len(report.Rows))
	return buf.Bytes(), filename, nil
}

// ExportPDF renders the per-vehicle and per-department summaries as a PDF.
// Thai text needs the configured UTF-8 font; without one the export still
// works but Thai glyphs degrade.
func (s *Service) ExportPDF(ctx context.Context, startDate, endDate time.Time) ([]byte, string, error) {
	report, err := s.Usage(ctx, startDate, endDate)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")

	font := "Helvetica"
	if s.fontPath != "" {
		pdf.AddUTF8Font("thai", "", s.fontPath)
		font = "thai"
	}

	pdf.AddPage()
	pdf.SetFont(font, "", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Vehicle Usage Report %s - %s", report.StartDate, report.EndDate),
		"", 1, "C", false, 0, "")
	pdf.Ln(4)

	writeTable := func(title string, headers []string, widths []float64, rows [][]string) {
		pdf.SetFont(font, "", 13)
		pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")

		pdf.SetFont(font, "", 11)
		pdf.SetFillColor(230, 230, 230)
		for i, h := range headers {
			pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		for _, row := range rows {
			for i, cell := range row {
				pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(5)
	}

	vehicleRows := make([][]string, 0, len(report.Vehicles))
	for _, v := range report.Vehicles {
		vehicleRows = append(vehicleRows, []string{
			v.Plate, strconv.Itoa(v.Trips), v.Duration, strconv.Itoa(v.TotalMiles),
		})
	}
	writeTable("By vehicle", []string{"Plate", "Trips", "Duration", "Miles"},
		[]float64{50, 30, 60, 40}, vehicleRows)

	departmentRows := make([][]string, 0, len(report.Departments))
	for _, d := range report.Departments {
		departmentRows = append(departmentRows, []string{
			d.Department, strconv.Itoa(d.Trips), d.Duration, strconv.Itoa(d.TotalMiles),
		})
	}
	writeTable("By department", []string{"Department", "Trips", "Duration", "Miles"},
		[]float64{50, 30, 60, 40}, departmentRows)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("%w: ExportPDF - render: %v", ErrInternal, err)
	}

	filename := fmt.Sprintf("vehicle-usage_%s_%s.pdf", report.StartDate, report.EndDate)

	s.logger.Info("ExportPDF: report %s..%s exported", report.StartDate, report.EndDate)
	return buf.Bytes(), filename, nil
}
