package report

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/YossiBuhnik/WorkLog1/internal/domain/report"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

const (
	statsSheet    = "Employee Stats"
	vacationSheet = "Vacations"
)

var contentTypes = map[report.Format]string{
	report.FormatCSV:  "text/csv",
	report.FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	report.FormatPDF:  "application/pdf",
}

var statsHeader = []string{"Name", "Total Extra Shifts", "Approved Extra Shifts", "Rejected Extra Shifts", "Total Vacation Days"}

func render(format report.Format, rep report.EmployeeReport) ([]byte, error) {
	switch format {
	case report.FormatCSV:
		return renderCSV(rep)
	case report.FormatXLSX:
		return renderXLSX(rep)
	case report.FormatPDF:
		return renderPDF(rep)
	}
	return nil, report.ErrUnsupportedFormat
}

func statsRow(e report.EmployeeStats) []string {
	return []string{
		e.Name,
		strconv.Itoa(e.ExtraShifts.Total),
		strconv.Itoa(e.ExtraShifts.Approved),
		strconv.Itoa(e.ExtraShifts.Rejected),
		strconv.Itoa(e.Vacations.Total),
	}
}

func renderCSV(rep report.EmployeeReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{{rep.Title}, {}, statsHeader}
	for _, e := range rep.Employees {
		rows = append(rows, statsRow(e))
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderXLSX(rep report.EmployeeReport) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", statsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(vacationSheet); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	if err := f.SetCellValue(statsSheet, "A1", rep.Title); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(statsSheet, "A3", &statsHeader); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(statsSheet, "A1", "E3", bold); err != nil {
		return nil, err
	}
	for i, e := range rep.Employees {
		cell, _ := excelize.CoordinatesToCellName(1, i+4)
		row := []interface{}{e.Name, e.ExtraShifts.Total, e.ExtraShifts.Approved, e.ExtraShifts.Rejected, e.Vacations.Total}
		if err := f.SetSheetRow(statsSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	header := []string{"Name", "Request", "Start", "End", "Status", "Workdays"}
	if err := f.SetSheetRow(vacationSheet, "A1", &header); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(vacationSheet, "A1", "F1", bold); err != nil {
		return nil, err
	}
	line := 2
	for _, e := range rep.Employees {
		for _, v := range e.VacationBreakdown {
			cell, _ := excelize.CoordinatesToCellName(1, line)
			row := []interface{}{e.Name, v.RequestID, v.Start, v.End, v.Status, v.Workdays}
			if err := f.SetSheetRow(vacationSheet, cell, &row); err != nil {
				return nil, err
			}
			line++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderPDF(rep report.EmployeeReport) ([]byte, error) {
	widths := []float64{60, 30, 30, 30, 30}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, rep.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, "Period: "+rep.PeriodStart+" to "+rep.PeriodEnd)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range statsHeader {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, e := range rep.Employees {
		for i, v := range statsRow(e) {
			align := "C"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 7, v, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.Cell(0, 6, "Generated at "+rep.GeneratedAt)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
