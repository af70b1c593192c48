package reports

import (
	"fmt"
	"io"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

// numFmtAmount is excelize's built-in "#,##0.00".
const numFmtAmount = 4

// workbook holds the shared styles used by both exports.
type workbook struct {
	f      *excelize.File
	header int
	amount int
}

func newWorkbook(firstSheet string) (*workbook, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", firstSheet)

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1E3A8A"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "#C8C8C8", Style: 1},
			{Type: "top", Color: "#C8C8C8", Style: 1},
			{Type: "bottom", Color: "#C8C8C8", Style: 1},
			{Type: "right", Color: "#C8C8C8", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}
	amount, err := f.NewStyle(&excelize.Style{NumFmt: numFmtAmount})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create amount style: %w", err)
	}
	return &workbook{f: f, header: header, amount: amount}, nil
}

func (wb *workbook) writeRow(sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return wb.f.SetSheetRow(sheet, cell, &values)
}

func (wb *workbook) writeHeader(sheet string, headers []any) error {
	if err := wb.writeRow(sheet, 1, headers); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := wb.f.SetCellStyle(sheet, "A1", last, wb.header); err != nil {
		return err
	}
	return wb.f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

func (wb *workbook) styleAmounts(sheet, fromCol, toCol string, lastRow int) error {
	if lastRow < 2 {
		return nil
	}
	return wb.f.SetCellStyle(sheet, fmt.Sprintf("%s2", fromCol), fmt.Sprintf("%s%d", toCol, lastRow), wb.amount)
}

func (wb *workbook) write(w io.Writer) error {
	defer wb.f.Close()
	if err := wb.f.Write(w); err != nil {
		return fmt.Errorf("render xlsx: %w", err)
	}
	return nil
}

// RosterXLSX writes one row per employee with salary, withdrawn and remaining.
func (r *Renderer) RosterXLSX(w io.Writer, rows []domain.EmployeeRosterRow) error {
	const sheet = "Employees"
	wb, err := newWorkbook(sheet)
	if err != nil {
		return err
	}

	headers := []any{"Employee ID", "Name", "Designation", "Join Date", "Total Salary", "Withdrawn", "Remaining"}
	if err := wb.writeHeader(sheet, headers); err != nil {
		wb.f.Close()
		return fmt.Errorf("write roster header: %w", err)
	}
	for i, row := range rows {
		values := []any{
			domain.Employee{EmployeeID: row.EmployeeID}.Code(),
			row.Name,
			row.Designation,
			row.JoinDate.Format(domain.DateLayout),
			row.Salary.InexactFloat64(),
			row.Withdrawn.InexactFloat64(),
			row.Remaining.InexactFloat64(),
		}
		if err := wb.writeRow(sheet, i+2, values); err != nil {
			wb.f.Close()
			return fmt.Errorf("write roster row: %w", err)
		}
	}
	if err := wb.styleAmounts(sheet, "E", "G", len(rows)+1); err != nil {
		wb.f.Close()
		return err
	}
	_ = wb.f.SetColWidth(sheet, "A", "A", 14)
	_ = wb.f.SetColWidth(sheet, "B", "C", 28)
	_ = wb.f.SetColWidth(sheet, "D", "G", 16)
	return wb.write(w)
}

// MonthlyReportXLSX writes a withdrawals sheet and an attendance grid sheet
// with one column per day of the month.
func (r *Renderer) MonthlyReportXLSX(w io.Writer, data *domain.MonthlyReportData) error {
	const (
		withdrawals = "Withdrawals"
		attendance  = "Attendance"
	)
	wb, err := newWorkbook(withdrawals)
	if err != nil {
		return err
	}
	fail := func(err error) error {
		wb.f.Close()
		return fmt.Errorf("write monthly report: %w", err)
	}

	if err := wb.writeHeader(withdrawals, []any{"Slip No", "Date", "Time", "Employee", "Designation", "Amount", "Notes"}); err != nil {
		return fail(err)
	}
	entries := data.Summary.Entries
	for i, e := range entries {
		values := []any{
			e.SlipNumber(),
			e.Date.Format(domain.DateLayout),
			e.Time.String(),
			e.EmployeeName,
			e.EmployeeDesignation,
			e.Amount.InexactFloat64(),
			e.Note,
		}
		if err := wb.writeRow(withdrawals, i+2, values); err != nil {
			return fail(err)
		}
	}
	totalRow := len(entries) + 2
	if err := wb.writeRow(withdrawals, totalRow, []any{"Total", "", "", "", "", data.Summary.TotalWithdrawn.InexactFloat64()}); err != nil {
		return fail(err)
	}
	if err := wb.styleAmounts(withdrawals, "F", "F", totalRow); err != nil {
		return fail(err)
	}
	_ = wb.f.SetColWidth(withdrawals, "A", "C", 12)
	_ = wb.f.SetColWidth(withdrawals, "D", "E", 24)
	_ = wb.f.SetColWidth(withdrawals, "F", "F", 14)
	_ = wb.f.SetColWidth(withdrawals, "G", "G", 40)

	if _, err := wb.f.NewSheet(attendance); err != nil {
		return fail(err)
	}
	headers := []any{"Employee"}
	for day := 1; day <= data.DaysInMonth; day++ {
		headers = append(headers, day)
	}
	headers = append(headers, "P", "A", "L", "H")
	if err := wb.writeHeader(attendance, headers); err != nil {
		return fail(err)
	}
	for i, emp := range data.Employees {
		grid := data.Attendance[emp.EmployeeID]
		values := []any{emp.Name}
		for day := 1; day <= data.DaysInMonth; day++ {
			rec, ok := grid.Days[day]
			if !ok {
				values = append(values, "")
				continue
			}
			values = append(values, statusMark(rec.Status))
		}
		values = append(values, grid.Counts.Present, grid.Counts.Absent, grid.Counts.Leave, grid.Counts.HalfDay)
		if err := wb.writeRow(attendance, i+2, values); err != nil {
			return fail(err)
		}
	}
	_ = wb.f.SetColWidth(attendance, "A", "A", 24)

	return wb.write(w)
}

func statusMark(s domain.AttendanceStatus) string {
	switch s {
	case domain.StatusPresent:
		return "P"
	case domain.StatusAbsent:
		return "A"
	case domain.StatusLeave:
		return "L"
	case domain.StatusHalfDay:
		return "H"
	}
	return "?"
}
