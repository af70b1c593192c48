package reports

import (
	"fmt"
	"io"
	"strconv"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
	"github.com/SscSPs/salary_ledger/internal/utils/accounting"
)

// MonthlyReportPDF renders the month's withdrawals followed by the
// per-employee attendance tallies.
func (r *Renderer) MonthlyReportPDF(w io.Writer, data *domain.MonthlyReportData) error {
	s := data.Summary
	monthName := fmt.Sprintf("%s %d", s.Month, s.Year)

	d := newDocument()
	d.header(r.CompanyName, "Monthly Salary Report - "+monthName)
	d.line("Report Generated: " + data.GeneratedAt.Format(displayStamp))

	if len(s.Entries) == 0 {
		d.pdf.Ln(4)
		d.line("No transactions found for this month.")
	} else {
		d.heading("Total Withdrawals This Month: " + rupees(s.TotalWithdrawn))
		d.line("Total Transactions: " + strconv.Itoa(s.TransactionCount))
		d.pdf.Ln(2)

		rows := make([][]string, 0, len(s.Entries))
		for _, e := range s.Entries {
			rows = append(rows, []string{
				e.Date.Format("02 Jan"),
				e.EmployeeName,
				e.EmployeeDesignation,
				accounting.FormatAmount(e.Amount),
				truncate(e.Note, 20),
			})
		}
		d.table(
			[]string{"Date", "Employee", "Designation", "Amount (Rs)", "Notes"},
			[]float64{22, 48, 38, 32, 40},
			[]string{"C", "L", "L", "R", "L"},
			rows,
		)
	}

	if len(data.Employees) > 0 {
		d.heading("Attendance - " + monthName)
		rows := make([][]string, 0, len(data.Employees))
		for _, emp := range data.Employees {
			c := data.Attendance[emp.EmployeeID].Counts
			rows = append(rows, []string{
				emp.Name,
				strconv.Itoa(c.Present),
				strconv.Itoa(c.Absent),
				strconv.Itoa(c.Leave),
				strconv.Itoa(c.HalfDay),
				strconv.Itoa(data.DaysInMonth - c.Total()),
			})
		}
		d.table(
			[]string{"Employee", "Present", "Absent", "Leave", "Half Day", "Unmarked"},
			[]float64{60, 24, 24, 24, 24, 24},
			[]string{"L", "C", "C", "C", "C", "C"},
			rows,
		)
	}

	d.footer(computerFooter)
	return d.write(w)
}
