package reports

import (
	"fmt"
	"io"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
	"github.com/SscSPs/salary_ledger/internal/utils/accounting"
)

// EmployeeHistoryPDF renders an employee's full withdrawal history.
func (r *Renderer) EmployeeHistoryPDF(w io.Writer, data *domain.EmployeeHistoryData) error {
	d := newDocument()
	d.header(r.CompanyName, "Employee Salary History Report")

	emp := data.Employee
	d.line("Employee Name: " + emp.Name)
	d.line("Designation: " + emp.Designation)
	d.line("Employee ID: " + emp.Code())
	d.line("Join Date: " + formatDate(emp.JoinDate))
	d.line("Monthly Salary: " + rupees(emp.Salary))
	d.line("Report Generated: " + data.GeneratedAt.Format(displayStamp))
	d.pdf.Ln(4)

	d.keyValues([][2]string{
		{"Total Salary", rupees(emp.Salary)},
		{"Total Withdrawn", rupees(emp.TotalWithdrawn)},
		{"Remaining Balance", rupees(data.Remaining)},
	}, [2]float64{90, 90})

	att := data.Attendance
	d.heading(fmt.Sprintf("Attendance (%s to %s)", formatDate(att.Start), formatDate(att.End)))
	d.line(fmt.Sprintf("Present: %d   Absent: %d   Leave: %d   Half Day: %d   Attendance: %s%%",
		att.Present, att.Absent, att.Leave, att.HalfDay, att.Percentage.StringFixed(2)))

	d.heading("Withdrawal History")
	if len(data.Entries) == 0 {
		d.line("No withdrawal history available.")
	} else {
		rows := make([][]string, 0, len(data.Entries))
		for _, e := range data.Entries {
			rows = append(rows, []string{
				e.Date.Format("02 Jan 2006"),
				e.Time.Format12h(),
				accounting.FormatAmount(e.Amount),
				truncate(e.Note, 30),
			})
		}
		d.table(
			[]string{"Date", "Time", "Amount (Rs)", "Notes"},
			[]float64{40, 30, 40, 70},
			[]string{"C", "C", "R", "L"},
			rows,
		)
	}

	d.footer(computerFooter)
	return d.write(w)
}
