package reports

import (
	"fmt"
	"io"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
	"github.com/SscSPs/salary_ledger/internal/utils/accounting"
)

// WithdrawalSlipPDF renders a single withdrawal slip.
func (r *Renderer) WithdrawalSlipPDF(w io.Writer, data *domain.WithdrawalSlipData) error {
	d := newDocument()
	d.header(r.CompanyName, "Salary Withdrawal Slip")

	d.keyValues([][2]string{
		{"Slip No:", data.Entry.SlipNumber()},
		{"Date & Time:", fmt.Sprintf("%s at %s", formatDate(data.Entry.Date), data.Entry.Time.Format12h())},
		{"Generated On:", data.GeneratedAt.Format(displayStamp)},
	}, [2]float64{50, 130})

	d.heading("Employee Information")
	d.keyValues([][2]string{
		{"Employee Name:", data.Employee.Name},
		{"Designation:", data.Employee.Designation},
		{"Employee ID:", data.Employee.Code()},
		{"Join Date:", formatDate(data.Employee.JoinDate)},
	}, [2]float64{50, 130})

	d.heading("Salary Details")
	d.table(
		[]string{"Description", "Amount (Rs)"},
		[]float64{110, 70},
		[]string{"L", "R"},
		[][]string{
			{"Monthly Salary", accounting.FormatAmount(data.Employee.Salary)},
			{"Previous Withdrawals", accounting.FormatAmount(data.PreviousWithdrawals)},
			{"Current Withdrawal", accounting.FormatAmount(data.Entry.Amount)},
			{"Remaining Balance", accounting.FormatAmount(data.RemainingAfter)},
		},
	)

	if data.Entry.Note != "" {
		d.pdf.Ln(4)
		d.pdf.SetFont(fontFamily, "B", 10)
		d.pdf.CellFormat(15, 6, "Notes:", "", 0, "L", false, 0, "")
		d.pdf.SetFont(fontFamily, "", 10)
		d.pdf.MultiCell(0, 6, d.tr(data.Entry.Note), "", "L", false)
	}

	d.pdf.Ln(20)
	d.pdf.SetFont(fontFamily, "", 10)
	d.pdf.CellFormat(90, 6, "_____________________", "", 0, "C", false, 0, "")
	d.pdf.CellFormat(90, 6, "_____________________", "", 1, "C", false, 0, "")
	d.pdf.SetFont(fontFamily, "B", 10)
	d.pdf.CellFormat(90, 6, "Employee Signature", "", 0, "C", false, 0, "")
	d.pdf.CellFormat(90, 6, "Authorized Signature", "", 1, "C", false, 0, "")

	d.footer(computerFooter)
	return d.write(w)
}
