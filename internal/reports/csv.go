package reports

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
)

// RosterCSVHeader is the first line of the CSV export.
var RosterCSVHeader = []string{"Name", "Designation", "Join Date", "Total Salary", "Withdrawn", "Remaining"}

// RosterCSV writes the employee roster as CSV.
func (r *Renderer) RosterCSV(w io.Writer, rows []domain.EmployeeRosterRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(RosterCSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Name,
			row.Designation,
			row.JoinDate.Format(domain.DateLayout),
			row.Salary.StringFixed(2),
			row.Withdrawn.StringFixed(2),
			row.Remaining.StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
