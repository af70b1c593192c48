package reports

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeCSV  = "text/csv"
)

func underscored(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}

// SlipFileName is dated by the withdrawal, not by when the slip is printed.
func SlipFileName(data *domain.WithdrawalSlipData) string {
	return fmt.Sprintf("Withdrawal_Slip_%s_%s.pdf", underscored(data.Employee.Name), data.Entry.Date.Format("20060102"))
}

func HistoryFileName(data *domain.EmployeeHistoryData) string {
	return fmt.Sprintf("Salary_History_%s_%s.pdf", underscored(data.Employee.Name), data.GeneratedAt.Format("20060102"))
}

// MonthlyReportFileName builds e.g. Monthly_Salary_Report_January_2025.pdf.
func MonthlyReportFileName(year int, month time.Month, ext string) string {
	return fmt.Sprintf("Monthly_Salary_Report_%s_%d.%s", month, year, ext)
}

func RosterFileName(company string, now time.Time, ext string) string {
	prefix := "Salary"
	if fields := strings.Fields(company); len(fields) > 0 {
		prefix = fields[0]
	}
	return fmt.Sprintf("%s_Salary_Report_%s.%s", prefix, now.Format("20060102"), ext)
}
