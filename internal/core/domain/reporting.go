package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySummary is every withdrawal of one calendar month, newest first.
type MonthlySummary struct {
	Year             int                       `json:"year"`
	Month            time.Month                `json:"month"`
	Start            time.Time                 `json:"start"`
	End              time.Time                 `json:"end"`
	TotalWithdrawn   decimal.Decimal           `json:"totalWithdrawn"`
	TransactionCount int                       `json:"transactionCount"`
	Entries          []LedgerEntryWithEmployee `json:"entries"`
}

// AttendanceSummary counts an employee's markings over an inclusive range.
type AttendanceSummary struct {
	EmployeeID int64     `json:"employeeID"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	AttendanceCounts
	TotalMarked int             `json:"totalMarked"`
	Percentage  decimal.Decimal `json:"percentage"`
}

// EmployeeAttendanceGrid is one employee's month keyed by day-of-month.
// Unmarked days have no key.
type EmployeeAttendanceGrid struct {
	EmployeeID int64                    `json:"employeeID"`
	Days       map[int]AttendanceRecord `json:"days"`
	Counts     AttendanceCounts         `json:"counts"`
}

// FleetTotals sums salary figures across every employee.
type FleetTotals struct {
	TotalEmployees int             `json:"totalEmployees"`
	TotalSalaries  decimal.Decimal `json:"totalSalaries"`
	TotalWithdrawn decimal.Decimal `json:"totalWithdrawn"`
	TotalRemaining decimal.Decimal `json:"totalRemaining"`
}

// WithdrawalSlipData is everything printed on one withdrawal slip.
type WithdrawalSlipData struct {
	Employee            Employee        `json:"employee"`
	Entry               LedgerEntry     `json:"entry"`
	PreviousWithdrawals decimal.Decimal `json:"previousWithdrawals"`
	RemainingAfter      decimal.Decimal `json:"remainingAfter"`
	GeneratedAt         time.Time       `json:"generatedAt"`
}

// EmployeeHistoryData backs the salary history document.
type EmployeeHistoryData struct {
	Employee    Employee          `json:"employee"`
	Remaining   decimal.Decimal   `json:"remaining"`
	Entries     []LedgerEntry     `json:"entries"`
	Attendance  AttendanceSummary `json:"attendance"`
	GeneratedAt time.Time         `json:"generatedAt"`
}

// MonthlyReportData backs the monthly salary and attendance report.
type MonthlyReportData struct {
	Summary     MonthlySummary                   `json:"summary"`
	Employees   []Employee                       `json:"employees"`
	Attendance  map[int64]EmployeeAttendanceGrid `json:"attendance"`
	DaysInMonth int                              `json:"daysInMonth"`
	GeneratedAt time.Time                        `json:"generatedAt"`
}

// EmployeeRosterRow is one line of the employee export.
type EmployeeRosterRow struct {
	EmployeeID  int64           `json:"employeeID"`
	Name        string          `json:"name"`
	Designation string          `json:"designation"`
	JoinDate    time.Time       `json:"joinDate"`
	Salary      decimal.Decimal `json:"salary"`
	Withdrawn   decimal.Decimal `json:"withdrawn"`
	Remaining   decimal.Decimal `json:"remaining"`
}

// DashboardData is the landing page payload.
type DashboardData struct {
	Totals            FleetTotals               `json:"totals"`
	RecentWithdrawals []LedgerEntryWithEmployee `json:"recentWithdrawals"`
}
