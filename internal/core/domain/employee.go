package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Employee is an employee account: monthly salary plus the running total of
// withdrawals made against it.
type Employee struct {
	EmployeeID        int64           `json:"employeeID"`
	Name              string          `json:"name"`
	Designation       string          `json:"designation"`
	Salary            decimal.Decimal `json:"salary"`
	JoinDate          time.Time       `json:"joinDate"`
	SalaryPaymentDate *time.Time      `json:"salaryPaymentDate,omitempty"`
	TotalWithdrawn    decimal.Decimal `json:"totalWithdrawn"`
	AuditFields
}

// Remaining is salary minus everything withdrawn so far.
func (e Employee) Remaining() decimal.Decimal {
	return e.Salary.Sub(e.TotalWithdrawn)
}

// CanWithdraw reports whether amount fits in the remaining balance.
func (e Employee) CanWithdraw(amount decimal.Decimal) bool {
	return amount.LessThanOrEqual(e.Remaining())
}

// Code is the printable employee number used on documents.
func (e Employee) Code() string {
	return fmt.Sprintf("EMP-%04d", e.EmployeeID)
}

// Reconciliation compares the stored running total against the ledger sum.
type Reconciliation struct {
	EmployeeID     int64           `json:"employeeID"`
	StoredTotal    decimal.Decimal `json:"storedTotal"`
	LedgerTotal    decimal.Decimal `json:"ledgerTotal"`
	Drift          decimal.Decimal `json:"drift"`
	EntryCount     int             `json:"entryCount"`
	Consistent     bool            `json:"consistent"`
	Repaired       bool            `json:"repaired"`
	PreviousStored decimal.Decimal `json:"previousStored"`
}
