package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields holds the row timestamps shared by every table.
type AuditFields struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Employee is a row of the employees table. Calendar dates travel as
// "YYYY-MM-DD" text so that both database backends scan them identically.
type Employee struct {
	EmployeeID        int64           `db:"employee_id"`
	Name              string          `db:"name"`
	Designation       string          `db:"designation"`
	Salary            decimal.Decimal `db:"salary"`
	JoinDate          string          `db:"join_date"`
	SalaryPaymentDate sql.NullString  `db:"salary_payment_date"`
	TotalWithdrawn    decimal.Decimal `db:"total_withdrawn"`
	AuditFields
}
