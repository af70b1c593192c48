package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is a row of the ledger_entries table.
type LedgerEntry struct {
	EntryID      int64           `db:"entry_id"`
	EmployeeID   int64           `db:"employee_id"`
	Amount       decimal.Decimal `db:"amount"`
	EntryDate    string          `db:"entry_date"`
	RecordedTime string          `db:"recorded_time"`
	Note         string          `db:"note"`
	CreatedAt    time.Time       `db:"created_at"`
}

// LedgerEntryWithEmployee is a ledger row joined with employee display columns.
type LedgerEntryWithEmployee struct {
	LedgerEntry
	EmployeeName        string `db:"employee_name"`
	EmployeeDesignation string `db:"employee_designation"`
}
