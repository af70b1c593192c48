package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one salary withdrawal. Entries are never updated.
type LedgerEntry struct {
	EntryID    int64           `json:"entryID"`
	EmployeeID int64           `json:"employeeID"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	Time       TimeOfDay       `json:"time"`
	Note       string          `json:"note"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// SlipNumber is the printable withdrawal slip number.
func (l LedgerEntry) SlipNumber() string {
	return fmt.Sprintf("WS-%06d", l.EntryID)
}

// LedgerEntryWithEmployee is an entry joined with the owning employee's
// display fields, used by cross-employee listings.
type LedgerEntryWithEmployee struct {
	LedgerEntry
	EmployeeName        string `json:"employeeName"`
	EmployeeDesignation string `json:"employeeDesignation"`
}

// SumAmounts totals the amounts of the given entries.
func SumAmounts(entries []LedgerEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}
