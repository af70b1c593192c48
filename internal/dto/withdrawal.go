package dto

import (
	"time"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordWithdrawalRequest defines a salary withdrawal. Date defaults to today.
type RecordWithdrawalRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
	Date   string           `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Note   string           `json:"note" binding:"max=500"`
}

// LedgerEntryResponse defines the data returned for one withdrawal.
type LedgerEntryResponse struct {
	EntryID    int64           `json:"entryID"`
	SlipNumber string          `json:"slipNumber"`
	EmployeeID int64           `json:"employeeID"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	Time       string          `json:"time"`
	Note       string          `json:"note"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its response DTO
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:    e.EntryID,
		SlipNumber: e.SlipNumber(),
		EmployeeID: e.EmployeeID,
		Amount:     e.Amount,
		Date:       e.Date.Format(domain.DateLayout),
		Time:       e.Time.String(),
		Note:       e.Note,
		CreatedAt:  e.CreatedAt,
	}
}

// ToListLedgerEntryResponse converts entries to response DTOs
func ToListLedgerEntryResponse(entries []domain.LedgerEntry) []LedgerEntryResponse {
	res := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToLedgerEntryResponse(&entries[i])
	}
	return res
}

// ListLedgerEntriesParams defines query parameters for withdrawal history.
type ListLedgerEntriesParams struct {
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// ListLedgerEntriesResponse wraps a page of withdrawal history.
type ListLedgerEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// BalanceResponse reports an employee's remaining balance.
type BalanceResponse struct {
	EmployeeID     int64           `json:"employeeID"`
	Salary         decimal.Decimal `json:"salary"`
	TotalWithdrawn decimal.Decimal `json:"totalWithdrawn"`
	Remaining      decimal.Decimal `json:"remaining"`
}
