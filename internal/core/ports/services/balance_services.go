package services

import (
	"context"
	"time"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceReaderSvc defines read operations on employee balances.
type BalanceReaderSvc interface {
	// RemainingBalance returns salary minus total withdrawn.
	RemainingBalance(ctx context.Context, employeeID int64) (decimal.Decimal, error)

	// Reconcile compares the stored running total with the sum of ledger entries.
	Reconcile(ctx context.Context, employeeID int64) (*domain.Reconciliation, error)
}

// BalanceWriterSvc defines the operations that mutate an employee's withdrawn total.
type BalanceWriterSvc interface {
	// RecordWithdrawal appends a ledger entry and increments the running total atomically.
	RecordWithdrawal(ctx context.Context, employeeID int64, amount decimal.Decimal, date time.Time, note string) (*domain.LedgerEntry, error)

	// RepairTotal rewrites the running total from the ledger.
	RepairTotal(ctx context.Context, employeeID int64) (*domain.Reconciliation, error)
}

// BalanceSvcFacade combines all balance operations.
type BalanceSvcFacade interface {
	BalanceReaderSvc
	BalanceWriterSvc
}
