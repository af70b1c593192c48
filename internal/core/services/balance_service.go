package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/salary_ledger/internal/apperrors"
	"github.com/SscSPs/salary_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/salary_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/salary_ledger/internal/core/ports/services"
	"github.com/SscSPs/salary_ledger/internal/platform/clock"
	"github.com/shopspring/decimal"
)

type balanceService struct {
	BaseService
	employeeRepo portsrepo.EmployeeReader
	ledgerRepo   portsrepo.LedgerReader
	txManager    portsrepo.TransactionManager
}

// BalanceOption is a functional option for configuring the balance service
type BalanceOption func(*balanceService)

// WithBalanceClock overrides the clock used to stamp ledger entries.
func WithBalanceClock(c clock.Clock) BalanceOption {
	return func(s *balanceService) {
		s.Clock = c
	}
}

// NewBalanceService creates a new balance service.
func NewBalanceService(
	employeeRepo portsrepo.EmployeeReader,
	ledgerRepo portsrepo.LedgerReader,
	txManager portsrepo.TransactionManager,
	options ...BalanceOption,
) portssvc.BalanceSvcFacade {
	svc := &balanceService{
		BaseService:  BaseService{Clock: clock.System{}},
		employeeRepo: employeeRepo,
		ledgerRepo:   ledgerRepo,
		txManager:    txManager,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// RecordWithdrawal appends a ledger entry and bumps the running total under
// the employee row lock. A zero date means today.
func (s *balanceService) RecordWithdrawal(ctx context.Context, employeeID int64, amount decimal.Decimal, date time.Time, note string) (*domain.LedgerEntry, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("withdrawal amount must be greater than zero: %w", apperrors.ErrValidation)
	}

	now := s.Now()
	if date.IsZero() {
		date = clock.Date(now)
	} else {
		date = clock.CivilDate(date.Date())
	}

	var created *domain.LedgerEntry
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context, tx portsrepo.TxStore) error {
		employee, err := tx.LockEmployee(ctx, employeeID)
		if err != nil {
			return err
		}

		if !employee.CanWithdraw(amount) {
			return fmt.Errorf("withdrawal of %s exceeds remaining balance %s: %w",
				amount.StringFixed(2), employee.Remaining().StringFixed(2), apperrors.ErrInsufficientBalance)
		}

		entry, err := tx.InsertLedgerEntry(ctx, domain.LedgerEntry{
			EmployeeID: employeeID,
			Amount:     amount,
			Date:       date,
			Time:       domain.TimeOfDayOf(now),
			Note:       note,
			CreatedAt:  now,
		})
		if err != nil {
			return err
		}

		if err := tx.SetTotalWithdrawn(ctx, employeeID, employee.TotalWithdrawn.Add(amount), now); err != nil {
			return err
		}
		created = entry
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record withdrawal",
			slog.Int64("employee_id", employeeID),
			slog.String("amount", amount.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Withdrawal recorded",
		slog.Int64("employee_id", employeeID),
		slog.Int64("entry_id", created.EntryID),
		slog.String("amount", amount.String()))
	return created, nil
}

func (s *balanceService) RemainingBalance(ctx context.Context, employeeID int64) (decimal.Decimal, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return decimal.Zero, err
	}
	return employee.Remaining(), nil
}

// Reconcile compares the stored total with the ledger without writing.
func (s *balanceService) Reconcile(ctx context.Context, employeeID int64) (*domain.Reconciliation, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	sum, count, err := s.ledgerRepo.SumLedgerEntriesByEmployee(ctx, employeeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum ledger entries", slog.Int64("employee_id", employeeID))
		return nil, err
	}

	rec := newReconciliation(employeeID, employee.TotalWithdrawn, sum, count)
	if !rec.Consistent {
		s.LogInfo(ctx, "Running total drift detected",
			slog.Int64("employee_id", employeeID),
			slog.String("drift", rec.Drift.String()))
	}
	return rec, nil
}

// RepairTotal rewrites total_withdrawn from the ledger sum.
func (s *balanceService) RepairTotal(ctx context.Context, employeeID int64) (*domain.Reconciliation, error) {
	var rec *domain.Reconciliation
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context, tx portsrepo.TxStore) error {
		employee, err := tx.LockEmployee(ctx, employeeID)
		if err != nil {
			return err
		}
		sum, count, err := tx.SumLedgerEntries(ctx, employeeID)
		if err != nil {
			return err
		}
		if sum.GreaterThan(employee.Salary) {
			return fmt.Errorf("ledger total %s exceeds salary %s: %w",
				sum.StringFixed(2), employee.Salary.StringFixed(2), apperrors.ErrValidation)
		}

		rec = newReconciliation(employeeID, employee.TotalWithdrawn, sum, count)
		rec.PreviousStored = employee.TotalWithdrawn
		if rec.Consistent {
			return nil
		}
		if err := tx.SetTotalWithdrawn(ctx, employeeID, sum, s.Now()); err != nil {
			return err
		}
		rec.Repaired = true
		rec.StoredTotal = sum
		rec.Drift = decimal.Zero
		rec.Consistent = true
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to repair running total", slog.Int64("employee_id", employeeID))
		return nil, err
	}

	if rec.Repaired {
		s.LogInfo(ctx, "Running total repaired",
			slog.Int64("employee_id", employeeID),
			slog.String("previous", rec.PreviousStored.String()),
			slog.String("ledger_total", rec.LedgerTotal.String()))
	}
	return rec, nil
}

func newReconciliation(employeeID int64, stored, ledger decimal.Decimal, count int) *domain.Reconciliation {
	drift := stored.Sub(ledger)
	return &domain.Reconciliation{
		EmployeeID:     employeeID,
		StoredTotal:    stored,
		LedgerTotal:    ledger,
		Drift:          drift,
		EntryCount:     count,
		Consistent:     drift.IsZero(),
		PreviousStored: stored,
	}
}
