package pgsql

import (
	portsrepo "github.com/SscSPs/salary_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EmployeeRepo:   newPgxEmployeeRepository(dbPool),
		LedgerRepo:     newPgxLedgerRepository(dbPool),
		AttendanceRepo: newPgxAttendanceRepository(dbPool),
		UserRepo:       newPgxUserRepository(dbPool),
		TxManager:      newPgxTransactionManager(dbPool),
	}
}
