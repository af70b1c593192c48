package sqlite

import (
	portsrepo "github.com/SscSPs/salary_ledger/internal/core/ports/repositories"
	"github.com/jmoiron/sqlx"
)

func NewRepositoryProvider(db *sqlx.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EmployeeRepo:   newSqliteEmployeeRepository(db),
		LedgerRepo:     newSqliteLedgerRepository(db),
		AttendanceRepo: newSqliteAttendanceRepository(db),
		UserRepo:       newSqliteUserRepository(db),
		TxManager:      newSqliteTransactionManager(db),
	}
}
