package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Both database backends build one of these.
type RepositoryProvider struct {
	EmployeeRepo   EmployeeRepositoryFacade
	LedgerRepo     LedgerRepositoryFacade
	AttendanceRepo AttendanceRepositoryFacade
	UserRepo       UserRepositoryFacade
	TxManager      TransactionManager
}
