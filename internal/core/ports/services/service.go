package services

// ServiceContainer holds instances of all the application services.
// Handlers receive their dependencies from here.
type ServiceContainer struct {
	Balance     BalanceSvcFacade
	Aggregation AggregationSvcFacade
	Attendance  AttendanceSvcFacade
	Employee    EmployeeSvcFacade
	Report      ReportSvcFacade
	User        UserSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
}
