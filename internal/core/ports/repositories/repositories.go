package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// container at startup.
type RepositoryProvider struct {
	UserRepo         UserRepositoryFacade
	AttendanceRepo   AttendanceRepositoryFacade
	LeaveRepo        LeaveRepositoryFacade
	SalaryRepo       SalaryRepositoryFacade
	RosterRepo       RosterRepositoryFacade
	NotificationRepo NotificationRepositoryFacade
}
