package services

// ServiceContainer bundles the service facades handed to the HTTP layer.
type ServiceContainer struct {
	User         UserSvcFacade
	Attendance   AttendanceSvcFacade
	Leave        LeaveSvcFacade
	Salary       SalarySvcFacade
	Roster       RosterSvcFacade
	Notification NotificationSvcFacade
}
