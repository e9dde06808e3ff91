package services

import (
	portsrepo "github.com/staffbridge/workforce_backend/internal/core/ports/repositories"
	portssvc "github.com/staffbridge/workforce_backend/internal/core/ports/services"
)

// NewServiceContainer wires the service graph. The notification service comes
// first because leave and user services dispatch through it.
func NewServiceContainer(repos portsrepo.RepositoryProvider, clock Clock) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Notification = NewNotificationService(repos.NotificationRepo, repos.UserRepo, DefaultMessageFlow, clock)
	container.User = NewUserService(repos.UserRepo, container.Notification, clock)
	container.Attendance = NewAttendanceService(repos.AttendanceRepo, repos.UserRepo, clock)
	container.Leave = NewLeaveService(repos.LeaveRepo, repos.UserRepo, container.Notification, clock)
	container.Salary = NewSalaryService(repos.SalaryRepo, repos.AttendanceRepo, repos.LeaveRepo, repos.UserRepo, clock)
	container.Roster = NewRosterService(repos.RosterRepo, repos.UserRepo, clock)

	return container
}

// Compile-time interface checks for the service implementations.
var (
	_ portssvc.AttendanceSvcFacade   = (*attendanceService)(nil)
	_ portssvc.LeaveSvcFacade        = (*leaveService)(nil)
	_ portssvc.SalarySvcFacade       = (*salaryService)(nil)
	_ portssvc.RosterSvcFacade       = (*rosterService)(nil)
	_ portssvc.NotificationSvcFacade = (*notificationService)(nil)
	_ portssvc.UserSvcFacade         = (*userService)(nil)
)
