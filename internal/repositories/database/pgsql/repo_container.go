package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/staffbridge/workforce_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider builds the pgx-backed repository set over one shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		AttendanceRepo:   newPgxAttendanceRepository(dbPool),
		LeaveRepo:        newPgxLeaveRepository(dbPool),
		SalaryRepo:       newPgxSalaryRepository(dbPool),
		RosterRepo:       newPgxRosterRepository(dbPool),
		NotificationRepo: newPgxNotificationRepository(dbPool),
	}
}
