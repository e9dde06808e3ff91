package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/staffbridge/workforce_backend/internal/core/domain"
)

// fixedClock pins "now" so cooldown and date assertions are deterministic.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsersByRoleAndActive(ctx context.Context, role domain.Role, active bool) ([]domain.User, error) {
	args := m.Called(ctx, role, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) FindActiveUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SetUserActive(ctx context.Context, userID string, active bool, updatedAt time.Time, updatedBy string) error {
	args := m.Called(ctx, userID, active, updatedAt, updatedBy)
	return args.Error(0)
}

// --- Mock AttendanceRepository ---

type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) FindAttendanceByID(ctx context.Context, attendanceID string) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, attendanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) FindAttendanceByUserAndDate(ctx context.Context, userID string, date time.Time) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) FindLatestAttendanceByUser(ctx context.Context, userID string) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) FindAttendanceByUser(ctx context.Context, userID string) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) FindAttendanceByUserInRange(ctx context.Context, userID string, start, end time.Time) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) FindAttendanceInRange(ctx context.Context, start, end time.Time) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) SaveAttendance(ctx context.Context, record domain.AttendanceRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAttendanceRepository) UpdateAttendance(ctx context.Context, record domain.AttendanceRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// --- Mock LeaveRepository ---

type MockLeaveRepository struct {
	mock.Mock
}

func (m *MockLeaveRepository) FindLeaveByID(ctx context.Context, leaveID string) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, leaveID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRepository) FindLeavesByUser(ctx context.Context, userID string) ([]domain.LeaveRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRepository) FindLeavesByUserAndStatus(ctx context.Context, userID string, status domain.LeaveStatus) ([]domain.LeaveRequest, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRepository) FindAllLeaves(ctx context.Context) ([]domain.LeaveRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRepository) FindLeavesByUserStartingInRange(ctx context.Context, userID string, start, end time.Time) ([]domain.LeaveRequest, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRepository) FindLeavesStartingInRange(ctx context.Context, start, end time.Time) ([]domain.LeaveRequest, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRepository) SaveLeave(ctx context.Context, leave domain.LeaveRequest) error {
	args := m.Called(ctx, leave)
	return args.Error(0)
}

func (m *MockLeaveRepository) UpdateLeave(ctx context.Context, leave domain.LeaveRequest) error {
	args := m.Called(ctx, leave)
	return args.Error(0)
}

// --- Mock SalaryRepository ---

type MockSalaryRepository struct {
	mock.Mock
}

func (m *MockSalaryRepository) FindSalaryByID(ctx context.Context, salaryID string) (*domain.SalaryRecord, error) {
	args := m.Called(ctx, salaryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalaryRecord), args.Error(1)
}

func (m *MockSalaryRepository) FindSalaryByUserAndMonth(ctx context.Context, userID string, year, month int) (*domain.SalaryRecord, error) {
	args := m.Called(ctx, userID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalaryRecord), args.Error(1)
}

func (m *MockSalaryRepository) FindSalariesByUser(ctx context.Context, userID string) ([]domain.SalaryRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalaryRecord), args.Error(1)
}

func (m *MockSalaryRepository) FindSalariesByUserAndYear(ctx context.Context, userID string, year int) ([]domain.SalaryRecord, error) {
	args := m.Called(ctx, userID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalaryRecord), args.Error(1)
}

func (m *MockSalaryRepository) FindSalariesByMonth(ctx context.Context, year, month int) ([]domain.SalaryRecord, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalaryRecord), args.Error(1)
}

func (m *MockSalaryRepository) SaveSalary(ctx context.Context, salary domain.SalaryRecord) error {
	args := m.Called(ctx, salary)
	return args.Error(0)
}

func (m *MockSalaryRepository) UpdateSalary(ctx context.Context, salary domain.SalaryRecord) error {
	args := m.Called(ctx, salary)
	return args.Error(0)
}

// --- Mock RosterRepository ---

type MockRosterRepository struct {
	mock.Mock
}

func (m *MockRosterRepository) FindRosterByID(ctx context.Context, rosterID string) (*domain.RosterEntry, error) {
	args := m.Called(ctx, rosterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RosterEntry), args.Error(1)
}

func (m *MockRosterRepository) FindRosterByUserAndDate(ctx context.Context, userID string, shiftDate time.Time) (*domain.RosterEntry, error) {
	args := m.Called(ctx, userID, shiftDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RosterEntry), args.Error(1)
}

func (m *MockRosterRepository) FindRostersByUser(ctx context.Context, userID string) ([]domain.RosterEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RosterEntry), args.Error(1)
}

func (m *MockRosterRepository) FindRostersByUserInRange(ctx context.Context, userID string, start, end time.Time) ([]domain.RosterEntry, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RosterEntry), args.Error(1)
}

func (m *MockRosterRepository) FindRostersByDate(ctx context.Context, shiftDate time.Time) ([]domain.RosterEntry, error) {
	args := m.Called(ctx, shiftDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RosterEntry), args.Error(1)
}

func (m *MockRosterRepository) FindRostersInRange(ctx context.Context, start, end time.Time) ([]domain.RosterEntry, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RosterEntry), args.Error(1)
}

func (m *MockRosterRepository) SaveRoster(ctx context.Context, entry domain.RosterEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockRosterRepository) UpdateRoster(ctx context.Context, entry domain.RosterEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockRosterRepository) DeleteRoster(ctx context.Context, rosterID string) error {
	args := m.Called(ctx, rosterID)
	return args.Error(0)
}

// --- Mock NotificationRepository ---

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) FindNotificationByID(ctx context.Context, notificationID string) (*domain.Notification, error) {
	args := m.Called(ctx, notificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindNotificationsByRecipient(ctx context.Context, recipientID string) ([]domain.Notification, error) {
	args := m.Called(ctx, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindUnreadNotificationsByRecipient(ctx context.Context, recipientID string) ([]domain.Notification, error) {
	args := m.Called(ctx, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID string, readAt time.Time) error {
	args := m.Called(ctx, notificationID, readAt)
	return args.Error(0)
}

// --- Mock Notifier ---

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SystemNotify(ctx context.Context, senderID, recipientID, title, message string) error {
	args := m.Called(ctx, senderID, recipientID, title, message)
	return args.Error(0)
}
