package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/staffbridge/workforce_backend/internal/apperrors"
	"github.com/staffbridge/workforce_backend/internal/core/domain"
	portssvc "github.com/staffbridge/workforce_backend/internal/core/ports/services"
	"github.com/staffbridge/workforce_backend/internal/core/services"
	"github.com/staffbridge/workforce_backend/internal/dto"
)

type LeaveServiceTestSuite struct {
	suite.Suite
	mockLeaveRepo *MockLeaveRepository
	mockUserRepo  *MockUserRepository
	mockNotifier  *MockNotifier
	now           time.Time
	service       portssvc.LeaveSvcFacade

	userID string
	user   *domain.User
}

func (suite *LeaveServiceTestSuite) SetupTest() {
	suite.mockLeaveRepo = new(MockLeaveRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockNotifier = new(MockNotifier)
	suite.now = time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC)
	suite.service = services.NewLeaveService(suite.mockLeaveRepo, suite.mockUserRepo, suite.mockNotifier, fixedClock{now: suite.now})

	suite.userID = uuid.NewString()
	suite.user = &domain.User{UserID: suite.userID, Name: "Priya", Role: domain.RoleEmployee, Active: true}
}

func (suite *LeaveServiceTestSuite) TestApply_SuccessNotifiesAllHR() {
	ctx := context.Background()
	req := dto.ApplyLeaveRequest{
		StartDate: "2025-06-10",
		EndDate:   "2025-06-12",
		LeaveType: "ANNUAL",
		Reason:    "family trip",
	}
	hrUsers := []domain.User{
		{UserID: uuid.NewString(), Role: domain.RoleHR, Active: true},
		{UserID: uuid.NewString(), Role: domain.RoleHR, Active: true},
	}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(suite.user, nil).Once()
	suite.mockLeaveRepo.On("SaveLeave", ctx, mock.MatchedBy(func(l domain.LeaveRequest) bool {
		return l.UserID == suite.userID &&
			l.Status == domain.LeavePending &&
			l.ApproverID == nil &&
			l.StartDate.Equal(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)) &&
			l.EndDate.Equal(time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC))
	})).Return(nil).Once()
	suite.mockUserRepo.On("FindUsersByRoleAndActive", ctx, domain.RoleHR, true).Return(hrUsers, nil).Once()
	suite.mockNotifier.On("SystemNotify", ctx, suite.userID, hrUsers[0].UserID, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockNotifier.On("SystemNotify", ctx, suite.userID, hrUsers[1].UserID, mock.Anything, mock.Anything).Return(nil).Once()

	leave, err := suite.service.Apply(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(leave)
	suite.Equal(domain.LeavePending, leave.Status)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestApply_NotificationFailureDoesNotFailApply() {
	ctx := context.Background()
	req := dto.ApplyLeaveRequest{StartDate: "2025-06-10", EndDate: "2025-06-11", LeaveType: "SICK"}
	hrUsers := []domain.User{{UserID: uuid.NewString(), Role: domain.RoleHR, Active: true}}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(suite.user, nil).Once()
	suite.mockLeaveRepo.On("SaveLeave", ctx, mock.AnythingOfType("domain.LeaveRequest")).Return(nil).Once()
	suite.mockUserRepo.On("FindUsersByRoleAndActive", ctx, domain.RoleHR, true).Return(hrUsers, nil).Once()
	suite.mockNotifier.On("SystemNotify", ctx, suite.userID, hrUsers[0].UserID, mock.Anything, mock.Anything).
		Return(assert.AnError).Once()

	leave, err := suite.service.Apply(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(leave)
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestApply_StartAfterEndIsAccepted() {
	// Date ordering is the caller's policy; the ledger stores the range as given.
	ctx := context.Background()
	req := dto.ApplyLeaveRequest{StartDate: "2025-06-20", EndDate: "2025-06-10", LeaveType: "ANNUAL"}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(suite.user, nil).Once()
	suite.mockLeaveRepo.On("SaveLeave", ctx, mock.MatchedBy(func(l domain.LeaveRequest) bool {
		return l.StartDate.After(l.EndDate)
	})).Return(nil).Once()
	suite.mockUserRepo.On("FindUsersByRoleAndActive", ctx, domain.RoleHR, true).Return([]domain.User{}, nil).Once()

	leave, err := suite.service.Apply(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(leave)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestApply_InvalidDateRejected() {
	ctx := context.Background()
	req := dto.ApplyLeaveRequest{StartDate: "10-06-2025", EndDate: "2025-06-11", LeaveType: "ANNUAL"}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(suite.user, nil).Once()

	leave, err := suite.service.Apply(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(leave)
	suite.mockLeaveRepo.AssertNotCalled(suite.T(), "SaveLeave", mock.Anything, mock.Anything)
}

func (suite *LeaveServiceTestSuite) TestApprove_SuccessNotifiesApplicant() {
	ctx := context.Background()
	leaveID := uuid.NewString()
	approverID := uuid.NewString()
	approver := &domain.User{UserID: approverID, Name: "Hugo", Role: domain.RoleHR, Active: true}
	pending := &domain.LeaveRequest{
		LeaveID:   leaveID,
		UserID:    suite.userID,
		StartDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		LeaveType: "ANNUAL",
		Status:    domain.LeavePending,
	}

	suite.mockLeaveRepo.On("FindLeaveByID", ctx, leaveID).Return(pending, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, approverID).Return(approver, nil).Once()
	suite.mockLeaveRepo.On("UpdateLeave", ctx, mock.MatchedBy(func(l domain.LeaveRequest) bool {
		return l.LeaveID == leaveID &&
			l.Status == domain.LeaveApproved &&
			l.ApproverID != nil && *l.ApproverID == approverID &&
			l.ApproverNotes == "enjoy"
	})).Return(nil).Once()
	suite.mockNotifier.On("SystemNotify", ctx, approverID, suite.userID, mock.Anything, mock.Anything).Return(nil).Once()

	leave, err := suite.service.Approve(ctx, leaveID, approverID, "enjoy")

	suite.Require().NoError(err)
	suite.Equal(domain.LeaveApproved, leave.Status)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestApprove_OverridesEarlierRejection() {
	// A decision is not terminal: approving a REJECTED leave overwrites the
	// earlier decision and its approver.
	ctx := context.Background()
	leaveID := uuid.NewString()
	firstApprover := uuid.NewString()
	secondApproverID := uuid.NewString()
	secondApprover := &domain.User{UserID: secondApproverID, Name: "Ada", Role: domain.RoleAdmin, Active: true}
	rejected := &domain.LeaveRequest{
		LeaveID:       leaveID,
		UserID:        suite.userID,
		Status:        domain.LeaveRejected,
		ApproverID:    &firstApprover,
		ApproverNotes: "short staffed",
	}

	suite.mockLeaveRepo.On("FindLeaveByID", ctx, leaveID).Return(rejected, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, secondApproverID).Return(secondApprover, nil).Once()
	suite.mockLeaveRepo.On("UpdateLeave", ctx, mock.MatchedBy(func(l domain.LeaveRequest) bool {
		return l.Status == domain.LeaveApproved &&
			l.ApproverID != nil && *l.ApproverID == secondApproverID &&
			l.ApproverNotes == "reconsidered"
	})).Return(nil).Once()
	suite.mockNotifier.On("SystemNotify", ctx, secondApproverID, suite.userID, mock.Anything, mock.Anything).Return(nil).Once()

	leave, err := suite.service.Approve(ctx, leaveID, secondApproverID, "reconsidered")

	suite.Require().NoError(err)
	suite.Equal(domain.LeaveApproved, leave.Status)
	suite.Equal(secondApproverID, *leave.ApproverID)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestReject_Success() {
	ctx := context.Background()
	leaveID := uuid.NewString()
	approverID := uuid.NewString()
	approver := &domain.User{UserID: approverID, Name: "Hugo", Role: domain.RoleHR, Active: true}
	pending := &domain.LeaveRequest{LeaveID: leaveID, UserID: suite.userID, Status: domain.LeavePending}

	suite.mockLeaveRepo.On("FindLeaveByID", ctx, leaveID).Return(pending, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, approverID).Return(approver, nil).Once()
	suite.mockLeaveRepo.On("UpdateLeave", ctx, mock.MatchedBy(func(l domain.LeaveRequest) bool {
		return l.Status == domain.LeaveRejected
	})).Return(nil).Once()
	suite.mockNotifier.On("SystemNotify", ctx, approverID, suite.userID, mock.Anything, mock.Anything).Return(nil).Once()

	leave, err := suite.service.Reject(ctx, leaveID, approverID, "coverage gap")

	suite.Require().NoError(err)
	suite.Equal(domain.LeaveRejected, leave.Status)
}

func (suite *LeaveServiceTestSuite) TestApprove_LeaveNotFound() {
	ctx := context.Background()
	leaveID := uuid.NewString()

	suite.mockLeaveRepo.On("FindLeaveByID", ctx, leaveID).Return(nil, apperrors.ErrNotFound).Once()

	leave, err := suite.service.Approve(ctx, leaveID, uuid.NewString(), "")

	suite.Require().Error(err)
	suite.Nil(leave)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LeaveServiceTestSuite) TestListAllPending_FiltersByStatus() {
	ctx := context.Background()
	all := []domain.LeaveRequest{
		{LeaveID: uuid.NewString(), Status: domain.LeavePending},
		{LeaveID: uuid.NewString(), Status: domain.LeaveApproved},
		{LeaveID: uuid.NewString(), Status: domain.LeavePending},
		{LeaveID: uuid.NewString(), Status: domain.LeaveRejected},
	}
	suite.mockLeaveRepo.On("FindAllLeaves", ctx).Return(all, nil).Once()

	pending, err := suite.service.ListAllPending(ctx)

	suite.Require().NoError(err)
	suite.Len(pending, 2)
	for _, l := range pending {
		suite.Equal(domain.LeavePending, l.Status)
	}
}

func TestLeaveServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaveServiceTestSuite))
}
