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

func TestDefaultMessageFlow(t *testing.T) {
	cases := []struct {
		sender    domain.Role
		recipient domain.Role
		allowed   bool
	}{
		{domain.RoleAdmin, domain.RoleAdmin, true},
		{domain.RoleAdmin, domain.RoleManager, true},
		{domain.RoleAdmin, domain.RoleEmployee, true},
		{domain.RoleAdmin, domain.RoleHR, true},
		{domain.RoleHR, domain.RoleAdmin, true},
		{domain.RoleHR, domain.RoleManager, true},
		{domain.RoleHR, domain.RoleEmployee, true},
		{domain.RoleHR, domain.RoleHR, true},
		{domain.RoleManager, domain.RoleAdmin, true},
		{domain.RoleManager, domain.RoleEmployee, true},
		{domain.RoleManager, domain.RoleManager, false},
		{domain.RoleManager, domain.RoleHR, false},
		{domain.RoleEmployee, domain.RoleManager, true},
		{domain.RoleEmployee, domain.RoleAdmin, false},
		{domain.RoleEmployee, domain.RoleEmployee, false},
		{domain.RoleEmployee, domain.RoleHR, false},
	}
	for _, tc := range cases {
		got := services.DefaultMessageFlow.Allows(tc.sender, tc.recipient)
		assert.Equalf(t, tc.allowed, got, "%s -> %s", tc.sender, tc.recipient)
	}
}

type NotificationServiceTestSuite struct {
	suite.Suite
	mockNotificationRepo *MockNotificationRepository
	mockUserRepo         *MockUserRepository
	now                  time.Time
	service              portssvc.NotificationSvcFacade

	employee *domain.User
	manager  *domain.User
	admin    *domain.User
}

func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.mockNotificationRepo = new(MockNotificationRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.now = time.Date(2025, 8, 5, 16, 45, 0, 0, time.UTC)
	suite.service = services.NewNotificationService(
		suite.mockNotificationRepo, suite.mockUserRepo, services.DefaultMessageFlow, fixedClock{now: suite.now})

	suite.employee = &domain.User{UserID: uuid.NewString(), Name: "Omar", Role: domain.RoleEmployee, Active: true}
	suite.manager = &domain.User{UserID: uuid.NewString(), Name: "Lena", Role: domain.RoleManager, Active: true}
	suite.admin = &domain.User{UserID: uuid.NewString(), Name: "Root", Role: domain.RoleAdmin, Active: true}
}

func (suite *NotificationServiceTestSuite) TestSend_EmployeeToManagerAllowed() {
	ctx := context.Background()
	req := dto.SendNotificationRequest{
		RecipientID: suite.manager.UserID,
		Title:       "Shift swap",
		Message:     "Can I swap Friday with Priya?",
	}
	suite.mockUserRepo.On("FindUserByID", ctx, suite.employee.UserID).Return(suite.employee, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.manager.UserID).Return(suite.manager, nil).Once()
	suite.mockNotificationRepo.On("SaveNotification", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.SenderID == suite.employee.UserID &&
			n.RecipientID == suite.manager.UserID &&
			n.Title == "Shift swap" &&
			!n.Read &&
			n.CreatedAt.Equal(suite.now)
	})).Return(nil).Once()

	notification, err := suite.service.Send(ctx, suite.employee.UserID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(notification)
	suite.Equal(suite.manager.UserID, notification.RecipientID)
	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestSend_EmployeeToAdminForbidden() {
	ctx := context.Background()
	req := dto.SendNotificationRequest{
		RecipientID: suite.admin.UserID,
		Title:       "Escalation",
		Message:     "Skipping the chain of command.",
	}
	suite.mockUserRepo.On("FindUserByID", ctx, suite.employee.UserID).Return(suite.employee, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.admin.UserID).Return(suite.admin, nil).Once()

	notification, err := suite.service.Send(ctx, suite.employee.UserID, req)

	suite.Require().Error(err)
	suite.Nil(notification)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockNotificationRepo.AssertNotCalled(suite.T(), "SaveNotification", mock.Anything, mock.Anything)
}

func (suite *NotificationServiceTestSuite) TestSystemNotify_BypassesPolicy() {
	// A leave decision notice flows HR to EMPLOYEE's inbox regardless of what
	// the user-initiated allow-table would say about the reverse direction.
	ctx := context.Background()
	suite.mockNotificationRepo.On("SaveNotification", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.SenderID == suite.manager.UserID &&
			n.RecipientID == suite.employee.UserID &&
			n.Title == "Leave approved"
	})).Return(nil).Once()

	err := suite.service.SystemNotify(ctx, suite.manager.UserID, suite.employee.UserID,
		"Leave approved", "Your leave request was approved.")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestAllowedRecipients_EmployeeSeesActiveManagers() {
	ctx := context.Background()
	managers := []domain.User{*suite.manager}
	suite.mockUserRepo.On("FindUserByID", ctx, suite.employee.UserID).Return(suite.employee, nil).Once()
	suite.mockUserRepo.On("FindUsersByRoleAndActive", ctx, domain.RoleManager, true).Return(managers, nil).Once()

	recipients, err := suite.service.AllowedRecipients(ctx, suite.employee.UserID)

	suite.Require().NoError(err)
	suite.Require().Len(recipients, 1)
	suite.Equal(suite.manager.UserID, recipients[0].UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUsersByRoleAndActive", mock.Anything, domain.RoleAdmin, mock.Anything)
}

func (suite *NotificationServiceTestSuite) TestMarkRead_Success() {
	ctx := context.Background()
	notification := &domain.Notification{
		NotificationID: uuid.NewString(),
		SenderID:       suite.manager.UserID,
		RecipientID:    suite.employee.UserID,
		Title:          "Roster published",
	}
	suite.mockNotificationRepo.On("FindNotificationByID", ctx, notification.NotificationID).Return(notification, nil).Once()
	suite.mockNotificationRepo.On("MarkNotificationRead", ctx, notification.NotificationID, suite.now).Return(nil).Once()

	updated, err := suite.service.MarkRead(ctx, notification.NotificationID, suite.employee.UserID)

	suite.Require().NoError(err)
	suite.True(updated.Read)
	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestMarkRead_WrongRecipientForbidden() {
	ctx := context.Background()
	notification := &domain.Notification{
		NotificationID: uuid.NewString(),
		SenderID:       suite.manager.UserID,
		RecipientID:    suite.employee.UserID,
	}
	suite.mockNotificationRepo.On("FindNotificationByID", ctx, notification.NotificationID).Return(notification, nil).Once()

	updated, err := suite.service.MarkRead(ctx, notification.NotificationID, suite.admin.UserID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockNotificationRepo.AssertNotCalled(suite.T(), "MarkNotificationRead", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
