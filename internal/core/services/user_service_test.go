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
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	mockNotifier *MockNotifier
	now          time.Time
	service      portssvc.UserSvcFacade

	userID  string
	actorID string
	user    *domain.User
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockNotifier = new(MockNotifier)
	suite.now = time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)
	suite.service = services.NewUserService(suite.mockUserRepo, suite.mockNotifier, fixedClock{now: suite.now})

	suite.userID = uuid.NewString()
	suite.actorID = uuid.NewString()
	suite.user = &domain.User{UserID: suite.userID, Name: "Tess", Role: domain.RoleEmployee, Active: true}
}

func (suite *UserServiceTestSuite) TestDeactivate_SuccessNotifiesUser() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(suite.user, nil).Once()
	suite.mockUserRepo.On("SetUserActive", ctx, suite.userID, false, suite.now, suite.actorID).Return(nil).Once()
	suite.mockNotifier.On("SystemNotify", ctx, suite.actorID, suite.userID,
		"Account deactivated", mock.AnythingOfType("string")).Return(nil).Once()

	err := suite.service.Deactivate(ctx, suite.userID, suite.actorID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeactivate_NotificationFailureIsSwallowed() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(suite.user, nil).Once()
	suite.mockUserRepo.On("SetUserActive", ctx, suite.userID, false, suite.now, suite.actorID).Return(nil).Once()
	suite.mockNotifier.On("SystemNotify", ctx, suite.actorID, suite.userID,
		"Account deactivated", mock.AnythingOfType("string")).Return(assert.AnError).Once()

	err := suite.service.Deactivate(ctx, suite.userID, suite.actorID)

	suite.Require().NoError(err)
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeactivate_UnknownUser() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.Deactivate(ctx, suite.userID, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SetUserActive",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockNotifier.AssertNotCalled(suite.T(), "SystemNotify",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, suite.userID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestListActiveUsers_Passthrough() {
	ctx := context.Background()
	active := []domain.User{*suite.user}
	suite.mockUserRepo.On("FindActiveUsers", ctx).Return(active, nil).Once()

	users, err := suite.service.ListActiveUsers(ctx)

	suite.Require().NoError(err)
	suite.Len(users, 1)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
