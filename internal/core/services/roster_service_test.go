package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/staffbridge/workforce_backend/internal/apperrors"
	"github.com/staffbridge/workforce_backend/internal/core/domain"
	portssvc "github.com/staffbridge/workforce_backend/internal/core/ports/services"
	"github.com/staffbridge/workforce_backend/internal/core/services"
	"github.com/staffbridge/workforce_backend/internal/dto"
)

type RosterServiceTestSuite struct {
	suite.Suite
	mockRosterRepo *MockRosterRepository
	mockUserRepo   *MockUserRepository
	now            time.Time
	service        portssvc.RosterSvcFacade

	userID    string
	plannerID string
	user      *domain.User
	planner   *domain.User
	shiftDate time.Time
}

func (suite *RosterServiceTestSuite) SetupTest() {
	suite.mockRosterRepo = new(MockRosterRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.now = time.Date(2025, 7, 14, 11, 0, 0, 0, time.UTC)
	suite.service = services.NewRosterService(suite.mockRosterRepo, suite.mockUserRepo, fixedClock{now: suite.now})

	suite.userID = uuid.NewString()
	suite.plannerID = uuid.NewString()
	suite.user = &domain.User{UserID: suite.userID, Name: "Ravi", Role: domain.RoleEmployee, Active: true}
	suite.planner = &domain.User{UserID: suite.plannerID, Name: "Noor", Role: domain.RoleManager, Active: true}
	suite.shiftDate = time.Date(2025, 7, 21, 0, 0, 0, 0, time.UTC)
}

func (suite *RosterServiceTestSuite) expectLookups(ctx context.Context) {
	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(suite.user, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.plannerID).Return(suite.planner, nil).Once()
}

func (suite *RosterServiceTestSuite) TestUpsert_CreatesWhenAbsent() {
	ctx := context.Background()
	req := dto.UpsertRosterRequest{
		UserID:    suite.userID,
		ShiftDate: "2025-07-21",
		ShiftType: string(domain.ShiftMorning),
		Location:  "Front desk",
	}
	suite.expectLookups(ctx)
	suite.mockRosterRepo.On("FindRosterByUserAndDate", ctx, suite.userID, suite.shiftDate).Return(nil, nil).Once()
	suite.mockRosterRepo.On("SaveRoster", ctx, mock.MatchedBy(func(e domain.RosterEntry) bool {
		return e.UserID == suite.userID &&
			e.ShiftDate.Equal(suite.shiftDate) &&
			e.ShiftType == domain.ShiftMorning &&
			e.Location == "Front desk" &&
			e.CreatedByID == suite.plannerID
	})).Return(nil).Once()

	entry, err := suite.service.Upsert(ctx, req, suite.plannerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(domain.ShiftMorning, entry.ShiftType)
	suite.mockRosterRepo.AssertNotCalled(suite.T(), "UpdateRoster", mock.Anything, mock.Anything)
	suite.mockRosterRepo.AssertExpectations(suite.T())
}

func (suite *RosterServiceTestSuite) TestUpsert_UpdatesInPlacePreservingCreator() {
	ctx := context.Background()
	originalPlannerID := uuid.NewString()
	existing := &domain.RosterEntry{
		RosterID:    uuid.NewString(),
		UserID:      suite.userID,
		ShiftDate:   suite.shiftDate,
		ShiftType:   domain.ShiftMorning,
		Location:    "Front desk",
		CreatedByID: originalPlannerID,
	}
	req := dto.UpsertRosterRequest{
		UserID:    suite.userID,
		ShiftDate: "2025-07-21",
		ShiftType: string(domain.ShiftNight),
		Location:  "Warehouse",
		Notes:     "swapped with Priya",
	}
	suite.expectLookups(ctx)
	suite.mockRosterRepo.On("FindRosterByUserAndDate", ctx, suite.userID, suite.shiftDate).Return(existing, nil).Once()
	suite.mockRosterRepo.On("UpdateRoster", ctx, mock.MatchedBy(func(e domain.RosterEntry) bool {
		return e.RosterID == existing.RosterID &&
			e.ShiftType == domain.ShiftNight &&
			e.Location == "Warehouse" &&
			e.Notes == "swapped with Priya" &&
			e.CreatedByID == originalPlannerID &&
			e.LastUpdatedBy == suite.plannerID
	})).Return(nil).Once()

	entry, err := suite.service.Upsert(ctx, req, suite.plannerID)

	suite.Require().NoError(err)
	suite.Equal(existing.RosterID, entry.RosterID)
	suite.Equal(originalPlannerID, entry.CreatedByID)
	suite.mockRosterRepo.AssertNotCalled(suite.T(), "SaveRoster", mock.Anything, mock.Anything)
	suite.mockRosterRepo.AssertExpectations(suite.T())
}

func (suite *RosterServiceTestSuite) TestUpsert_InsertRaceFallsBackToUpdate() {
	ctx := context.Background()
	winner := &domain.RosterEntry{
		RosterID:    uuid.NewString(),
		UserID:      suite.userID,
		ShiftDate:   suite.shiftDate,
		ShiftType:   domain.ShiftMorning,
		CreatedByID: uuid.NewString(),
	}
	req := dto.UpsertRosterRequest{
		UserID:    suite.userID,
		ShiftDate: "2025-07-21",
		ShiftType: string(domain.ShiftAfternoon),
	}
	suite.expectLookups(ctx)
	suite.mockRosterRepo.On("FindRosterByUserAndDate", ctx, suite.userID, suite.shiftDate).Return(nil, nil).Once()
	suite.mockRosterRepo.On("SaveRoster", ctx, mock.AnythingOfType("domain.RosterEntry")).
		Return(apperrors.NewConflictError("roster entry already exists")).Once()
	suite.mockRosterRepo.On("FindRosterByUserAndDate", ctx, suite.userID, suite.shiftDate).Return(winner, nil).Once()
	suite.mockRosterRepo.On("UpdateRoster", ctx, mock.MatchedBy(func(e domain.RosterEntry) bool {
		return e.RosterID == winner.RosterID && e.ShiftType == domain.ShiftAfternoon
	})).Return(nil).Once()

	entry, err := suite.service.Upsert(ctx, req, suite.plannerID)

	suite.Require().NoError(err)
	suite.Equal(winner.RosterID, entry.RosterID)
	suite.mockRosterRepo.AssertExpectations(suite.T())
}

func (suite *RosterServiceTestSuite) TestUpsert_InvalidDateRejected() {
	ctx := context.Background()
	req := dto.UpsertRosterRequest{
		UserID:    suite.userID,
		ShiftDate: "21/07/2025",
		ShiftType: string(domain.ShiftMorning),
	}
	suite.expectLookups(ctx)

	entry, err := suite.service.Upsert(ctx, req, suite.plannerID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.mockRosterRepo.AssertNotCalled(suite.T(), "SaveRoster", mock.Anything, mock.Anything)
}

func (suite *RosterServiceTestSuite) TestDelete_NotFound() {
	ctx := context.Background()
	rosterID := uuid.NewString()
	suite.mockRosterRepo.On("DeleteRoster", ctx, rosterID).
		Return(apperrors.NewNotFoundError("roster entry not found")).Once()

	err := suite.service.Delete(ctx, rosterID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestRosterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RosterServiceTestSuite))
}
