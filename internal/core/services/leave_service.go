package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/staffbridge/workforce_backend/internal/core/domain"
	portsrepo "github.com/staffbridge/workforce_backend/internal/core/ports/repositories"
	portssvc "github.com/staffbridge/workforce_backend/internal/core/ports/services"
	"github.com/staffbridge/workforce_backend/internal/dto"
	"github.com/staffbridge/workforce_backend/internal/middleware"
)

// leaveService records leave requests and their approval lifecycle.
//
// Two behaviors are deliberate and load-bearing: the ledger does not validate
// that start <= end (callers own ordering policy), and approve/reject does not
// require the leave to still be PENDING. A later decision silently overwrites
// the earlier one, which is how mistaken decisions get corrected.
type leaveService struct {
	leaveRepo portsrepo.LeaveRepositoryFacade
	userRepo  portsrepo.UserReader
	notifier  portssvc.Notifier
	clock     Clock
}

// NewLeaveService creates the leave ledger.
func NewLeaveService(leaveRepo portsrepo.LeaveRepositoryFacade, userRepo portsrepo.UserReader, notifier portssvc.Notifier, clock Clock) portssvc.LeaveSvcFacade {
	return &leaveService{
		leaveRepo: leaveRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		clock:     clock,
	}
}

var _ portssvc.LeaveSvcFacade = (*leaveService)(nil)

func (s *leaveService) Apply(ctx context.Context, userID string, req dto.ApplyLeaveRequest) (*domain.LeaveRequest, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolving user %s: %w", userID, err)
	}

	startDate, err := dto.ParseDateOnly(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := dto.ParseDateOnly(req.EndDate)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	leave := domain.LeaveRequest{
		LeaveID:   uuid.NewString(),
		UserID:    user.UserID,
		StartDate: startDate,
		EndDate:   endDate,
		LeaveType: req.LeaveType,
		Reason:    req.Reason,
		Status:    domain.LeavePending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     user.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: user.UserID,
		},
	}

	if err := s.leaveRepo.SaveLeave(ctx, leave); err != nil {
		return nil, fmt.Errorf("saving leave request for user %s: %w", user.UserID, err)
	}

	s.notifyHR(ctx, user, &leave)

	return &leave, nil
}

// notifyHR broadcasts the new request to every active HR user. Dispatch is
// best-effort: failures are logged and must never roll back the saved request.
func (s *leaveService) notifyHR(ctx context.Context, applicant *domain.User, leave *domain.LeaveRequest) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hrUsers, err := s.userRepo.FindUsersByRoleAndActive(ctx, domain.RoleHR, true)
	if err != nil {
		logger.Warn("Failed to list HR users for leave notification",
			slog.String("leave_id", leave.LeaveID), slog.String("error", err.Error()))
		return
	}

	title := "New leave request"
	body := fmt.Sprintf("%s requested %s leave from %s to %s: %s",
		applicant.Name, leave.LeaveType,
		dto.FormatDateOnly(leave.StartDate), dto.FormatDateOnly(leave.EndDate), leave.Reason)

	for _, hr := range hrUsers {
		if err := s.notifier.SystemNotify(ctx, applicant.UserID, hr.UserID, title, body); err != nil {
			logger.Warn("Failed to notify HR user of leave request",
				slog.String("leave_id", leave.LeaveID),
				slog.String("recipient_id", hr.UserID),
				slog.String("error", err.Error()))
		}
	}
}

func (s *leaveService) Approve(ctx context.Context, leaveID, approverID, notes string) (*domain.LeaveRequest, error) {
	return s.decide(ctx, leaveID, approverID, notes, domain.LeaveApproved)
}

func (s *leaveService) Reject(ctx context.Context, leaveID, approverID, notes string) (*domain.LeaveRequest, error) {
	return s.decide(ctx, leaveID, approverID, notes, domain.LeaveRejected)
}

func (s *leaveService) decide(ctx context.Context, leaveID, approverID, notes string, status domain.LeaveStatus) (*domain.LeaveRequest, error) {
	leave, err := s.leaveRepo.FindLeaveByID(ctx, leaveID)
	if err != nil {
		return nil, fmt.Errorf("resolving leave %s: %w", leaveID, err)
	}

	approver, err := s.userRepo.FindUserByID(ctx, approverID)
	if err != nil {
		return nil, fmt.Errorf("resolving approver %s: %w", approverID, err)
	}

	now := s.clock.Now()
	leave.Status = status
	leave.ApproverID = &approver.UserID
	leave.ApproverNotes = notes
	leave.LastUpdatedAt = now
	leave.LastUpdatedBy = approver.UserID

	if err := s.leaveRepo.UpdateLeave(ctx, *leave); err != nil {
		return nil, fmt.Errorf("updating leave %s: %w", leave.LeaveID, err)
	}

	s.notifyDecision(ctx, approver, leave)

	return leave, nil
}

// notifyDecision tells the applicant the outcome, best-effort.
func (s *leaveService) notifyDecision(ctx context.Context, approver *domain.User, leave *domain.LeaveRequest) {
	title := fmt.Sprintf("Leave request %s", leave.Status)
	body := fmt.Sprintf("Your %s leave from %s to %s was %s by %s.",
		leave.LeaveType, dto.FormatDateOnly(leave.StartDate), dto.FormatDateOnly(leave.EndDate),
		leave.Status, approver.Name)
	if leave.ApproverNotes != "" {
		body += " Notes: " + leave.ApproverNotes
	}

	if err := s.notifier.SystemNotify(ctx, approver.UserID, leave.UserID, title, body); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to notify applicant of leave decision",
			slog.String("leave_id", leave.LeaveID), slog.String("error", err.Error()))
	}
}

func (s *leaveService) ListForUser(ctx context.Context, userID string) ([]domain.LeaveRequest, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolving user %s: %w", userID, err)
	}
	return s.leaveRepo.FindLeavesByUser(ctx, user.UserID)
}

func (s *leaveService) ListPendingForUser(ctx context.Context, userID string) ([]domain.LeaveRequest, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolving user %s: %w", userID, err)
	}
	return s.leaveRepo.FindLeavesByUserAndStatus(ctx, user.UserID, domain.LeavePending)
}

// ListAllPending filters the full leave population by status here rather than
// delegating the filter to the store.
func (s *leaveService) ListAllPending(ctx context.Context) ([]domain.LeaveRequest, error) {
	all, err := s.leaveRepo.FindAllLeaves(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing leaves: %w", err)
	}
	pending := make([]domain.LeaveRequest, 0)
	for _, leave := range all {
		if leave.Status == domain.LeavePending {
			pending = append(pending, leave)
		}
	}
	return pending, nil
}

func (s *leaveService) ListForUserInRange(ctx context.Context, userID string, start, end time.Time) ([]domain.LeaveRequest, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolving user %s: %w", userID, err)
	}
	return s.leaveRepo.FindLeavesByUserStartingInRange(ctx, user.UserID, DateOf(start), DateOf(end))
}

func (s *leaveService) ListAllInRange(ctx context.Context, start, end time.Time) ([]domain.LeaveRequest, error) {
	return s.leaveRepo.FindLeavesStartingInRange(ctx, DateOf(start), DateOf(end))
}
