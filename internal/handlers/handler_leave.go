package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/staffbridge/workforce_backend/internal/core/domain"
	portssvc "github.com/staffbridge/workforce_backend/internal/core/ports/services"
	"github.com/staffbridge/workforce_backend/internal/dto"
	"github.com/staffbridge/workforce_backend/internal/middleware"
)

// leaveHandler handles HTTP requests for the leave ledger.
type leaveHandler struct {
	leaveService portssvc.LeaveSvcFacade
}

func newLeaveHandler(ls portssvc.LeaveSvcFacade) *leaveHandler {
	return &leaveHandler{leaveService: ls}
}

// registerLeaveRoutes registers routes related to leave requests.
func registerLeaveRoutes(rg *gin.RouterGroup, leaveService portssvc.LeaveSvcFacade) {
	h := newLeaveHandler(leaveService)

	leaves := rg.Group("/leaves")
	{
		leaves.POST("", h.apply)
		leaves.GET("/me", h.listMine)
		leaves.GET("/me/pending", h.listMinePending)
		leaves.GET("/pending",
			middleware.RequireRoles(domain.RoleAdmin, domain.RoleHR),
			h.listAllPending)
		leaves.POST("/:id/approve",
			middleware.RequireRoles(domain.RoleAdmin, domain.RoleHR),
			h.approve)
		leaves.POST("/:id/reject",
			middleware.RequireRoles(domain.RoleAdmin, domain.RoleHR),
			h.reject)
		leaves.GET("",
			middleware.RequireRoles(domain.RoleAdmin, domain.RoleHR),
			h.listAll)
	}
}

// apply godoc
// @Summary Apply for leave
// @Description Files a PENDING leave request for the caller and notifies HR
// @Tags leaves
// @Accept json
// @Produce json
// @Param leave body dto.ApplyLeaveRequest true "Leave details"
// @Success 201 {object} dto.LeaveResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /leaves [post]
func (h *leaveHandler) apply(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ApplyLeave", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	leave, err := h.leaveService.Apply(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to apply for leave")
		return
	}

	logger.Info("Leave request filed", slog.String("leave_id", leave.LeaveID))
	c.JSON(http.StatusCreated, dto.ToLeaveResponse(leave))
}

// approve godoc
// @Summary Approve a leave request
// @Description Marks the leave APPROVED, recording the approver and notes
// @Tags leaves
// @Accept json
// @Produce json
// @Param id path string true "Leave ID"
// @Param decision body dto.DecideLeaveRequest false "Approver notes"
// @Success 200 {object} dto.LeaveResponse
// @Failure 404 {object} map[string]string "Leave not found"
// @Security BearerAuth
// @Router /leaves/{id}/approve [post]
func (h *leaveHandler) approve(c *gin.Context) {
	h.decide(c, h.leaveService.Approve, "approve")
}

// reject godoc
// @Summary Reject a leave request
// @Description Marks the leave REJECTED, recording the approver and notes
// @Tags leaves
// @Accept json
// @Produce json
// @Param id path string true "Leave ID"
// @Param decision body dto.DecideLeaveRequest false "Approver notes"
// @Success 200 {object} dto.LeaveResponse
// @Failure 404 {object} map[string]string "Leave not found"
// @Security BearerAuth
// @Router /leaves/{id}/reject [post]
func (h *leaveHandler) reject(c *gin.Context) {
	h.decide(c, h.leaveService.Reject, "reject")
}

type decideFn func(ctx context.Context, leaveID, approverID, notes string) (*domain.LeaveRequest, error)

func (h *leaveHandler) decide(c *gin.Context, fn decideFn, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	approverID, ok := requireUserID(c)
	if !ok {
		return
	}
	leaveID := c.Param("id")

	var req dto.DecideLeaveRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for leave decision", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	leave, err := fn(c.Request.Context(), leaveID, approverID, req.Notes)
	if err != nil {
		respondServiceError(c, err, "Failed to "+action+" leave")
		return
	}

	logger.Info("Leave decision recorded",
		slog.String("leave_id", leave.LeaveID), slog.String("status", string(leave.Status)))
	c.JSON(http.StatusOK, dto.ToLeaveResponse(leave))
}

func (h *leaveHandler) listMine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	start, end, hasRange, ok := parseRangeQuery(c)
	if !ok {
		return
	}

	var (
		leaves []domain.LeaveRequest
		err    error
	)
	if hasRange {
		leaves, err = h.leaveService.ListForUserInRange(c.Request.Context(), userID, start, end)
	} else {
		leaves, err = h.leaveService.ListForUser(c.Request.Context(), userID)
	}
	if err != nil {
		respondServiceError(c, err, "Failed to list leaves")
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaves": dto.ToListLeaveResponse(leaves)})
}

func (h *leaveHandler) listMinePending(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	leaves, err := h.leaveService.ListPendingForUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list pending leaves")
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaves": dto.ToListLeaveResponse(leaves)})
}

func (h *leaveHandler) listAllPending(c *gin.Context) {
	leaves, err := h.leaveService.ListAllPending(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list pending leaves")
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaves": dto.ToListLeaveResponse(leaves)})
}

func (h *leaveHandler) listAll(c *gin.Context) {
	start, end, ok := requireRangeQuery(c)
	if !ok {
		return
	}

	leaves, err := h.leaveService.ListAllInRange(c.Request.Context(), start, end)
	if err != nil {
		respondServiceError(c, err, "Failed to list leaves")
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaves": dto.ToListLeaveResponse(leaves)})
}
