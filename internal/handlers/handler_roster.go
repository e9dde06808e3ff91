package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/staffbridge/workforce_backend/internal/core/domain"
	portssvc "github.com/staffbridge/workforce_backend/internal/core/ports/services"
	"github.com/staffbridge/workforce_backend/internal/dto"
	"github.com/staffbridge/workforce_backend/internal/middleware"
)

// rosterHandler handles HTTP requests for shift rosters.
type rosterHandler struct {
	rosterService portssvc.RosterSvcFacade
}

func newRosterHandler(rs portssvc.RosterSvcFacade) *rosterHandler {
	return &rosterHandler{rosterService: rs}
}

// registerRosterRoutes registers routes related to the shift roster.
func registerRosterRoutes(rg *gin.RouterGroup, rosterService portssvc.RosterSvcFacade) {
	h := newRosterHandler(rosterService)

	planners := middleware.RequireRoles(domain.RoleAdmin, domain.RoleManager, domain.RoleHR)

	rosters := rg.Group("/rosters")
	{
		rosters.POST("", planners, h.upsert)
		rosters.DELETE("/:id", planners, h.delete)
		rosters.GET("/me", h.listMine)
		rosters.GET("/users/:id", planners, h.listForUser)
		rosters.GET("/date/:date", planners, h.listForDate)
		rosters.GET("", planners, h.listAll)
	}
}

// upsert godoc
// @Summary Plan or replan a shift
// @Description Creates the entry for (user, shift date) or updates it in place, preserving the original creator
// @Tags rosters
// @Accept json
// @Produce json
// @Param roster body dto.UpsertRosterRequest true "Shift details"
// @Success 200 {object} dto.RosterResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /rosters [post]
func (h *rosterHandler) upsert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	creatorID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpsertRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertRoster", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.rosterService.Upsert(c.Request.Context(), req, creatorID)
	if err != nil {
		respondServiceError(c, err, "Failed to upsert roster")
		return
	}

	logger.Info("Roster entry planned",
		slog.String("roster_id", entry.RosterID),
		slog.String("user_id", entry.UserID),
		slog.String("shift_date", dto.FormatDateOnly(entry.ShiftDate)))
	c.JSON(http.StatusOK, dto.ToRosterResponse(entry))
}

// delete godoc
// @Summary Delete a roster entry
// @Tags rosters
// @Produce json
// @Param id path string true "Roster ID"
// @Success 204
// @Failure 404 {object} map[string]string "Roster not found"
// @Security BearerAuth
// @Router /rosters/{id} [delete]
func (h *rosterHandler) delete(c *gin.Context) {
	rosterID := c.Param("id")
	if err := h.rosterService.Delete(c.Request.Context(), rosterID); err != nil {
		respondServiceError(c, err, "Failed to delete roster")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Roster entry deleted",
		slog.String("roster_id", rosterID))
	c.Status(http.StatusNoContent)
}

func (h *rosterHandler) listMine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	h.listForUserID(c, userID)
}

func (h *rosterHandler) listForUser(c *gin.Context) {
	h.listForUserID(c, c.Param("id"))
}

func (h *rosterHandler) listForUserID(c *gin.Context, userID string) {
	start, end, hasRange, ok := parseRangeQuery(c)
	if !ok {
		return
	}

	var (
		entries []domain.RosterEntry
		err     error
	)
	if hasRange {
		entries, err = h.rosterService.ListForUserInRange(c.Request.Context(), userID, start, end)
	} else {
		entries, err = h.rosterService.ListForUser(c.Request.Context(), userID)
	}
	if err != nil {
		respondServiceError(c, err, "Failed to list roster")
		return
	}
	c.JSON(http.StatusOK, gin.H{"rosters": dto.ToListRosterResponse(entries)})
}

func (h *rosterHandler) listForDate(c *gin.Context) {
	date, err := dto.ParseDateOnly(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := h.rosterService.ListForDate(c.Request.Context(), date)
	if err != nil {
		respondServiceError(c, err, "Failed to list roster")
		return
	}
	c.JSON(http.StatusOK, gin.H{"rosters": dto.ToListRosterResponse(entries)})
}

func (h *rosterHandler) listAll(c *gin.Context) {
	start, end, ok := requireRangeQuery(c)
	if !ok {
		return
	}

	entries, err := h.rosterService.ListAllInRange(c.Request.Context(), start, end)
	if err != nil {
		respondServiceError(c, err, "Failed to list roster")
		return
	}
	c.JSON(http.StatusOK, gin.H{"rosters": dto.ToListRosterResponse(entries)})
}
