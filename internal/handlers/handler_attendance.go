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

// attendanceHandler handles HTTP requests for attendance tracking.
type attendanceHandler struct {
	attendanceService portssvc.AttendanceSvcFacade
}

func newAttendanceHandler(as portssvc.AttendanceSvcFacade) *attendanceHandler {
	return &attendanceHandler{attendanceService: as}
}

// registerAttendanceRoutes registers routes related to attendance.
func registerAttendanceRoutes(rg *gin.RouterGroup, attendanceService portssvc.AttendanceSvcFacade) {
	h := newAttendanceHandler(attendanceService)

	attendance := rg.Group("/attendance")
	{
		attendance.POST("/clock-in", h.clockIn)
		attendance.POST("/clock-out", h.clockOut)
		attendance.GET("/today", h.today)
		attendance.GET("/me", h.listMine)
		attendance.GET("/users/:id",
			middleware.RequireRoles(domain.RoleAdmin, domain.RoleManager, domain.RoleHR),
			h.listForUser)
		attendance.GET("",
			middleware.RequireRoles(domain.RoleAdmin, domain.RoleHR),
			h.listAll)
	}
}

// clockIn godoc
// @Summary Clock in for today
// @Description Records the start of today's shift for the caller
// @Tags attendance
// @Produce json
// @Success 201 {object} dto.AttendanceResponse
// @Failure 400 {object} map[string]string "Clock-out cooldown still running"
// @Failure 409 {object} map[string]string "Already clocked in today"
// @Security BearerAuth
// @Router /attendance/clock-in [post]
func (h *attendanceHandler) clockIn(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	record, err := h.attendanceService.ClockIn(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to clock in")
		return
	}

	logger.Info("Clock-in recorded", slog.String("attendance_id", record.AttendanceID))
	c.JSON(http.StatusCreated, dto.ToAttendanceResponse(record))
}

// clockOut godoc
// @Summary Clock out for today
// @Description Records the end of today's shift for the caller
// @Tags attendance
// @Produce json
// @Success 200 {object} dto.AttendanceResponse
// @Failure 400 {object} map[string]string "No clock-in recorded today"
// @Failure 409 {object} map[string]string "Already clocked out today"
// @Security BearerAuth
// @Router /attendance/clock-out [post]
func (h *attendanceHandler) clockOut(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	record, err := h.attendanceService.ClockOut(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to clock out")
		return
	}

	logger.Info("Clock-out recorded", slog.String("attendance_id", record.AttendanceID))
	c.JSON(http.StatusOK, dto.ToAttendanceResponse(record))
}

// today godoc
// @Summary Get today's attendance
// @Description Returns today's record for the caller, 404 when not clocked in yet
// @Tags attendance
// @Produce json
// @Success 200 {object} dto.AttendanceResponse
// @Failure 404 {object} map[string]string "No record for today"
// @Security BearerAuth
// @Router /attendance/today [get]
func (h *attendanceHandler) today(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	record, err := h.attendanceService.Today(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to load today's attendance")
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No attendance record for today"})
		return
	}
	c.JSON(http.StatusOK, dto.ToAttendanceResponse(record))
}

func (h *attendanceHandler) listMine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	h.listForUserID(c, userID)
}

func (h *attendanceHandler) listForUser(c *gin.Context) {
	h.listForUserID(c, c.Param("id"))
}

func (h *attendanceHandler) listForUserID(c *gin.Context, userID string) {
	start, end, hasRange, ok := parseRangeQuery(c)
	if !ok {
		return
	}

	var (
		records []domain.AttendanceRecord
		err     error
	)
	if hasRange {
		records, err = h.attendanceService.ListForUserInRange(c.Request.Context(), userID, start, end)
	} else {
		records, err = h.attendanceService.ListForUser(c.Request.Context(), userID)
	}
	if err != nil {
		respondServiceError(c, err, "Failed to list attendance")
		return
	}
	c.JSON(http.StatusOK, gin.H{"attendance": dto.ToListAttendanceResponse(records)})
}

func (h *attendanceHandler) listAll(c *gin.Context) {
	start, end, ok := requireRangeQuery(c)
	if !ok {
		return
	}

	records, err := h.attendanceService.ListAllInRange(c.Request.Context(), start, end)
	if err != nil {
		respondServiceError(c, err, "Failed to list attendance")
		return
	}
	c.JSON(http.StatusOK, gin.H{"attendance": dto.ToListAttendanceResponse(records)})
}
