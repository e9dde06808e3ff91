package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/staffbridge/workforce_backend/internal/core/domain"
	portssvc "github.com/staffbridge/workforce_backend/internal/core/ports/services"
	"github.com/staffbridge/workforce_backend/internal/dto"
	"github.com/staffbridge/workforce_backend/internal/middleware"
	"github.com/staffbridge/workforce_backend/internal/utils/report"
)

// salaryHandler handles HTTP requests for salary reconciliation.
type salaryHandler struct {
	salaryService portssvc.SalarySvcFacade
}

func newSalaryHandler(ss portssvc.SalarySvcFacade) *salaryHandler {
	return &salaryHandler{salaryService: ss}
}

// registerSalaryRoutes registers routes related to salary records.
func registerSalaryRoutes(rg *gin.RouterGroup, salaryService portssvc.SalarySvcFacade) {
	h := newSalaryHandler(salaryService)

	hrOrAdmin := middleware.RequireRoles(domain.RoleAdmin, domain.RoleHR)

	salaries := rg.Group("/salaries")
	{
		salaries.POST("/calculate", hrOrAdmin, h.calculate)
		salaries.PUT("/:id", hrOrAdmin, h.update)
		salaries.GET("/users/:id", h.listForUser)
		salaries.GET("/users/:id/year/:year", h.listForUserYear)
		salaries.GET("/users/:id/:year/:month", h.getForMonth)
		salaries.GET("/month/:year/:month", hrOrAdmin, h.listAllForMonth)
		salaries.GET("/month/:year/:month/export", hrOrAdmin, h.exportMonth)
	}
}

// calculate godoc
// @Summary Reconcile a user's monthly salary
// @Description Derives present/absent/leave day counts and money breakdown for (user, year, month). Create-once: repeats conflict.
// @Tags salaries
// @Accept json
// @Produce json
// @Param request body dto.CalculateSalaryRequest true "Reconciliation inputs"
// @Success 201 {object} dto.SalaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Salary already reconciled for this month"
// @Security BearerAuth
// @Router /salaries/calculate [post]
func (h *salaryHandler) calculate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	creatorID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CalculateSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CalculateSalary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.salaryService.Calculate(c.Request.Context(), req, creatorID)
	if err != nil {
		respondServiceError(c, err, "Failed to calculate salary")
		return
	}

	logger.Info("Salary reconciled",
		slog.String("salary_id", record.SalaryID),
		slog.String("user_id", record.UserID),
		slog.Int("year", record.Year),
		slog.Int("month", record.Month))
	c.JSON(http.StatusCreated, dto.ToSalaryResponse(record))
}

// update godoc
// @Summary Correct a salary record
// @Description Overrides net salary and notes on an existing record; derived fields stay untouched
// @Tags salaries
// @Accept json
// @Produce json
// @Param id path string true "Salary ID"
// @Param request body dto.UpdateSalaryRequest true "Correction"
// @Success 200 {object} dto.SalaryResponse
// @Failure 404 {object} map[string]string "Salary not found"
// @Security BearerAuth
// @Router /salaries/{id} [put]
func (h *salaryHandler) update(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	updaterID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSalary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.salaryService.Update(c.Request.Context(), c.Param("id"), req, updaterID)
	if err != nil {
		respondServiceError(c, err, "Failed to update salary")
		return
	}

	logger.Info("Salary corrected", slog.String("salary_id", record.SalaryID))
	c.JSON(http.StatusOK, dto.ToSalaryResponse(record))
}

// canViewUserSalary allows a caller to read their own records; other users'
// records need HR or ADMIN.
func canViewUserSalary(c *gin.Context, targetUserID string) bool {
	callerID, ok := requireUserID(c)
	if !ok {
		return false
	}
	if callerID == targetUserID {
		return true
	}
	role, _ := middleware.GetUserRoleFromContext(c)
	if role == domain.RoleAdmin || role == domain.RoleHR {
		return true
	}
	c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	return false
}

func (h *salaryHandler) listForUser(c *gin.Context) {
	userID := c.Param("id")
	if !canViewUserSalary(c, userID) {
		return
	}

	records, err := h.salaryService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list salaries")
		return
	}
	c.JSON(http.StatusOK, gin.H{"salaries": dto.ToListSalaryResponse(records)})
}

func (h *salaryHandler) listForUserYear(c *gin.Context) {
	userID := c.Param("id")
	if !canViewUserSalary(c, userID) {
		return
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}

	records, err := h.salaryService.ListForUserYear(c.Request.Context(), userID, year)
	if err != nil {
		respondServiceError(c, err, "Failed to list salaries")
		return
	}
	c.JSON(http.StatusOK, gin.H{"salaries": dto.ToListSalaryResponse(records)})
}

func (h *salaryHandler) getForMonth(c *gin.Context) {
	userID := c.Param("id")
	if !canViewUserSalary(c, userID) {
		return
	}
	year, month, ok := parseYearMonthParams(c)
	if !ok {
		return
	}

	record, err := h.salaryService.GetForMonth(c.Request.Context(), userID, year, month)
	if err != nil {
		respondServiceError(c, err, "Failed to load salary")
		return
	}
	c.JSON(http.StatusOK, dto.ToSalaryResponse(record))
}

func (h *salaryHandler) listAllForMonth(c *gin.Context) {
	year, month, ok := parseYearMonthParams(c)
	if !ok {
		return
	}

	records, err := h.salaryService.ListAllForMonth(c.Request.Context(), year, month)
	if err != nil {
		respondServiceError(c, err, "Failed to list salaries")
		return
	}
	c.JSON(http.StatusOK, gin.H{"salaries": dto.ToListSalaryResponse(records)})
}

// exportMonth godoc
// @Summary Export a month's payroll as xlsx
// @Description Streams the reconciled salary records for (year, month) as a spreadsheet
// @Tags salaries
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /salaries/month/{year}/{month}/export [get]
func (h *salaryHandler) exportMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, month, ok := parseYearMonthParams(c)
	if !ok {
		return
	}

	records, err := h.salaryService.ListAllForMonth(c.Request.Context(), year, month)
	if err != nil {
		respondServiceError(c, err, "Failed to load salaries for export")
		return
	}

	workbook, err := report.BuildMonthlyPayrollWorkbook(records, year, month)
	if err != nil {
		logger.Error("Failed to build payroll workbook", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build payroll export"})
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("payroll-%d-%02d.xlsx", year, month)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := workbook.Write(c.Writer); err != nil {
		logger.Error("Failed to stream payroll workbook", slog.String("error", err.Error()))
	}
}
