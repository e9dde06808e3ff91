package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/staffbridge/workforce_backend/internal/apperrors"
	"github.com/staffbridge/workforce_backend/internal/dto"
	"github.com/staffbridge/workforce_backend/internal/middleware"
)

// respondServiceError maps service errors onto HTTP statuses. Unknown errors
// become a generic 500 so internals never leak to clients.
func respondServiceError(c *gin.Context, err error, fallbackMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflicting request", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidState), errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Invalid request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden request", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}

// requireUserID pulls the authenticated caller from the context, aborting with
// 401 when absent.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// parseRangeQuery reads optional start/end date query params. Returns
// hasRange=false when neither is present; aborts with 400 when only one is
// given or a date fails to parse.
func parseRangeQuery(c *gin.Context) (start, end time.Time, hasRange, ok bool) {
	startStr := c.Query("start")
	endStr := c.Query("end")
	if startStr == "" && endStr == "" {
		return time.Time{}, time.Time{}, false, true
	}
	if startStr == "" || endStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both start and end query parameters are required"})
		return time.Time{}, time.Time{}, false, false
	}
	start, err := dto.ParseDateOnly(startStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return time.Time{}, time.Time{}, false, false
	}
	end, err = dto.ParseDateOnly(endStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return time.Time{}, time.Time{}, false, false
	}
	return start, end, true, true
}

// requireRangeQuery is parseRangeQuery for routes where the range is mandatory.
func requireRangeQuery(c *gin.Context) (start, end time.Time, ok bool) {
	start, end, hasRange, ok := parseRangeQuery(c)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	if !hasRange {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end query parameters are required"})
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// parseYearMonthParams reads :year and :month path params.
func parseYearMonthParams(c *gin.Context) (year, month int, ok bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return 0, 0, false
	}
	month, err = strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
		return 0, 0, false
	}
	return year, month, true
}
