package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/staffbridge/workforce_backend/internal/core/ports/services"
	"github.com/staffbridge/workforce_backend/internal/dto"
	"github.com/staffbridge/workforce_backend/internal/middleware"
)

// notificationHandler handles HTTP requests for in-app notifications.
type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

func newNotificationHandler(ns portssvc.NotificationSvcFacade) *notificationHandler {
	return &notificationHandler{notificationService: ns}
}

// registerNotificationRoutes registers routes related to notifications.
func registerNotificationRoutes(rg *gin.RouterGroup, notificationService portssvc.NotificationSvcFacade) {
	h := newNotificationHandler(notificationService)

	notifications := rg.Group("/notifications")
	{
		notifications.POST("", h.send)
		notifications.GET("/me", h.listMine)
		notifications.GET("/unread", h.listUnread)
		notifications.POST("/:id/read", h.markRead)
		notifications.GET("/recipients", h.allowedRecipients)
	}
}

// send godoc
// @Summary Send a notification
// @Description Delivers a user-to-user message, enforcing the role message-flow policy
// @Tags notifications
// @Accept json
// @Produce json
// @Param notification body dto.SendNotificationRequest true "Notification details"
// @Success 201 {object} dto.NotificationResponse
// @Failure 403 {object} map[string]string "Sender role may not message recipient role"
// @Security BearerAuth
// @Router /notifications [post]
func (h *notificationHandler) send(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	senderID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SendNotification", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	notification, err := h.notificationService.Send(c.Request.Context(), senderID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to send notification")
		return
	}

	logger.Info("Notification sent", slog.String("notification_id", notification.NotificationID))
	c.JSON(http.StatusCreated, dto.ToNotificationResponse(notification))
}

func (h *notificationHandler) listMine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	notifications, err := h.notificationService.ListForRecipient(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list notifications")
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": dto.ToListNotificationResponse(notifications)})
}

func (h *notificationHandler) listUnread(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	notifications, err := h.notificationService.ListUnreadForRecipient(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list unread notifications")
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": dto.ToListNotificationResponse(notifications)})
}

// markRead godoc
// @Summary Mark a notification read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} dto.NotificationResponse
// @Failure 404 {object} map[string]string "Notification not found"
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func (h *notificationHandler) markRead(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	notification, err := h.notificationService.MarkRead(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to mark notification read")
		return
	}
	c.JSON(http.StatusOK, dto.ToNotificationResponse(notification))
}

func (h *notificationHandler) allowedRecipients(c *gin.Context) {
	senderID, ok := requireUserID(c)
	if !ok {
		return
	}

	recipients, err := h.notificationService.AllowedRecipients(c.Request.Context(), senderID)
	if err != nil {
		respondServiceError(c, err, "Failed to list allowed recipients")
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipients": dto.ToListUserResponse(recipients)})
}
