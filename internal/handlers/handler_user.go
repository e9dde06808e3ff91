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

// userHandler handles HTTP requests for identity lookup.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers routes related to users.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("/me", h.me)
		users.GET("/:id",
			middleware.RequireRoles(domain.RoleAdmin, domain.RoleManager, domain.RoleHR),
			h.getByID)
		users.GET("",
			middleware.RequireRoles(domain.RoleAdmin, domain.RoleHR),
			h.listActive)
		users.POST("/:id/deactivate",
			middleware.RequireRoles(domain.RoleAdmin),
			h.deactivate)
	}
}

func (h *userHandler) me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to load user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *userHandler) getByID(c *gin.Context) {
	user, err := h.userService.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to load user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *userHandler) listActive(c *gin.Context) {
	role := c.Query("role")
	var (
		users []domain.User
		err   error
	)
	if role != "" {
		users, err = h.userService.ListUsersByRoleAndActive(c.Request.Context(), domain.Role(role), true)
	} else {
		users, err = h.userService.ListActiveUsers(c.Request.Context())
	}
	if err != nil {
		respondServiceError(c, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": dto.ToListUserResponse(users)})
}

// deactivate godoc
// @Summary Deactivate a user
// @Description Clears the user's active flag and notifies them best-effort
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 204
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /users/{id}/deactivate [post]
func (h *userHandler) deactivate(c *gin.Context) {
	actorID, ok := requireUserID(c)
	if !ok {
		return
	}
	targetID := c.Param("id")

	if err := h.userService.Deactivate(c.Request.Context(), targetID, actorID); err != nil {
		respondServiceError(c, err, "Failed to deactivate user")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User deactivated",
		slog.String("target_user_id", targetID))
	c.Status(http.StatusNoContent)
}
