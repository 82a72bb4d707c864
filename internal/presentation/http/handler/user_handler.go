package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/phonehub/phonehub-api/internal/application/service"
	"github.com/phonehub/phonehub-api/internal/presentation/http/dto/response"
	"github.com/phonehub/phonehub-api/pkg/pagination"
	"github.com/phonehub/phonehub-api/pkg/utils"
)

// UserHandler handles user administration HTTP requests
type UserHandler struct {
	userService     *service.UserService
	activityService *service.ActivityService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService, activityService *service.ActivityService) *UserHandler {
	return &UserHandler{
		userService:     userService,
		activityService: activityService,
	}
}

// Me returns the authenticated user's profile
func (h *UserHandler) Me(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile retrieved", gin.H{
		"id":         user.ID,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"username":   user.Username,
		"email":      user.Email,
		"roles":      user.RoleNames(),
		"created_at": user.CreatedAt,
	})
}

// List returns all accounts, admin only
func (h *UserHandler) List(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	users, p, err := h.userService.ListUsers(c.Request.Context(), &params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Users retrieved", pagination.NewPaginatedResult(users, p))
}

// Get retrieves one user, admin only
func (h *UserHandler) Get(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User retrieved", user)
}

// Promote grants the admin role, admin only
func (h *UserHandler) Promote(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.userService.PromoteToAdmin(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	if actor := GetUserID(c); actor != nil {
		h.activityService.Record(c.Request.Context(), *actor, "user_promoted", id.String(), c.ClientIP())
	}

	response.OK(c, "User promoted to admin", nil)
}

// Delete removes an account, admin only
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	if actor := GetUserID(c); actor != nil && *actor == id {
		response.BadRequest(c, "You cannot delete your own account")
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	if actor := GetUserID(c); actor != nil {
		h.activityService.Record(c.Request.Context(), *actor, "user_deleted", id.String(), c.ClientIP())
	}

	response.OK(c, "User deleted", nil)
}
