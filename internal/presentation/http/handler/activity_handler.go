package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/phonehub/phonehub-api/internal/application/service"
	"github.com/phonehub/phonehub-api/internal/presentation/http/dto/response"
	"github.com/phonehub/phonehub-api/pkg/pagination"
	"github.com/phonehub/phonehub-api/pkg/utils"
)

// ActivityHandler handles audit trail HTTP requests
type ActivityHandler struct {
	activityService *service.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// List returns audit entries. Staff see their own trail; admins may filter
// by any user or see everything.
func (h *ActivityHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	input := &service.ListActivityInput{
		Pagination: &params,
		Action:     c.Query("action"),
	}

	if IsAdmin(c) {
		if requested := c.Query("user_id"); requested != "" {
			id, err := utils.ParseUUID(requested)
			if err != nil {
				response.BadRequest(c, "Invalid user ID")
				return
			}
			input.UserID = &id
		}
	} else {
		input.UserID = userID
	}

	logs, p, err := h.activityService.List(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Activity retrieved", pagination.NewPaginatedResult(logs, p))
}
