package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/phonehub/phonehub-api/internal/application/service"
	"github.com/phonehub/phonehub-api/internal/domain/enum"
	"github.com/phonehub/phonehub-api/internal/presentation/http/dto/request"
	"github.com/phonehub/phonehub-api/internal/presentation/http/dto/response"
	"github.com/phonehub/phonehub-api/pkg/pagination"
	"github.com/phonehub/phonehub-api/pkg/utils"
)

// AccessoryHandler handles accessory inventory HTTP requests
type AccessoryHandler struct {
	accessoryService *service.AccessoryService
	activityService  *service.ActivityService
}

// NewAccessoryHandler creates a new accessory handler
func NewAccessoryHandler(accessoryService *service.AccessoryService, activityService *service.ActivityService) *AccessoryHandler {
	return &AccessoryHandler{
		accessoryService: accessoryService,
		activityService:  activityService,
	}
}

// Create registers a new accessory line
// @Summary Register Accessory
// @Tags accessories
// @Accept json
// @Produce json
// @Param request body request.CreateAccessoryRequest true "Accessory data"
// @Success 201 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /accessories [post]
func (h *AccessoryHandler) Create(c *gin.Context) {
	var req request.CreateAccessoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	accessory, err := h.accessoryService.CreateAccessory(c.Request.Context(), &service.CreateAccessoryInput{
		RegisteredBy:  *userID,
		Name:          req.Name,
		Quantity:      req.Quantity,
		QuantityAlert: req.QuantityAlert,
		UnitPrice:     req.UnitPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.activityService.Record(c.Request.Context(), *userID, "accessory_registered", accessory.Name, c.ClientIP())

	response.Created(c, "Accessory registered", accessory)
}

// Get retrieves one accessory line
func (h *AccessoryHandler) Get(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid accessory ID")
		return
	}

	accessory, err := h.accessoryService.GetAccessory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Accessory retrieved", accessory)
}

// Update modifies an accessory line, restocking included
func (h *AccessoryHandler) Update(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid accessory ID")
		return
	}

	var req request.UpdateAccessoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateAccessoryInput{
		Name:          req.Name,
		Quantity:      req.Quantity,
		QuantityAlert: req.QuantityAlert,
		UnitPrice:     req.UnitPrice,
	}
	if req.Status != nil {
		status, ok := enum.ParseAccessoryStatus(*req.Status)
		if !ok {
			response.BadRequest(c, "Unknown accessory status")
			return
		}
		input.Status = &status
	}

	accessory, err := h.accessoryService.UpdateAccessory(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Accessory updated", accessory)
}

// Delete removes an accessory line
func (h *AccessoryHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid accessory ID")
		return
	}

	if err := h.accessoryService.DeleteAccessory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	if userID := GetUserID(c); userID != nil {
		h.activityService.Record(c.Request.Context(), *userID, "accessory_deleted", id.String(), c.ClientIP())
	}

	response.OK(c, "Accessory deleted", nil)
}

// List returns the caller's accessories; admins see every user's stock
func (h *AccessoryHandler) List(c *gin.Context) {
	var req request.AccessoryFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	input := &service.ListAccessoriesInput{
		Pagination:     &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Search:         req.Search,
		LowStock:       req.LowStock,
		SkipUserFilter: IsAdmin(c),
	}
	if req.Status != "" {
		status, ok := enum.ParseAccessoryStatus(req.Status)
		if !ok {
			response.BadRequest(c, "Unknown accessory status")
			return
		}
		input.Status = &status
	}

	accessories, p, err := h.accessoryService.ListAccessories(c.Request.Context(), *userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Accessories retrieved", pagination.NewPaginatedResult(accessories, p))
}

// LowStock lists accessory lines at or below their restock threshold
func (h *AccessoryHandler) LowStock(c *gin.Context) {
	var req request.AccessoryFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	input := &service.ListAccessoriesInput{
		Pagination:     &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Search:         req.Search,
		LowStock:       true,
		SkipUserFilter: IsAdmin(c),
	}

	accessories, p, err := h.accessoryService.ListAccessories(c.Request.Context(), *userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Low-stock accessories retrieved", pagination.NewPaginatedResult(accessories, p))
}
