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

// PhoneHandler handles phone inventory HTTP requests
type PhoneHandler struct {
	phoneService    *service.PhoneService
	activityService *service.ActivityService
}

// NewPhoneHandler creates a new phone handler
func NewPhoneHandler(phoneService *service.PhoneService, activityService *service.ActivityService) *PhoneHandler {
	return &PhoneHandler{
		phoneService:    phoneService,
		activityService: activityService,
	}
}

// Create registers a new phone unit
// @Summary Register Phone
// @Tags phones
// @Accept json
// @Produce json
// @Param request body request.CreatePhoneRequest true "Phone data"
// @Success 201 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /phones [post]
func (h *PhoneHandler) Create(c *gin.Context) {
	var req request.CreatePhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	phone, err := h.phoneService.CreatePhone(c.Request.Context(), &service.CreatePhoneInput{
		RegisteredBy: *userID,
		Brand:        req.Brand,
		Model:        req.Model,
		IMEI:         req.IMEI,
		BuyingPrice:  req.BuyingPrice,
		SellingPrice: req.SellingPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.activityService.Record(c.Request.Context(), *userID, "phone_registered", phone.DisplayName(), c.ClientIP())

	response.Created(c, "Phone registered", phone)
}

// Get retrieves one phone
func (h *PhoneHandler) Get(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid phone ID")
		return
	}

	phone, err := h.phoneService.GetPhone(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Phone retrieved", phone)
}

// Update modifies a phone's details or status
func (h *PhoneHandler) Update(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid phone ID")
		return
	}

	var req request.UpdatePhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdatePhoneInput{
		Brand:        req.Brand,
		Model:        req.Model,
		BuyingPrice:  req.BuyingPrice,
		SellingPrice: req.SellingPrice,
	}
	if req.Status != nil {
		status, ok := enum.ParsePhoneStatus(*req.Status)
		if !ok {
			response.BadRequest(c, "Unknown phone status")
			return
		}
		input.Status = &status
	}

	phone, err := h.phoneService.UpdatePhone(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Phone updated", phone)
}

// Delete removes a phone record
func (h *PhoneHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid phone ID")
		return
	}

	if err := h.phoneService.DeletePhone(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	if userID := GetUserID(c); userID != nil {
		h.activityService.Record(c.Request.Context(), *userID, "phone_deleted", id.String(), c.ClientIP())
	}

	response.OK(c, "Phone deleted", nil)
}

// List returns the caller's phones; admins see every user's stock
func (h *PhoneHandler) List(c *gin.Context) {
	var req request.PhoneFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	input := &service.ListPhonesInput{
		Pagination:     &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Search:         req.Search,
		Brand:          req.Brand,
		SkipUserFilter: IsAdmin(c),
	}
	if req.Status != "" {
		status, ok := enum.ParsePhoneStatus(req.Status)
		if !ok {
			response.BadRequest(c, "Unknown phone status")
			return
		}
		input.Status = &status
	}

	phones, p, err := h.phoneService.ListPhones(c.Request.Context(), *userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Phones retrieved", pagination.NewPaginatedResult(phones, p))
}

// InStock lists handsets currently available for sale
func (h *PhoneHandler) InStock(c *gin.Context) {
	var req request.PhoneFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	status := enum.PhoneStatusInStock
	input := &service.ListPhonesInput{
		Pagination:     &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Search:         req.Search,
		Brand:          req.Brand,
		Status:         &status,
		SkipUserFilter: IsAdmin(c),
	}

	phones, p, err := h.phoneService.ListPhones(c.Request.Context(), *userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "In-stock phones retrieved", pagination.NewPaginatedResult(phones, p))
}
