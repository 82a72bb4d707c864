package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/phonehub/phonehub-api/internal/application/service"
	"github.com/phonehub/phonehub-api/internal/domain/enum"
	"github.com/phonehub/phonehub-api/internal/presentation/http/dto/request"
	"github.com/phonehub/phonehub-api/internal/presentation/http/dto/response"
	"github.com/phonehub/phonehub-api/pkg/pagination"
	"github.com/phonehub/phonehub-api/pkg/period"
	"github.com/phonehub/phonehub-api/pkg/utils"
)

// SaleHandler handles sale HTTP requests
type SaleHandler struct {
	saleService     *service.SaleService
	activityService *service.ActivityService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService, activityService *service.ActivityService) *SaleHandler {
	return &SaleHandler{
		saleService:     saleService,
		activityService: activityService,
	}
}

// Create records a sale
// @Summary Record Sale
// @Tags sales
// @Accept json
// @Produce json
// @Param request body request.CreateSaleRequest true "Sale data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /sales [post]
func (h *SaleHandler) Create(c *gin.Context) {
	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	saleDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.SaleDate != "" {
		parsed, err := time.ParseInLocation(period.DateLayout, req.SaleDate, time.UTC)
		if err != nil {
			response.BadRequest(c, "Invalid sale date")
			return
		}
		saleDate = parsed
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), &service.CreateSaleInput{
		SoldBy:        *userID,
		ItemType:      enum.ItemType(req.ItemType),
		ItemID:        req.ItemID,
		SaleDate:      saleDate,
		SalePrice:     req.SalePrice,
		Quantity:      quantity,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.activityService.Record(c.Request.Context(), *userID, "sale_recorded", sale.ReceiptNo, c.ClientIP())

	response.Created(c, "Sale recorded", sale)
}

// Get retrieves one sale
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved", sale)
}

// List returns the caller's sales; admins see every user's sales
func (h *SaleHandler) List(c *gin.Context) {
	var req request.SaleFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	input := &service.ListSalesInput{
		Pagination:     &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Search:         req.Search,
		PaymentMethod:  req.PaymentMethod,
		SkipUserFilter: IsAdmin(c),
	}
	if req.ItemType != "" {
		itemType := enum.ItemType(req.ItemType)
		if !itemType.Valid() {
			response.BadRequest(c, "Unknown item type")
			return
		}
		input.ItemType = &itemType
	}
	if req.StartDate != "" {
		start, err := time.ParseInLocation(period.DateLayout, req.StartDate, time.UTC)
		if err != nil {
			response.BadRequest(c, "Invalid start date")
			return
		}
		input.StartDate = &start
	}
	if req.EndDate != "" {
		end, err := time.ParseInLocation(period.DateLayout, req.EndDate, time.UTC)
		if err != nil {
			response.BadRequest(c, "Invalid end date")
			return
		}
		input.EndDate = &end
	}

	sales, p, err := h.saleService.ListSales(c.Request.Context(), *userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved", pagination.NewPaginatedResult(sales, p))
}
