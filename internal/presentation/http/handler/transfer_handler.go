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
)

// TransferHandler handles stock transfer HTTP requests
type TransferHandler struct {
	transferService *service.TransferService
	activityService *service.ActivityService
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(transferService *service.TransferService, activityService *service.ActivityService) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
		activityService: activityService,
	}
}

// Create records a stock transfer
// @Summary Record Transfer
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body request.CreateTransferRequest true "Transfer data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /transfers [post]
func (h *TransferHandler) Create(c *gin.Context) {
	var req request.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	transferDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.TransferDate != "" {
		parsed, err := time.ParseInLocation(period.DateLayout, req.TransferDate, time.UTC)
		if err != nil {
			response.BadRequest(c, "Invalid transfer date")
			return
		}
		transferDate = parsed
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	transfer, err := h.transferService.CreateTransfer(c.Request.Context(), &service.CreateTransferInput{
		TransferredBy: *userID,
		ItemType:      enum.ItemType(req.ItemType),
		ItemID:        req.ItemID,
		Quantity:      quantity,
		Destination:   req.Destination,
		TransferDate:  transferDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.activityService.Record(c.Request.Context(), *userID, "transfer_recorded", transfer.ReferenceNo, c.ClientIP())

	response.Created(c, "Transfer recorded", transfer)
}

// List returns the caller's transfers; admins see every user's transfers
func (h *TransferHandler) List(c *gin.Context) {
	var req request.TransferFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	input := &service.ListTransfersInput{
		Pagination:     &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
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

	transfers, p, err := h.transferService.ListTransfers(c.Request.Context(), *userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Transfers retrieved", pagination.NewPaginatedResult(transfers, p))
}
