package request

import "github.com/google/uuid"

// CreateTransferRequest represents a record transfer request
type CreateTransferRequest struct {
	ItemType     string    `json:"item_type" binding:"required,oneof=phone accessory"`
	ItemID       uuid.UUID `json:"item_id" binding:"required"`
	Quantity     int       `json:"quantity" binding:"omitempty,min=1"`
	Destination  string    `json:"destination" binding:"required,min=2,max=255"`
	TransferDate string    `json:"transfer_date" binding:"omitempty,datetime=2006-01-02"`
}

// TransferFilterRequest represents transfer filter parameters
type TransferFilterRequest struct {
	ItemType  string `form:"item_type"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
