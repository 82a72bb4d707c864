package request

import "github.com/google/uuid"

// CreateSaleRequest represents a record sale request
type CreateSaleRequest struct {
	ItemType      string    `json:"item_type" binding:"required,oneof=phone accessory"`
	ItemID        uuid.UUID `json:"item_id" binding:"required"`
	SaleDate      string    `json:"sale_date" binding:"omitempty,datetime=2006-01-02"`
	SalePrice     float64   `json:"sale_price" binding:"required,gt=0"`
	Quantity      int       `json:"quantity" binding:"omitempty,min=1"`
	PaymentMethod string    `json:"payment_method" binding:"required,oneof=cash card mobile_money bank_transfer"`
}

// SaleFilterRequest represents sale filter parameters
type SaleFilterRequest struct {
	Search        string `form:"search"`
	ItemType      string `form:"item_type"`
	PaymentMethod string `form:"payment_method"`
	StartDate     string `form:"start_date"`
	EndDate       string `form:"end_date"`
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
}
