package request

// CreateAccessoryRequest represents an accessory registration request
type CreateAccessoryRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=255"`
	Quantity      int     `json:"quantity" binding:"min=0"`
	QuantityAlert int     `json:"quantity_alert" binding:"min=0"`
	UnitPrice     float64 `json:"unit_price" binding:"min=0"`
}

// UpdateAccessoryRequest represents an accessory update request
type UpdateAccessoryRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Quantity      *int     `json:"quantity" binding:"omitempty,min=0"`
	QuantityAlert *int     `json:"quantity_alert" binding:"omitempty,min=0"`
	UnitPrice     *float64 `json:"unit_price" binding:"omitempty,min=0"`
	Status        *string  `json:"status" binding:"omitempty,oneof=in_stock out_of_stock unavailable"`
}

// AccessoryFilterRequest represents accessory filter parameters
type AccessoryFilterRequest struct {
	Search   string `form:"search"`
	Status   string `form:"status"`
	LowStock bool   `form:"low_stock"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}
