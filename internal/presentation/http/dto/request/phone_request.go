package request

// CreatePhoneRequest represents a phone registration request
type CreatePhoneRequest struct {
	Brand        string  `json:"brand" binding:"required,min=2,max=255"`
	Model        string  `json:"model" binding:"required,min=1,max=255"`
	IMEI         string  `json:"imei" binding:"required,min=10,max=20"`
	BuyingPrice  float64 `json:"buying_price" binding:"min=0"`
	SellingPrice float64 `json:"selling_price" binding:"min=0"`
}

// UpdatePhoneRequest represents a phone update request
type UpdatePhoneRequest struct {
	Brand        *string  `json:"brand" binding:"omitempty,min=2,max=255"`
	Model        *string  `json:"model" binding:"omitempty,min=1,max=255"`
	BuyingPrice  *float64 `json:"buying_price" binding:"omitempty,min=0"`
	SellingPrice *float64 `json:"selling_price" binding:"omitempty,min=0"`
	Status       *string  `json:"status" binding:"omitempty,oneof=in_stock sold transferred unavailable"`
}

// PhoneFilterRequest represents phone filter parameters
type PhoneFilterRequest struct {
	Search  string `form:"search"`
	Brand   string `form:"brand"`
	Status  string `form:"status"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
