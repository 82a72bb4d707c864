package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/phonehub/phonehub-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Phone represents one handset unit in the inventory. Units are tracked
// individually by IMEI, unlike accessories which are tracked by quantity.
type Phone struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Brand        string           `gorm:"size:255;not null" json:"brand"`
	Model        string           `gorm:"size:255;not null" json:"model"`
	IMEI         string           `gorm:"size:100;unique;not null;column:imei" json:"imei"`
	BuyingPrice  int64            `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	SellingPrice int64            `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Status       enum.PhoneStatus `gorm:"default:0;index" json:"status"`
	RegisteredBy uuid.UUID        `gorm:"type:uuid;not null;index" json:"registered_by"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Registrar User `gorm:"foreignKey:RegisteredBy" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Phone) MarshalJSON() ([]byte, error) {
	type Alias Phone
	return json.Marshal(&struct {
		Alias
		BuyingPrice  float64 `json:"buying_price"`
		SellingPrice float64 `json:"selling_price"`
	}{
		Alias:        Alias(p),
		BuyingPrice:  float64(p.BuyingPrice) / 100,
		SellingPrice: float64(p.SellingPrice) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new phone record
func (p *Phone) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Phone model
func (Phone) TableName() string {
	return "phones"
}

// DisplayName returns the brand and model as a single label
func (p *Phone) DisplayName() string {
	return p.Brand + " " + p.Model
}

// SetSellingPriceFromDecimal sets the selling price from a decimal value
func (p *Phone) SetSellingPriceFromDecimal(price float64) {
	p.SellingPrice = int64(price * 100)
}

// SetBuyingPriceFromDecimal sets the buying price from a decimal value
func (p *Phone) SetBuyingPriceFromDecimal(price float64) {
	p.BuyingPrice = int64(price * 100)
}
