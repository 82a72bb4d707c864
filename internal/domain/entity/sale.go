package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/phonehub/phonehub-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Sale represents one recorded sale. Sales are immutable once written; stock
// corrections go through the inventory endpoints, never by editing a sale.
type Sale struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptNo     string         `gorm:"size:100;unique;not null" json:"receipt_no"`
	ItemType      enum.ItemType  `gorm:"size:20;not null;index" json:"item_type"`
	ItemID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"item_id"`
	ItemName      string         `gorm:"size:255;not null" json:"item_name"` // snapshot at sale time
	SoldBy        uuid.UUID      `gorm:"type:uuid;not null;index" json:"sold_by"`
	SaleDate      time.Time      `gorm:"type:date;not null;index" json:"sale_date"`
	SalePrice     int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Quantity      int            `gorm:"not null;default:1" json:"quantity"`
	PaymentMethod string         `gorm:"size:50;not null" json:"payment_method"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Seller User `gorm:"foreignKey:SoldBy" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		SalePrice float64 `json:"sale_price"`
	}{
		Alias:     Alias(s),
		SalePrice: float64(s.SalePrice) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}
