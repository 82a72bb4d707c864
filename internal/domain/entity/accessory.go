package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/phonehub/phonehub-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Accessory represents a quantity-tracked accessory line (cases, chargers,
// earphones and the like)
type Accessory struct {
	ID            uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Name          string               `gorm:"size:255;not null" json:"name"`
	Slug          string               `gorm:"size:255;unique;not null" json:"slug"`
	Quantity      int                  `gorm:"default:0" json:"quantity"`
	QuantityAlert int                  `gorm:"default:0" json:"quantity_alert"`
	UnitPrice     int64                `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Status        enum.AccessoryStatus `gorm:"default:0;index" json:"status"`
	RegisteredBy  uuid.UUID            `gorm:"type:uuid;not null;index" json:"registered_by"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
	DeletedAt     gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	Registrar User `gorm:"foreignKey:RegisteredBy" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (a Accessory) MarshalJSON() ([]byte, error) {
	type Alias Accessory
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
	}{
		Alias:     Alias(a),
		UnitPrice: float64(a.UnitPrice) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new accessory record
func (a *Accessory) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Accessory model
func (Accessory) TableName() string {
	return "accessories"
}

// SetUnitPriceFromDecimal sets the unit price from a decimal value
func (a *Accessory) SetUnitPriceFromDecimal(price float64) {
	a.UnitPrice = int64(price * 100)
}

// IsLowStock reports whether the quantity has fallen to the alert threshold
func (a *Accessory) IsLowStock() bool {
	return a.Quantity <= a.QuantityAlert
}
