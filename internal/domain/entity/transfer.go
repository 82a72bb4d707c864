package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/phonehub/phonehub-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Transfer represents stock moved out to another branch or outlet
type Transfer struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ReferenceNo   string         `gorm:"size:100;unique;not null" json:"reference_no"`
	ItemType      enum.ItemType  `gorm:"size:20;not null;index" json:"item_type"`
	ItemID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"item_id"`
	ItemName      string         `gorm:"size:255;not null" json:"item_name"`
	Quantity      int            `gorm:"not null;default:1" json:"quantity"`
	Destination   string         `gorm:"size:255;not null" json:"destination"`
	TransferredBy uuid.UUID      `gorm:"type:uuid;not null;index" json:"transferred_by"`
	TransferDate  time.Time      `gorm:"type:date;not null;index" json:"transfer_date"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Sender User `gorm:"foreignKey:TransferredBy" json:"-"`
}

// BeforeCreate generates a UUID before creating a new transfer
func (t *Transfer) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transfer model
func (Transfer) TableName() string {
	return "transfers"
}
