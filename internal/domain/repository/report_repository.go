package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DailySalesRow is one day's aggregated sales for a user, keyed by the date
// string the query grouped on. Days with no sales produce no row; the report
// service zero-fills the calendar.
type DailySalesRow struct {
	SaleDate       string `gorm:"column:sale_date"` // YYYY-MM-DD
	SalesCount     int64  `gorm:"column:sales_count"`
	Revenue        int64  `gorm:"column:revenue"` // cents
	PhoneCount     int64  `gorm:"column:phone_count"`
	AccessoryCount int64  `gorm:"column:accessory_count"`
	AccessoryUnits int64  `gorm:"column:accessory_units"`
}

// TopItemRow is one item's sales performance within a period, already ranked
// by the query (sales count descending)
type TopItemRow struct {
	ItemID     uuid.UUID `gorm:"column:item_id"`
	ItemName   string    `gorm:"column:item_name"`
	SalesCount int64     `gorm:"column:sales_count"`
	UnitsSold  int64     `gorm:"column:units_sold"`
	Revenue    int64     `gorm:"column:revenue"` // cents
}

// PaymentRow aggregates sales by payment method within a period
type PaymentRow struct {
	Method       string `gorm:"column:payment_method"`
	Transactions int64  `gorm:"column:transactions"`
	TotalAmount  int64  `gorm:"column:total_amount"` // cents
}

// StatusCountRow counts inventory records registered in a period grouped by
// their live current status (not the status they had inside the period)
type StatusCountRow struct {
	Status int64 `gorm:"column:status"`
	Count  int64 `gorm:"column:count"`
	Units  int64 `gorm:"column:units"`
}

// TransferCountsRow counts transfer events within a period
type TransferCountsRow struct {
	PhoneTransfers     int64 `gorm:"column:phone_transfers"`
	AccessoryTransfers int64 `gorm:"column:accessory_transfers"`
	AccessoryUnits     int64 `gorm:"column:accessory_units"`
}

// ReportRepository defines the read-only aggregation queries behind the
// weekly/monthly reports. All queries are scoped to one user and an inclusive
// date range; any failure aborts the whole report.
type ReportRepository interface {
	// DailySales returns per-day sales aggregates for days that had sales
	DailySales(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]DailySalesRow, error)

	// TopPhones returns the user's best-selling phones in the period,
	// limited to the top N by sales count
	TopPhones(ctx context.Context, userID uuid.UUID, start, end time.Time, limit int) ([]TopItemRow, error)

	// TopAccessories returns the user's best-selling accessories in the
	// period, limited to the top N by sales count
	TopAccessories(ctx context.Context, userID uuid.UUID, start, end time.Time, limit int) ([]TopItemRow, error)

	// PaymentBreakdown groups the period's sales by payment method,
	// ordered by total amount descending
	PaymentBreakdown(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]PaymentRow, error)

	// PhoneStatusCounts groups phones registered in the period by live status
	PhoneStatusCounts(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]StatusCountRow, error)

	// AccessoryStatusCounts groups accessories registered in the period by
	// live status, with total units per status
	AccessoryStatusCounts(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]StatusCountRow, error)

	// TransferCounts counts transfer events made by the user in the period
	TransferCounts(ctx context.Context, userID uuid.UUID, start, end time.Time) (*TransferCountsRow, error)
}
