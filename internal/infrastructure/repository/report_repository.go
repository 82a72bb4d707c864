package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	domainRepo "github.com/phonehub/phonehub-api/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) DailySales(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domainRepo.DailySalesRow, error) {
	var rows []domainRepo.DailySalesRow

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			to_char(sale_date, 'YYYY-MM-DD') as sale_date,
			COUNT(*) as sales_count,
			COALESCE(SUM(sale_price), 0) as revenue,
			COUNT(*) FILTER (WHERE item_type = 'phone') as phone_count,
			COUNT(*) FILTER (WHERE item_type = 'accessory') as accessory_count,
			COALESCE(SUM(quantity) FILTER (WHERE item_type = 'accessory'), 0) as accessory_units
		FROM sales
		WHERE sold_by = ?
		AND sale_date BETWEEN ? AND ?
		AND deleted_at IS NULL
		GROUP BY sale_date
		ORDER BY sale_date
	`, userID, start, end).Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *reportRepository) TopPhones(ctx context.Context, userID uuid.UUID, start, end time.Time, limit int) ([]domainRepo.TopItemRow, error) {
	var rows []domainRepo.TopItemRow

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			item_id,
			item_name,
			COUNT(*) as sales_count,
			COALESCE(SUM(quantity), 0) as units_sold,
			COALESCE(SUM(sale_price), 0) as revenue
		FROM sales
		WHERE sold_by = ?
		AND item_type = 'phone'
		AND sale_date BETWEEN ? AND ?
		AND deleted_at IS NULL
		GROUP BY item_id, item_name
		ORDER BY sales_count DESC
		LIMIT ?
	`, userID, start, end, limit).Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *reportRepository) TopAccessories(ctx context.Context, userID uuid.UUID, start, end time.Time, limit int) ([]domainRepo.TopItemRow, error) {
	var rows []domainRepo.TopItemRow

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			item_id,
			item_name,
			COUNT(*) as sales_count,
			COALESCE(SUM(quantity), 0) as units_sold,
			COALESCE(SUM(sale_price), 0) as revenue
		FROM sales
		WHERE sold_by = ?
		AND item_type = 'accessory'
		AND sale_date BETWEEN ? AND ?
		AND deleted_at IS NULL
		GROUP BY item_id, item_name
		ORDER BY sales_count DESC
		LIMIT ?
	`, userID, start, end, limit).Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *reportRepository) PaymentBreakdown(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domainRepo.PaymentRow, error) {
	var rows []domainRepo.PaymentRow

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			payment_method,
			COUNT(*) as transactions,
			COALESCE(SUM(sale_price), 0) as total_amount
		FROM sales
		WHERE sold_by = ?
		AND sale_date BETWEEN ? AND ?
		AND deleted_at IS NULL
		GROUP BY payment_method
		ORDER BY total_amount DESC
	`, userID, start, end).Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	return rows, nil
}

// PhoneStatusCounts groups by the row's current status column, so a phone
// registered this month and sold next month counts as sold here.
func (r *reportRepository) PhoneStatusCounts(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domainRepo.StatusCountRow, error) {
	var rows []domainRepo.StatusCountRow

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*) as count,
			COUNT(*) as units
		FROM phones
		WHERE registered_by = ?
		AND created_at >= ? AND created_at < ?
		AND deleted_at IS NULL
		GROUP BY status
	`, userID, start, end.AddDate(0, 0, 1)).Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *reportRepository) AccessoryStatusCounts(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domainRepo.StatusCountRow, error) {
	var rows []domainRepo.StatusCountRow

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*) as count,
			COALESCE(SUM(quantity), 0) as units
		FROM accessories
		WHERE registered_by = ?
		AND created_at >= ? AND created_at < ?
		AND deleted_at IS NULL
		GROUP BY status
	`, userID, start, end.AddDate(0, 0, 1)).Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *reportRepository) TransferCounts(ctx context.Context, userID uuid.UUID, start, end time.Time) (*domainRepo.TransferCountsRow, error) {
	var row domainRepo.TransferCountsRow

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE item_type = 'phone') as phone_transfers,
			COUNT(*) FILTER (WHERE item_type = 'accessory') as accessory_transfers,
			COALESCE(SUM(quantity) FILTER (WHERE item_type = 'accessory'), 0) as accessory_units
		FROM transfers
		WHERE transferred_by = ?
		AND transfer_date BETWEEN ? AND ?
		AND deleted_at IS NULL
	`, userID, start, end).Scan(&row).Error

	if err != nil {
		return nil, err
	}

	return &row, nil
}
