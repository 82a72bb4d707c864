package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/phonehub/phonehub-api/internal/domain/entity"
	domainRepo "github.com/phonehub/phonehub-api/internal/domain/repository"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{})
	if !params.SkipUserFilter && userID != uuid.Nil {
		query = query.Where("sold_by = ?", userID)
	}

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("receipt_no ILIKE ? OR item_name ILIKE ?", pattern, pattern)
	}

	if params.ItemType != nil {
		query = query.Where("item_type = ?", *params.ItemType)
	}

	if params.PaymentMethod != "" {
		query = query.Where("payment_method = ?", params.PaymentMethod)
	}

	if params.StartDate != nil {
		query = query.Where("sale_date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("sale_date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("sale_date DESC, created_at DESC").
		Find(&sales).Error

	return sales, total, err
}

type transferRepository struct {
	db *gorm.DB
}

// NewTransferRepository creates a new transfer repository
func NewTransferRepository(db *gorm.DB) domainRepo.TransferRepository {
	return &transferRepository{db: db}
}

func (r *transferRepository) Create(ctx context.Context, transfer *entity.Transfer) error {
	return r.db.WithContext(ctx).Create(transfer).Error
}

func (r *transferRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.TransferFilterParams) ([]entity.Transfer, int64, error) {
	var transfers []entity.Transfer
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Transfer{})
	if !params.SkipUserFilter && userID != uuid.Nil {
		query = query.Where("transferred_by = ?", userID)
	}

	if params.ItemType != nil {
		query = query.Where("item_type = ?", *params.ItemType)
	}

	if params.StartDate != nil {
		query = query.Where("transfer_date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("transfer_date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("transfer_date DESC, created_at DESC").
		Find(&transfers).Error

	return transfers, total, err
}
