package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/phonehub/phonehub-api/internal/domain/entity"
	"github.com/phonehub/phonehub-api/internal/domain/enum"
	domainRepo "github.com/phonehub/phonehub-api/internal/domain/repository"
	"gorm.io/gorm"
)

type phoneRepository struct {
	db *gorm.DB
}

// NewPhoneRepository creates a new phone repository
func NewPhoneRepository(db *gorm.DB) domainRepo.PhoneRepository {
	return &phoneRepository{db: db}
}

func (r *phoneRepository) Create(ctx context.Context, phone *entity.Phone) error {
	return r.db.WithContext(ctx).Create(phone).Error
}

func (r *phoneRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Phone, error) {
	var phone entity.Phone
	err := r.db.WithContext(ctx).First(&phone, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &phone, err
}

func (r *phoneRepository) GetByIMEI(ctx context.Context, imei string) (*entity.Phone, error) {
	var phone entity.Phone
	err := r.db.WithContext(ctx).First(&phone, "imei = ?", imei).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &phone, err
}

func (r *phoneRepository) Update(ctx context.Context, phone *entity.Phone) error {
	return r.db.WithContext(ctx).Save(phone).Error
}

// UpdateStatusIf flips the status only when the current status matches.
// Uses: UPDATE phones SET status = ? WHERE id = ? AND status = ?
func (r *phoneRepository) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to enum.PhoneStatus) (bool, error) {
	result := r.db.WithContext(ctx).Model(&entity.Phone{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)

	if result.Error != nil {
		return false, result.Error
	}

	// If no rows were affected, another writer got there first
	return result.RowsAffected > 0, nil
}

func (r *phoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Phone{}, "id = ?", id).Error
}

func (r *phoneRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.PhoneFilterParams) ([]entity.Phone, int64, error) {
	var phones []entity.Phone
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Phone{})
	if !params.SkipUserFilter && userID != uuid.Nil {
		query = query.Where("registered_by = ?", userID)
	}

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("brand ILIKE ? OR model ILIKE ? OR imei ILIKE ?", pattern, pattern, pattern)
	}

	if params.Brand != "" {
		query = query.Where("brand = ?", params.Brand)
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&phones).Error

	return phones, total, err
}
