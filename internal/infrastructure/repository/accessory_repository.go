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

type accessoryRepository struct {
	db *gorm.DB
}

// NewAccessoryRepository creates a new accessory repository
func NewAccessoryRepository(db *gorm.DB) domainRepo.AccessoryRepository {
	return &accessoryRepository{db: db}
}

func (r *accessoryRepository) Create(ctx context.Context, accessory *entity.Accessory) error {
	return r.db.WithContext(ctx).Create(accessory).Error
}

func (r *accessoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Accessory, error) {
	var accessory entity.Accessory
	err := r.db.WithContext(ctx).First(&accessory, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &accessory, err
}

func (r *accessoryRepository) GetBySlug(ctx context.Context, slug string) (*entity.Accessory, error) {
	var accessory entity.Accessory
	err := r.db.WithContext(ctx).First(&accessory, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &accessory, err
}

func (r *accessoryRepository) Update(ctx context.Context, accessory *entity.Accessory) error {
	return r.db.WithContext(ctx).Save(accessory).Error
}

// AtomicDecrementQuantity decrements stock only if sufficient quantity exists,
// flipping the line to out of stock when it hits zero.
// Uses: UPDATE accessories SET quantity = quantity - ? WHERE id = ? AND quantity >= ?
func (r *accessoryRepository) AtomicDecrementQuantity(ctx context.Context, id uuid.UUID, amount int) (bool, error) {
	result := r.db.WithContext(ctx).Model(&entity.Accessory{}).
		Where("id = ? AND quantity >= ?", id, amount).
		Updates(map[string]interface{}{
			"quantity": gorm.Expr("quantity - ?", amount),
			"status":   gorm.Expr("CASE WHEN quantity - ? = 0 THEN ? ELSE status END", amount, enum.AccessoryStatusOutOfStock),
		})

	if result.Error != nil {
		return false, result.Error
	}

	// If no rows were affected, insufficient stock
	return result.RowsAffected > 0, nil
}

// AtomicIncrementQuantity restores stock after a failed write, bringing the
// line back in stock if the decrement had emptied it.
func (r *accessoryRepository) AtomicIncrementQuantity(ctx context.Context, id uuid.UUID, amount int) error {
	return r.db.WithContext(ctx).Model(&entity.Accessory{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity": gorm.Expr("quantity + ?", amount),
			"status":   gorm.Expr("CASE WHEN status = ? THEN ? ELSE status END", enum.AccessoryStatusOutOfStock, enum.AccessoryStatusInStock),
		}).Error
}

func (r *accessoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Accessory{}, "id = ?", id).Error
}

func (r *accessoryRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.AccessoryFilterParams) ([]entity.Accessory, int64, error) {
	var accessories []entity.Accessory
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Accessory{})
	if !params.SkipUserFilter && userID != uuid.Nil {
		query = query.Where("registered_by = ?", userID)
	}

	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.LowStock {
		query = query.Where("quantity <= quantity_alert")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&accessories).Error

	return accessories, total, err
}
