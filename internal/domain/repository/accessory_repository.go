package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/phonehub/phonehub-api/internal/domain/entity"
	"github.com/phonehub/phonehub-api/internal/domain/enum"
	"github.com/phonehub/phonehub-api/pkg/pagination"
)

// AccessoryRepository defines the interface for accessory inventory operations
type AccessoryRepository interface {
	Create(ctx context.Context, accessory *entity.Accessory) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Accessory, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Accessory, error)
	Update(ctx context.Context, accessory *entity.Accessory) error
	AtomicDecrementQuantity(ctx context.Context, id uuid.UUID, amount int) (bool, error)
	AtomicIncrementQuantity(ctx context.Context, id uuid.UUID, amount int) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *AccessoryFilterParams) ([]entity.Accessory, int64, error)
}

// AccessoryFilterParams contains filtering parameters for accessory queries
type AccessoryFilterParams struct {
	Pagination     *pagination.PaginationParams
	Search         string
	Status         *enum.AccessoryStatus
	LowStock       bool
	SkipUserFilter bool
}
