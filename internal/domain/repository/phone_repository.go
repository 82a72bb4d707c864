package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/phonehub/phonehub-api/internal/domain/entity"
	"github.com/phonehub/phonehub-api/internal/domain/enum"
	"github.com/phonehub/phonehub-api/pkg/pagination"
)

// PhoneRepository defines the interface for phone inventory operations
type PhoneRepository interface {
	Create(ctx context.Context, phone *entity.Phone) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Phone, error)
	GetByIMEI(ctx context.Context, imei string) (*entity.Phone, error)
	Update(ctx context.Context, phone *entity.Phone) error
	UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to enum.PhoneStatus) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *PhoneFilterParams) ([]entity.Phone, int64, error)
}

// PhoneFilterParams contains filtering parameters for phone queries
type PhoneFilterParams struct {
	Pagination     *pagination.PaginationParams
	Search         string
	Brand          string
	Status         *enum.PhoneStatus
	SkipUserFilter bool // If true, returns phones registered by any user (admin views)
}
