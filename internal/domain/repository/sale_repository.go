package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phonehub/phonehub-api/internal/domain/entity"
	"github.com/phonehub/phonehub-api/internal/domain/enum"
	"github.com/phonehub/phonehub-api/pkg/pagination"
)

// SaleRepository defines the interface for sale data operations. Sales are
// append-only; there is deliberately no Update.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	List(ctx context.Context, userID uuid.UUID, params *SaleFilterParams) ([]entity.Sale, int64, error)
}

// SaleFilterParams contains filtering parameters for sale queries
type SaleFilterParams struct {
	Pagination     *pagination.PaginationParams
	Search         string
	ItemType       *enum.ItemType
	PaymentMethod  string
	StartDate      *time.Time
	EndDate        *time.Time
	SkipUserFilter bool
}

// TransferRepository defines the interface for stock transfer operations
type TransferRepository interface {
	Create(ctx context.Context, transfer *entity.Transfer) error
	List(ctx context.Context, userID uuid.UUID, params *TransferFilterParams) ([]entity.Transfer, int64, error)
}

// TransferFilterParams contains filtering parameters for transfer queries
type TransferFilterParams struct {
	Pagination     *pagination.PaginationParams
	ItemType       *enum.ItemType
	StartDate      *time.Time
	EndDate        *time.Time
	SkipUserFilter bool
}
