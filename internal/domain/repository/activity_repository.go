package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phonehub/phonehub-api/internal/domain/entity"
	"github.com/phonehub/phonehub-api/pkg/pagination"
)

// ActivityLogRepository defines the interface for activity log operations
type ActivityLogRepository interface {
	Create(ctx context.Context, log *entity.ActivityLog) error
	List(ctx context.Context, params *ActivityFilterParams) ([]entity.ActivityLog, int64, error)
}

// ActivityFilterParams contains filtering parameters for activity queries
type ActivityFilterParams struct {
	Pagination *pagination.PaginationParams
	UserID     *uuid.UUID
	Action     string
	StartDate  *time.Time
	EndDate    *time.Time
}
