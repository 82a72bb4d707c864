package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/phonehub/phonehub-api/internal/domain/entity"
	"github.com/phonehub/phonehub-api/internal/domain/repository"
	"github.com/phonehub/phonehub-api/pkg/pagination"
)

// ActivityService records and lists the audit trail of user actions
type ActivityService struct {
	activityRepo repository.ActivityLogRepository
}

// NewActivityService creates a new activity service
func NewActivityService(activityRepo repository.ActivityLogRepository) *ActivityService {
	return &ActivityService{activityRepo: activityRepo}
}

// Record writes one audit entry. Logging is best-effort: a failed write is
// logged but never fails the operation being audited.
func (s *ActivityService) Record(ctx context.Context, userID uuid.UUID, action, detail, ipAddress string) {
	entry := &entity.ActivityLog{
		UserID:    userID,
		Action:    action,
		Detail:    detail,
		IPAddress: ipAddress,
	}
	if err := s.activityRepo.Create(ctx, entry); err != nil {
		log.Printf("Warning: failed to record activity %q for user %s: %v", action, userID, err)
	}
}

// ListInput represents the activity listing filters
type ListActivityInput struct {
	Pagination *pagination.PaginationParams
	UserID     *uuid.UUID
	Action     string
}

// List returns audit entries, newest first
func (s *ActivityService) List(ctx context.Context, input *ListActivityInput) ([]entity.ActivityLog, *pagination.Pagination, error) {
	params := &repository.ActivityFilterParams{
		Pagination: input.Pagination,
		UserID:     input.UserID,
		Action:     input.Action,
	}

	logs, total, err := s.activityRepo.List(ctx, params)
	if err != nil {
		return nil, nil, err
	}

	input.Pagination.Validate()
	return logs, pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total), nil
}
