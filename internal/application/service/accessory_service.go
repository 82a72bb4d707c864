package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/phonehub/phonehub-api/internal/domain/entity"
	"github.com/phonehub/phonehub-api/internal/domain/enum"
	"github.com/phonehub/phonehub-api/internal/domain/repository"
	"github.com/phonehub/phonehub-api/pkg/apperror"
	"github.com/phonehub/phonehub-api/pkg/pagination"
	"github.com/phonehub/phonehub-api/pkg/utils"
)

// AccessoryService handles accessory inventory operations
type AccessoryService struct {
	accessoryRepo repository.AccessoryRepository
}

// NewAccessoryService creates a new accessory service
func NewAccessoryService(accessoryRepo repository.AccessoryRepository) *AccessoryService {
	return &AccessoryService{accessoryRepo: accessoryRepo}
}

// CreateAccessoryInput represents the register accessory input
type CreateAccessoryInput struct {
	RegisteredBy  uuid.UUID
	Name          string
	Quantity      int
	QuantityAlert int
	UnitPrice     float64
}

// CreateAccessory registers a new accessory line
func (s *AccessoryService) CreateAccessory(ctx context.Context, input *CreateAccessoryInput) (*entity.Accessory, error) {
	slug := utils.Slugify(input.Name)

	existing, err := s.accessoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("An accessory with this name already exists")
	}

	status := enum.AccessoryStatusInStock
	if input.Quantity == 0 {
		status = enum.AccessoryStatusOutOfStock
	}

	accessory := &entity.Accessory{
		Name:          input.Name,
		Slug:          slug,
		Quantity:      input.Quantity,
		QuantityAlert: input.QuantityAlert,
		Status:        status,
		RegisteredBy:  input.RegisteredBy,
	}
	accessory.SetUnitPriceFromDecimal(input.UnitPrice)

	if err := s.accessoryRepo.Create(ctx, accessory); err != nil {
		return nil, err
	}

	return accessory, nil
}

// GetAccessory retrieves an accessory by ID
func (s *AccessoryService) GetAccessory(ctx context.Context, id uuid.UUID) (*entity.Accessory, error) {
	accessory, err := s.accessoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if accessory == nil {
		return nil, apperror.NewNotFoundError("Accessory")
	}
	return accessory, nil
}

// UpdateAccessoryInput represents the update accessory input
type UpdateAccessoryInput struct {
	Name          *string
	Quantity      *int
	QuantityAlert *int
	UnitPrice     *float64
	Status        *enum.AccessoryStatus
}

// UpdateAccessory updates an accessory's details, restocking included
func (s *AccessoryService) UpdateAccessory(ctx context.Context, id uuid.UUID, input *UpdateAccessoryInput) (*entity.Accessory, error) {
	accessory, err := s.GetAccessory(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		accessory.Name = *input.Name
		accessory.Slug = utils.Slugify(*input.Name)
	}
	if input.Quantity != nil {
		accessory.Quantity = *input.Quantity
	}
	if input.QuantityAlert != nil {
		accessory.QuantityAlert = *input.QuantityAlert
	}
	if input.UnitPrice != nil {
		accessory.SetUnitPriceFromDecimal(*input.UnitPrice)
	}
	if input.Status != nil {
		accessory.Status = *input.Status
	}

	// Quantity changes move the line in and out of stock automatically
	if accessory.Status != enum.AccessoryStatusUnavailable {
		if accessory.Quantity <= 0 {
			accessory.Status = enum.AccessoryStatusOutOfStock
		} else {
			accessory.Status = enum.AccessoryStatusInStock
		}
	}

	if err := s.accessoryRepo.Update(ctx, accessory); err != nil {
		return nil, err
	}

	return accessory, nil
}

// DeleteAccessory soft-deletes an accessory line
func (s *AccessoryService) DeleteAccessory(ctx context.Context, id uuid.UUID) error {
	accessory, err := s.GetAccessory(ctx, id)
	if err != nil {
		return err
	}
	return s.accessoryRepo.Delete(ctx, accessory.ID)
}

// ListAccessoriesInput represents the accessory listing filters
type ListAccessoriesInput struct {
	Pagination     *pagination.PaginationParams
	Search         string
	Status         *enum.AccessoryStatus
	LowStock       bool
	SkipUserFilter bool
}

// ListAccessories returns accessories registered by the user
func (s *AccessoryService) ListAccessories(ctx context.Context, userID uuid.UUID, input *ListAccessoriesInput) ([]entity.Accessory, *pagination.Pagination, error) {
	params := &repository.AccessoryFilterParams{
		Pagination:     input.Pagination,
		Search:         input.Search,
		Status:         input.Status,
		LowStock:       input.LowStock,
		SkipUserFilter: input.SkipUserFilter,
	}

	accessories, total, err := s.accessoryRepo.List(ctx, userID, params)
	if err != nil {
		return nil, nil, err
	}

	input.Pagination.Validate()
	return accessories, pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total), nil
}
