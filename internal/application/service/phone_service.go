package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/phonehub/phonehub-api/internal/domain/entity"
	"github.com/phonehub/phonehub-api/internal/domain/enum"
	"github.com/phonehub/phonehub-api/internal/domain/repository"
	"github.com/phonehub/phonehub-api/pkg/apperror"
	"github.com/phonehub/phonehub-api/pkg/pagination"
)

// PhoneService handles phone inventory operations
type PhoneService struct {
	phoneRepo repository.PhoneRepository
}

// NewPhoneService creates a new phone service
func NewPhoneService(phoneRepo repository.PhoneRepository) *PhoneService {
	return &PhoneService{phoneRepo: phoneRepo}
}

// CreatePhoneInput represents the register phone input
type CreatePhoneInput struct {
	RegisteredBy uuid.UUID
	Brand        string
	Model        string
	IMEI         string
	BuyingPrice  float64
	SellingPrice float64
}

// CreatePhone registers a new handset unit
func (s *PhoneService) CreatePhone(ctx context.Context, input *CreatePhoneInput) (*entity.Phone, error) {
	existing, err := s.phoneRepo.GetByIMEI(ctx, input.IMEI)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A phone with this IMEI is already registered")
	}

	phone := &entity.Phone{
		Brand:        input.Brand,
		Model:        input.Model,
		IMEI:         input.IMEI,
		Status:       enum.PhoneStatusInStock,
		RegisteredBy: input.RegisteredBy,
	}
	phone.SetBuyingPriceFromDecimal(input.BuyingPrice)
	phone.SetSellingPriceFromDecimal(input.SellingPrice)

	if err := s.phoneRepo.Create(ctx, phone); err != nil {
		return nil, err
	}

	return phone, nil
}

// GetPhone retrieves a phone by ID
func (s *PhoneService) GetPhone(ctx context.Context, id uuid.UUID) (*entity.Phone, error) {
	phone, err := s.phoneRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if phone == nil {
		return nil, apperror.NewNotFoundError("Phone")
	}
	return phone, nil
}

// UpdatePhoneInput represents the update phone input
type UpdatePhoneInput struct {
	Brand        *string
	Model        *string
	BuyingPrice  *float64
	SellingPrice *float64
	Status       *enum.PhoneStatus
}

// UpdatePhone updates a phone's details or status
func (s *PhoneService) UpdatePhone(ctx context.Context, id uuid.UUID, input *UpdatePhoneInput) (*entity.Phone, error) {
	phone, err := s.GetPhone(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Brand != nil {
		phone.Brand = *input.Brand
	}
	if input.Model != nil {
		phone.Model = *input.Model
	}
	if input.BuyingPrice != nil {
		phone.SetBuyingPriceFromDecimal(*input.BuyingPrice)
	}
	if input.SellingPrice != nil {
		phone.SetSellingPriceFromDecimal(*input.SellingPrice)
	}
	if input.Status != nil {
		phone.Status = *input.Status
	}

	if err := s.phoneRepo.Update(ctx, phone); err != nil {
		return nil, err
	}

	return phone, nil
}

// DeletePhone soft-deletes a phone record
func (s *PhoneService) DeletePhone(ctx context.Context, id uuid.UUID) error {
	phone, err := s.GetPhone(ctx, id)
	if err != nil {
		return err
	}
	return s.phoneRepo.Delete(ctx, phone.ID)
}

// ListPhonesInput represents the phone listing filters
type ListPhonesInput struct {
	Pagination     *pagination.PaginationParams
	Search         string
	Brand          string
	Status         *enum.PhoneStatus
	SkipUserFilter bool
}

// ListPhones returns phones registered by the user (or all, for admin views)
func (s *PhoneService) ListPhones(ctx context.Context, userID uuid.UUID, input *ListPhonesInput) ([]entity.Phone, *pagination.Pagination, error) {
	params := &repository.PhoneFilterParams{
		Pagination:     input.Pagination,
		Search:         input.Search,
		Brand:          input.Brand,
		Status:         input.Status,
		SkipUserFilter: input.SkipUserFilter,
	}

	phones, total, err := s.phoneRepo.List(ctx, userID, params)
	if err != nil {
		return nil, nil, err
	}

	input.Pagination.Validate()
	return phones, pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total), nil
}
