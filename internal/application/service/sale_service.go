package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phonehub/phonehub-api/internal/domain/entity"
	"github.com/phonehub/phonehub-api/internal/domain/enum"
	"github.com/phonehub/phonehub-api/internal/domain/repository"
	"github.com/phonehub/phonehub-api/pkg/apperror"
	"github.com/phonehub/phonehub-api/pkg/pagination"
	"github.com/phonehub/phonehub-api/pkg/utils"
)

// SaleService records sales and applies the matching stock movements
type SaleService struct {
	saleRepo      repository.SaleRepository
	phoneRepo     repository.PhoneRepository
	accessoryRepo repository.AccessoryRepository
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	phoneRepo repository.PhoneRepository,
	accessoryRepo repository.AccessoryRepository,
) *SaleService {
	return &SaleService{
		saleRepo:      saleRepo,
		phoneRepo:     phoneRepo,
		accessoryRepo: accessoryRepo,
	}
}

// CreateSaleInput represents the record sale input
type CreateSaleInput struct {
	SoldBy        uuid.UUID
	ItemType      enum.ItemType
	ItemID        uuid.UUID
	SaleDate      time.Time
	SalePrice     float64
	Quantity      int
	PaymentMethod string
}

// CreateSale records a sale and updates the sold item's stock. Phone sales
// flip the unit to sold; accessory sales decrement the line's quantity and
// mark it out of stock at zero.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	if !input.ItemType.Valid() {
		return nil, apperror.NewBadRequestError("Unknown item type")
	}

	sale := &entity.Sale{
		ReceiptNo:     utils.GenerateReceiptNo(),
		ItemType:      input.ItemType,
		ItemID:        input.ItemID,
		SoldBy:        input.SoldBy,
		SaleDate:      input.SaleDate,
		SalePrice:     int64(input.SalePrice * 100),
		Quantity:      input.Quantity,
		PaymentMethod: input.PaymentMethod,
	}

	switch input.ItemType {
	case enum.ItemTypePhone:
		phone, err := s.phoneRepo.GetByID(ctx, input.ItemID)
		if err != nil {
			return nil, err
		}
		if phone == nil {
			return nil, apperror.NewNotFoundError("Phone")
		}

		sale.ItemName = phone.DisplayName()
		sale.Quantity = 1 // handsets sell one unit per sale

		// Conditional flip so two concurrent sales cannot both take the unit
		flipped, err := s.phoneRepo.UpdateStatusIf(ctx, phone.ID, enum.PhoneStatusInStock, enum.PhoneStatusSold)
		if err != nil {
			return nil, err
		}
		if !flipped {
			return nil, apperror.NewBadRequestError("Phone is not in stock")
		}

	case enum.ItemTypeAccessory:
		accessory, err := s.accessoryRepo.GetByID(ctx, input.ItemID)
		if err != nil {
			return nil, err
		}
		if accessory == nil {
			return nil, apperror.NewNotFoundError("Accessory")
		}
		if accessory.Status == enum.AccessoryStatusUnavailable {
			return nil, apperror.NewBadRequestError("Accessory is unavailable")
		}
		if input.Quantity < 1 {
			return nil, apperror.NewBadRequestError("Quantity must be at least 1")
		}

		sale.ItemName = accessory.Name

		ok, err := s.accessoryRepo.AtomicDecrementQuantity(ctx, accessory.ID, input.Quantity)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperror.NewBadRequestError("Insufficient stock")
		}
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		// Stock was already moved - we need to restore it
		switch input.ItemType {
		case enum.ItemTypePhone:
			_, _ = s.phoneRepo.UpdateStatusIf(ctx, input.ItemID, enum.PhoneStatusSold, enum.PhoneStatusInStock)
		case enum.ItemTypeAccessory:
			_ = s.accessoryRepo.AtomicIncrementQuantity(ctx, input.ItemID, sale.Quantity)
		}
		return nil, err
	}

	return sale, nil
}

// GetSale retrieves a sale by ID
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSalesInput represents the sale listing filters
type ListSalesInput struct {
	Pagination     *pagination.PaginationParams
	Search         string
	ItemType       *enum.ItemType
	PaymentMethod  string
	StartDate      *time.Time
	EndDate        *time.Time
	SkipUserFilter bool
}

// ListSales returns the user's sales, newest first
func (s *SaleService) ListSales(ctx context.Context, userID uuid.UUID, input *ListSalesInput) ([]entity.Sale, *pagination.Pagination, error) {
	params := &repository.SaleFilterParams{
		Pagination:     input.Pagination,
		Search:         input.Search,
		ItemType:       input.ItemType,
		PaymentMethod:  input.PaymentMethod,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		SkipUserFilter: input.SkipUserFilter,
	}

	sales, total, err := s.saleRepo.List(ctx, userID, params)
	if err != nil {
		return nil, nil, err
	}

	input.Pagination.Validate()
	return sales, pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total), nil
}
