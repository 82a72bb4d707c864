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

// TransferService moves stock out to other branches
type TransferService struct {
	transferRepo  repository.TransferRepository
	phoneRepo     repository.PhoneRepository
	accessoryRepo repository.AccessoryRepository
}

// NewTransferService creates a new transfer service
func NewTransferService(
	transferRepo repository.TransferRepository,
	phoneRepo repository.PhoneRepository,
	accessoryRepo repository.AccessoryRepository,
) *TransferService {
	return &TransferService{
		transferRepo:  transferRepo,
		phoneRepo:     phoneRepo,
		accessoryRepo: accessoryRepo,
	}
}

// CreateTransferInput represents the record transfer input
type CreateTransferInput struct {
	TransferredBy uuid.UUID
	ItemType      enum.ItemType
	ItemID        uuid.UUID
	Quantity      int
	Destination   string
	TransferDate  time.Time
}

// CreateTransfer records a transfer and applies the stock movement
func (s *TransferService) CreateTransfer(ctx context.Context, input *CreateTransferInput) (*entity.Transfer, error) {
	if !input.ItemType.Valid() {
		return nil, apperror.NewBadRequestError("Unknown item type")
	}

	transfer := &entity.Transfer{
		ReferenceNo:   utils.GenerateTransferNo(),
		ItemType:      input.ItemType,
		ItemID:        input.ItemID,
		Quantity:      input.Quantity,
		Destination:   input.Destination,
		TransferredBy: input.TransferredBy,
		TransferDate:  input.TransferDate,
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

		transfer.ItemName = phone.DisplayName()
		transfer.Quantity = 1

		// Conditional flip so a concurrent sale cannot take the same unit
		flipped, err := s.phoneRepo.UpdateStatusIf(ctx, phone.ID, enum.PhoneStatusInStock, enum.PhoneStatusTransferred)
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
		if input.Quantity < 1 {
			return nil, apperror.NewBadRequestError("Quantity must be at least 1")
		}

		transfer.ItemName = accessory.Name

		ok, err := s.accessoryRepo.AtomicDecrementQuantity(ctx, accessory.ID, input.Quantity)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperror.NewBadRequestError("Insufficient stock")
		}
	}

	if err := s.transferRepo.Create(ctx, transfer); err != nil {
		// Stock was already moved - we need to restore it
		switch input.ItemType {
		case enum.ItemTypePhone:
			_, _ = s.phoneRepo.UpdateStatusIf(ctx, input.ItemID, enum.PhoneStatusTransferred, enum.PhoneStatusInStock)
		case enum.ItemTypeAccessory:
			_ = s.accessoryRepo.AtomicIncrementQuantity(ctx, input.ItemID, transfer.Quantity)
		}
		return nil, err
	}

	return transfer, nil
}

// ListTransfersInput represents the transfer listing filters
type ListTransfersInput struct {
	Pagination     *pagination.PaginationParams
	ItemType       *enum.ItemType
	StartDate      *time.Time
	EndDate        *time.Time
	SkipUserFilter bool
}

// ListTransfers returns the user's transfers, newest first
func (s *TransferService) ListTransfers(ctx context.Context, userID uuid.UUID, input *ListTransfersInput) ([]entity.Transfer, *pagination.Pagination, error) {
	params := &repository.TransferFilterParams{
		Pagination:     input.Pagination,
		ItemType:       input.ItemType,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		SkipUserFilter: input.SkipUserFilter,
	}

	transfers, total, err := s.transferRepo.List(ctx, userID, params)
	if err != nil {
		return nil, nil, err
	}

	input.Pagination.Validate()
	return transfers, pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total), nil
}
