package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phonehub/phonehub-api/internal/domain/entity"
	"github.com/phonehub/phonehub-api/internal/domain/enum"
	"github.com/phonehub/phonehub-api/internal/domain/repository"
	"github.com/phonehub/phonehub-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSaleRepo struct {
	created    []*entity.Sale
	failCreate bool
}

func (f *fakeSaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	if f.failCreate {
		return errors.New("insert failed")
	}
	f.created = append(f.created, sale)
	return nil
}

func (f *fakeSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	for _, s := range f.created {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSaleRepo) List(ctx context.Context, userID uuid.UUID, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	sales := make([]entity.Sale, 0, len(f.created))
	for _, s := range f.created {
		sales = append(sales, *s)
	}
	return sales, int64(len(sales)), nil
}

type fakePhoneRepo struct {
	phones map[uuid.UUID]*entity.Phone
}

func (f *fakePhoneRepo) Create(ctx context.Context, phone *entity.Phone) error {
	f.phones[phone.ID] = phone
	return nil
}

func (f *fakePhoneRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Phone, error) {
	return f.phones[id], nil
}

func (f *fakePhoneRepo) GetByIMEI(ctx context.Context, imei string) (*entity.Phone, error) {
	for _, p := range f.phones {
		if p.IMEI == imei {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePhoneRepo) Update(ctx context.Context, phone *entity.Phone) error {
	f.phones[phone.ID] = phone
	return nil
}

func (f *fakePhoneRepo) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to enum.PhoneStatus) (bool, error) {
	phone, ok := f.phones[id]
	if !ok || phone.Status != from {
		return false, nil
	}
	phone.Status = to
	return true, nil
}

func (f *fakePhoneRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.phones, id)
	return nil
}

func (f *fakePhoneRepo) List(ctx context.Context, userID uuid.UUID, params *repository.PhoneFilterParams) ([]entity.Phone, int64, error) {
	return nil, 0, nil
}

type fakeAccessoryRepo struct {
	accessories map[uuid.UUID]*entity.Accessory
}

func (f *fakeAccessoryRepo) Create(ctx context.Context, accessory *entity.Accessory) error {
	f.accessories[accessory.ID] = accessory
	return nil
}

func (f *fakeAccessoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Accessory, error) {
	return f.accessories[id], nil
}

func (f *fakeAccessoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Accessory, error) {
	for _, a := range f.accessories {
		if a.Slug == slug {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccessoryRepo) Update(ctx context.Context, accessory *entity.Accessory) error {
	f.accessories[accessory.ID] = accessory
	return nil
}

func (f *fakeAccessoryRepo) AtomicDecrementQuantity(ctx context.Context, id uuid.UUID, amount int) (bool, error) {
	a, ok := f.accessories[id]
	if !ok || a.Quantity < amount {
		return false, nil
	}
	a.Quantity -= amount
	if a.Quantity == 0 {
		a.Status = enum.AccessoryStatusOutOfStock
	}
	return true, nil
}

func (f *fakeAccessoryRepo) AtomicIncrementQuantity(ctx context.Context, id uuid.UUID, amount int) error {
	a, ok := f.accessories[id]
	if !ok {
		return nil
	}
	a.Quantity += amount
	if a.Status == enum.AccessoryStatusOutOfStock {
		a.Status = enum.AccessoryStatusInStock
	}
	return nil
}

func (f *fakeAccessoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.accessories, id)
	return nil
}

func (f *fakeAccessoryRepo) List(ctx context.Context, userID uuid.UUID, params *repository.AccessoryFilterParams) ([]entity.Accessory, int64, error) {
	return nil, 0, nil
}

func newSaleFixture() (*SaleService, *fakeSaleRepo, *fakePhoneRepo, *fakeAccessoryRepo) {
	saleRepo := &fakeSaleRepo{}
	phoneRepo := &fakePhoneRepo{phones: make(map[uuid.UUID]*entity.Phone)}
	accessoryRepo := &fakeAccessoryRepo{accessories: make(map[uuid.UUID]*entity.Accessory)}
	return NewSaleService(saleRepo, phoneRepo, accessoryRepo), saleRepo, phoneRepo, accessoryRepo
}

func saleDate() time.Time {
	return time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
}

func TestCreateSalePhoneFlipsStatusToSold(t *testing.T) {
	svc, saleRepo, phoneRepo, _ := newSaleFixture()

	phone := &entity.Phone{
		ID:     uuid.New(),
		Brand:  "Pixel",
		Model:  "9",
		Status: enum.PhoneStatusInStock,
	}
	phoneRepo.phones[phone.ID] = phone

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		SoldBy:        uuid.New(),
		ItemType:      enum.ItemTypePhone,
		ItemID:        phone.ID,
		SaleDate:      saleDate(),
		SalePrice:     650.50,
		Quantity:      3, // ignored for phones
		PaymentMethod: "cash",
	})
	require.NoError(t, err)

	assert.Equal(t, enum.PhoneStatusSold, phone.Status)
	assert.Equal(t, 1, sale.Quantity)
	assert.Equal(t, "Pixel 9", sale.ItemName)
	assert.Equal(t, int64(65050), sale.SalePrice)
	assert.True(t, strings.HasPrefix(sale.ReceiptNo, "RCT-"))
	require.Len(t, saleRepo.created, 1)
}

func TestCreateSalePhoneNotInStockRejected(t *testing.T) {
	svc, saleRepo, phoneRepo, _ := newSaleFixture()

	phone := &entity.Phone{ID: uuid.New(), Status: enum.PhoneStatusSold}
	phoneRepo.phones[phone.ID] = phone

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		SoldBy:        uuid.New(),
		ItemType:      enum.ItemTypePhone,
		ItemID:        phone.ID,
		SaleDate:      saleDate(),
		SalePrice:     100,
		PaymentMethod: "cash",
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
	assert.Empty(t, saleRepo.created)
}

func TestCreateSaleUnknownPhoneRejected(t *testing.T) {
	svc, _, _, _ := newSaleFixture()

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		SoldBy:        uuid.New(),
		ItemType:      enum.ItemTypePhone,
		ItemID:        uuid.New(),
		SaleDate:      saleDate(),
		SalePrice:     100,
		PaymentMethod: "cash",
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCreateSaleAccessoryDecrementsStock(t *testing.T) {
	svc, saleRepo, _, accessoryRepo := newSaleFixture()

	accessory := &entity.Accessory{
		ID:       uuid.New(),
		Name:     "USB-C Cable",
		Quantity: 10,
		Status:   enum.AccessoryStatusInStock,
	}
	accessoryRepo.accessories[accessory.ID] = accessory

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		SoldBy:        uuid.New(),
		ItemType:      enum.ItemTypeAccessory,
		ItemID:        accessory.ID,
		SaleDate:      saleDate(),
		SalePrice:     45,
		Quantity:      3,
		PaymentMethod: "mobile_money",
	})
	require.NoError(t, err)

	assert.Equal(t, 7, accessory.Quantity)
	assert.Equal(t, enum.AccessoryStatusInStock, accessory.Status)
	assert.Equal(t, 3, sale.Quantity)
	assert.Equal(t, "USB-C Cable", sale.ItemName)
	require.Len(t, saleRepo.created, 1)
}

func TestCreateSaleAccessoryFlipsOutOfStockAtZero(t *testing.T) {
	svc, _, _, accessoryRepo := newSaleFixture()

	accessory := &entity.Accessory{
		ID:       uuid.New(),
		Name:     "Screen Protector",
		Quantity: 2,
		Status:   enum.AccessoryStatusInStock,
	}
	accessoryRepo.accessories[accessory.ID] = accessory

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		SoldBy:        uuid.New(),
		ItemType:      enum.ItemTypeAccessory,
		ItemID:        accessory.ID,
		SaleDate:      saleDate(),
		SalePrice:     10,
		Quantity:      2,
		PaymentMethod: "cash",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, accessory.Quantity)
	assert.Equal(t, enum.AccessoryStatusOutOfStock, accessory.Status)
}

func TestCreateSaleAccessoryInsufficientStockRejected(t *testing.T) {
	svc, saleRepo, _, accessoryRepo := newSaleFixture()

	accessory := &entity.Accessory{
		ID:       uuid.New(),
		Name:     "Charger",
		Quantity: 1,
		Status:   enum.AccessoryStatusInStock,
	}
	accessoryRepo.accessories[accessory.ID] = accessory

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		SoldBy:        uuid.New(),
		ItemType:      enum.ItemTypeAccessory,
		ItemID:        accessory.ID,
		SaleDate:      saleDate(),
		SalePrice:     25,
		Quantity:      2,
		PaymentMethod: "cash",
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	// Nothing changed
	assert.Equal(t, 1, accessory.Quantity)
	assert.Empty(t, saleRepo.created)
}

func TestCreateSaleUnknownItemTypeRejected(t *testing.T) {
	svc, _, _, _ := newSaleFixture()

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		SoldBy:        uuid.New(),
		ItemType:      enum.ItemType("giftcard"),
		ItemID:        uuid.New(),
		SaleDate:      saleDate(),
		SalePrice:     10,
		PaymentMethod: "cash",
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateSaleSameUnitCannotSellTwice(t *testing.T) {
	svc, saleRepo, phoneRepo, _ := newSaleFixture()

	phone := &entity.Phone{
		ID:     uuid.New(),
		Brand:  "Pixel",
		Model:  "9",
		Status: enum.PhoneStatusInStock,
	}
	phoneRepo.phones[phone.ID] = phone

	input := &CreateSaleInput{
		SoldBy:        uuid.New(),
		ItemType:      enum.ItemTypePhone,
		ItemID:        phone.ID,
		SaleDate:      saleDate(),
		SalePrice:     650,
		PaymentMethod: "cash",
	}

	_, err := svc.CreateSale(context.Background(), input)
	require.NoError(t, err)

	// The conditional flip stops a second writer from taking the same unit
	_, err = svc.CreateSale(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
	require.Len(t, saleRepo.created, 1)
}

func TestCreateSaleRestoresPhoneWhenInsertFails(t *testing.T) {
	svc, saleRepo, phoneRepo, _ := newSaleFixture()
	saleRepo.failCreate = true

	phone := &entity.Phone{
		ID:     uuid.New(),
		Brand:  "Pixel",
		Model:  "9",
		Status: enum.PhoneStatusInStock,
	}
	phoneRepo.phones[phone.ID] = phone

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		SoldBy:        uuid.New(),
		ItemType:      enum.ItemTypePhone,
		ItemID:        phone.ID,
		SaleDate:      saleDate(),
		SalePrice:     650,
		PaymentMethod: "cash",
	})
	require.Error(t, err)

	// The unit goes back in stock, no sold phone without a sale row
	assert.Equal(t, enum.PhoneStatusInStock, phone.Status)
	assert.Empty(t, saleRepo.created)
}

func TestCreateSaleRestoresAccessoryStockWhenInsertFails(t *testing.T) {
	svc, saleRepo, _, accessoryRepo := newSaleFixture()
	saleRepo.failCreate = true

	accessory := &entity.Accessory{
		ID:       uuid.New(),
		Name:     "USB-C Cable",
		Quantity: 2,
		Status:   enum.AccessoryStatusInStock,
	}
	accessoryRepo.accessories[accessory.ID] = accessory

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		SoldBy:        uuid.New(),
		ItemType:      enum.ItemTypeAccessory,
		ItemID:        accessory.ID,
		SaleDate:      saleDate(),
		SalePrice:     45,
		Quantity:      2,
		PaymentMethod: "cash",
	})
	require.Error(t, err)

	assert.Equal(t, 2, accessory.Quantity)
	assert.Equal(t, enum.AccessoryStatusInStock, accessory.Status)
	assert.Empty(t, saleRepo.created)
}

func TestCreateTransferPhoneFlipsStatus(t *testing.T) {
	phoneRepo := &fakePhoneRepo{phones: make(map[uuid.UUID]*entity.Phone)}
	accessoryRepo := &fakeAccessoryRepo{accessories: make(map[uuid.UUID]*entity.Accessory)}
	transferRepo := &fakeTransferRepo{}
	svc := NewTransferService(transferRepo, phoneRepo, accessoryRepo)

	phone := &entity.Phone{ID: uuid.New(), Brand: "Galaxy", Model: "S25", Status: enum.PhoneStatusInStock}
	phoneRepo.phones[phone.ID] = phone

	transfer, err := svc.CreateTransfer(context.Background(), &CreateTransferInput{
		TransferredBy: uuid.New(),
		ItemType:      enum.ItemTypePhone,
		ItemID:        phone.ID,
		Quantity:      1,
		Destination:   "Westlands branch",
		TransferDate:  saleDate(),
	})
	require.NoError(t, err)

	assert.Equal(t, enum.PhoneStatusTransferred, phone.Status)
	assert.Equal(t, "Galaxy S25", transfer.ItemName)
	assert.True(t, strings.HasPrefix(transfer.ReferenceNo, "TRF-"))
}

func TestCreateTransferAccessoryDecrementsStock(t *testing.T) {
	phoneRepo := &fakePhoneRepo{phones: make(map[uuid.UUID]*entity.Phone)}
	accessoryRepo := &fakeAccessoryRepo{accessories: make(map[uuid.UUID]*entity.Accessory)}
	transferRepo := &fakeTransferRepo{}
	svc := NewTransferService(transferRepo, phoneRepo, accessoryRepo)

	accessory := &entity.Accessory{ID: uuid.New(), Name: "Earbuds", Quantity: 5, Status: enum.AccessoryStatusInStock}
	accessoryRepo.accessories[accessory.ID] = accessory

	_, err := svc.CreateTransfer(context.Background(), &CreateTransferInput{
		TransferredBy: uuid.New(),
		ItemType:      enum.ItemTypeAccessory,
		ItemID:        accessory.ID,
		Quantity:      5,
		Destination:   "CBD branch",
		TransferDate:  saleDate(),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, accessory.Quantity)
	assert.Equal(t, enum.AccessoryStatusOutOfStock, accessory.Status)
	require.Len(t, transferRepo.created, 1)
}

func TestCreateTransferRestoresStockWhenInsertFails(t *testing.T) {
	phoneRepo := &fakePhoneRepo{phones: make(map[uuid.UUID]*entity.Phone)}
	accessoryRepo := &fakeAccessoryRepo{accessories: make(map[uuid.UUID]*entity.Accessory)}
	transferRepo := &fakeTransferRepo{failCreate: true}
	svc := NewTransferService(transferRepo, phoneRepo, accessoryRepo)

	accessory := &entity.Accessory{ID: uuid.New(), Name: "Earbuds", Quantity: 3, Status: enum.AccessoryStatusInStock}
	accessoryRepo.accessories[accessory.ID] = accessory

	_, err := svc.CreateTransfer(context.Background(), &CreateTransferInput{
		TransferredBy: uuid.New(),
		ItemType:      enum.ItemTypeAccessory,
		ItemID:        accessory.ID,
		Quantity:      3,
		Destination:   "CBD branch",
		TransferDate:  saleDate(),
	})
	require.Error(t, err)

	assert.Equal(t, 3, accessory.Quantity)
	assert.Equal(t, enum.AccessoryStatusInStock, accessory.Status)
	assert.Empty(t, transferRepo.created)
}

type fakeTransferRepo struct {
	created    []*entity.Transfer
	failCreate bool
}

func (f *fakeTransferRepo) Create(ctx context.Context, transfer *entity.Transfer) error {
	if f.failCreate {
		return errors.New("insert failed")
	}
	f.created = append(f.created, transfer)
	return nil
}

func (f *fakeTransferRepo) List(ctx context.Context, userID uuid.UUID, params *repository.TransferFilterParams) ([]entity.Transfer, int64, error) {
	return nil, 0, nil
}
