package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phonehub/phonehub-api/internal/domain/enum"
	"github.com/phonehub/phonehub-api/internal/domain/repository"
	"github.com/phonehub/phonehub-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReportRepo returns canned rows so report assembly can be tested
// without a database
type fakeReportRepo struct {
	dailySales     []repository.DailySalesRow
	topPhones      []repository.TopItemRow
	topAccessories []repository.TopItemRow
	payments       []repository.PaymentRow
	phoneStatus    []repository.StatusCountRow
	accStatus      []repository.StatusCountRow
	transfers      repository.TransferCountsRow

	failDailySales bool

	topLimit int // records the limit the service asked for
}

func (f *fakeReportRepo) DailySales(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]repository.DailySalesRow, error) {
	if f.failDailySales {
		return nil, errors.New("connection refused")
	}
	return f.dailySales, nil
}

func (f *fakeReportRepo) TopPhones(ctx context.Context, userID uuid.UUID, start, end time.Time, limit int) ([]repository.TopItemRow, error) {
	f.topLimit = limit
	if len(f.topPhones) > limit {
		return f.topPhones[:limit], nil
	}
	return f.topPhones, nil
}

func (f *fakeReportRepo) TopAccessories(ctx context.Context, userID uuid.UUID, start, end time.Time, limit int) ([]repository.TopItemRow, error) {
	if len(f.topAccessories) > limit {
		return f.topAccessories[:limit], nil
	}
	return f.topAccessories, nil
}

func (f *fakeReportRepo) PaymentBreakdown(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]repository.PaymentRow, error) {
	return f.payments, nil
}

func (f *fakeReportRepo) PhoneStatusCounts(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]repository.StatusCountRow, error) {
	return f.phoneStatus, nil
}

func (f *fakeReportRepo) AccessoryStatusCounts(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]repository.StatusCountRow, error) {
	return f.accStatus, nil
}

func (f *fakeReportRepo) TransferCounts(ctx context.Context, userID uuid.UUID, start, end time.Time) (*repository.TransferCountsRow, error) {
	row := f.transfers
	return &row, nil
}

func newTestReportService(repo repository.ReportRepository, now time.Time) *ReportService {
	svc := NewReportService(repo)
	svc.now = func() time.Time { return now }
	return svc
}

func TestWeeklyReportZeroFillsEmptyWeek(t *testing.T) {
	svc := newTestReportService(&fakeReportRepo{}, time.Time{})

	report, err := svc.GetWeeklyReport(context.Background(), uuid.New(), "2025-03-10")
	require.NoError(t, err)

	require.Len(t, report.Days, 7)
	for i, b := range report.Days {
		assert.Equal(t, time.Date(2025, time.March, 10+i, 0, 0, 0, 0, time.UTC).Format("2006-01-02"), b.Date)
		assert.Zero(t, b.SalesCount)
		assert.Zero(t, b.Revenue)
	}

	assert.Zero(t, report.Summary.TotalSales)
	assert.Zero(t, report.Summary.TotalRevenue)
	assert.Empty(t, report.TopItems)
	assert.Empty(t, report.Payments)
}

func TestWeeklyReportOverlaysRowsAndTotalsSummary(t *testing.T) {
	repo := &fakeReportRepo{
		dailySales: []repository.DailySalesRow{
			{SaleDate: "2025-03-11", SalesCount: 3, Revenue: 45000, PhoneCount: 2, AccessoryCount: 1, AccessoryUnits: 4},
			{SaleDate: "2025-03-14", SalesCount: 1, Revenue: 9999, PhoneCount: 0, AccessoryCount: 1, AccessoryUnits: 2},
		},
	}
	svc := newTestReportService(repo, time.Time{})

	report, err := svc.GetWeeklyReport(context.Background(), uuid.New(), "2025-03-10")
	require.NoError(t, err)

	require.Len(t, report.Days, 7)
	tuesday := report.Days[1]
	assert.Equal(t, "2025-03-11", tuesday.Date)
	assert.Equal(t, 11, tuesday.Day)
	assert.Equal(t, int64(3), tuesday.SalesCount)
	assert.Equal(t, 450.0, tuesday.Revenue)

	friday := report.Days[4]
	assert.Equal(t, int64(1), friday.SalesCount)
	assert.Equal(t, 99.99, friday.Revenue)

	// The summary is totalled from the buckets themselves
	assert.Equal(t, int64(4), report.Summary.TotalSales)
	assert.Equal(t, 549.99, report.Summary.TotalRevenue)
	assert.Equal(t, int64(2), report.Summary.PhoneSales)
	assert.Equal(t, int64(2), report.Summary.AccessorySales)
	assert.Equal(t, int64(6), report.Summary.AccessoryUnits)
}

func TestWeeklyReportDefaultsToCurrentWeek(t *testing.T) {
	// Friday 2025-03-14, so the week runs Monday the 10th through Sunday the 16th
	now := time.Date(2025, time.March, 14, 18, 0, 0, 0, time.UTC)
	svc := newTestReportService(&fakeReportRepo{}, now)

	report, err := svc.GetWeeklyReport(context.Background(), uuid.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "2025-03-10", report.Days[0].Date)
	assert.Equal(t, "2025-03-16", report.Days[6].Date)
}

func TestWeeklyReportRejectsBadAnchor(t *testing.T) {
	svc := newTestReportService(&fakeReportRepo{}, time.Time{})

	_, err := svc.GetWeeklyReport(context.Background(), uuid.New(), "14-03-2025")
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
}

func TestReportFailsWholeWhenQueryFails(t *testing.T) {
	svc := newTestReportService(&fakeReportRepo{failDailySales: true}, time.Time{})

	report, err := svc.GetWeeklyReport(context.Background(), uuid.New(), "2025-03-10")
	require.Error(t, err)
	assert.Nil(t, report, "no partial result on failure")

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 500, appErr.Code)
}

func TestTopItemsMergeIsStableAndTruncated(t *testing.T) {
	phoneA, phoneB := uuid.New(), uuid.New()
	accA, accB := uuid.New(), uuid.New()
	repo := &fakeReportRepo{
		topPhones: []repository.TopItemRow{
			{ItemID: phoneA, ItemName: "Pixel 9", SalesCount: 8, UnitsSold: 8, Revenue: 640000},
			{ItemID: phoneB, ItemName: "Galaxy S25", SalesCount: 3, UnitsSold: 3, Revenue: 270000},
		},
		topAccessories: []repository.TopItemRow{
			{ItemID: accA, ItemName: "USB-C Cable", SalesCount: 8, UnitsSold: 24, Revenue: 36000},
			{ItemID: accB, ItemName: "Screen Protector", SalesCount: 5, UnitsSold: 10, Revenue: 15000},
		},
	}
	svc := newTestReportService(repo, time.Time{})

	report, err := svc.GetWeeklyReport(context.Background(), uuid.New(), "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 5, repo.topLimit)

	require.Len(t, report.TopItems, 4)

	// Ties keep phones ahead of accessories since phones merged first
	assert.Equal(t, "Pixel 9", report.TopItems[0].Name)
	assert.Equal(t, "USB-C Cable", report.TopItems[1].Name)
	assert.Equal(t, "Screen Protector", report.TopItems[2].Name)
	assert.Equal(t, "Galaxy S25", report.TopItems[3].Name)

	// Phone average divides by sales count, accessory average by units sold
	assert.Equal(t, 800.0, report.TopItems[0].AvgPrice)
	assert.Equal(t, 15.0, report.TopItems[1].AvgPrice)

	assert.Equal(t, enum.ItemTypePhone, report.TopItems[0].ItemType)
	assert.Equal(t, enum.ItemTypeAccessory, report.TopItems[1].ItemType)
}

func TestMonthlyTopItemsUseWiderLimit(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := newTestReportService(repo, time.Time{})

	_, err := svc.GetMonthlyReport(context.Background(), uuid.New(), "2025-03")
	require.NoError(t, err)
	assert.Equal(t, 10, repo.topLimit)
}

func TestPaymentBreakdownAverages(t *testing.T) {
	repo := &fakeReportRepo{
		payments: []repository.PaymentRow{
			{Method: "cash", Transactions: 4, TotalAmount: 100000},
			{Method: "mobile_money", Transactions: 3, TotalAmount: 10000},
		},
	}
	svc := newTestReportService(repo, time.Time{})

	report, err := svc.GetWeeklyReport(context.Background(), uuid.New(), "2025-03-10")
	require.NoError(t, err)

	require.Len(t, report.Payments, 2)
	assert.Equal(t, "cash", report.Payments[0].Method)
	assert.Equal(t, 1000.0, report.Payments[0].TotalAmount)
	assert.Equal(t, 250.0, report.Payments[0].AvgAmount)
	assert.Equal(t, 33.33, report.Payments[1].AvgAmount)
}

func TestPaymentTotalsMatchSummaryRevenue(t *testing.T) {
	// Four sales: Tuesday 40000 + 20000 cash, Thursday 25000 mobile money
	// and 15000 cash. Both query results describe the same sales, so the
	// payment totals must add up to the summary revenue.
	repo := &fakeReportRepo{
		dailySales: []repository.DailySalesRow{
			{SaleDate: "2025-03-11", SalesCount: 2, Revenue: 60000},
			{SaleDate: "2025-03-13", SalesCount: 2, Revenue: 40000},
		},
		payments: []repository.PaymentRow{
			{Method: "cash", Transactions: 3, TotalAmount: 75000},
			{Method: "mobile_money", Transactions: 1, TotalAmount: 25000},
		},
	}
	svc := newTestReportService(repo, time.Time{})

	report, err := svc.GetWeeklyReport(context.Background(), uuid.New(), "2025-03-10")
	require.NoError(t, err)

	var paid float64
	for _, p := range report.Payments {
		paid += p.TotalAmount
	}
	assert.Equal(t, report.Summary.TotalRevenue, paid)
	assert.Equal(t, 1000.0, paid)
}

func TestMonthlyReportKPIs(t *testing.T) {
	repo := &fakeReportRepo{
		dailySales: []repository.DailySalesRow{
			{SaleDate: "2025-03-03", SalesCount: 2, Revenue: 50000},
			{SaleDate: "2025-03-10", SalesCount: 3, Revenue: 70100},
			{SaleDate: "2025-03-21", SalesCount: 2, Revenue: 19900},
		},
	}
	svc := newTestReportService(repo, time.Time{})

	report, err := svc.GetMonthlyReport(context.Background(), uuid.New(), "2025-03")
	require.NoError(t, err)

	require.Len(t, report.Days, 31)
	assert.Equal(t, 3, report.KPIs.DaysWithSales)
	// 7 sales over 3 active days
	assert.Equal(t, 2.3, report.KPIs.AvgDailySales)
	// 1400.00 over 3 active days, rounded to the nearest unit
	assert.Equal(t, 467.0, report.KPIs.AvgDailyRevenue)
}

func TestMonthlyReportKPIsZeroWhenNoSales(t *testing.T) {
	svc := newTestReportService(&fakeReportRepo{}, time.Time{})

	report, err := svc.GetMonthlyReport(context.Background(), uuid.New(), "2025-02")
	require.NoError(t, err)

	assert.Zero(t, report.KPIs.DaysWithSales)
	assert.Zero(t, report.KPIs.AvgDailySales)
	assert.Zero(t, report.KPIs.AvgDailyRevenue)
}

func TestMonthlyReportBestDays(t *testing.T) {
	repo := &fakeReportRepo{
		dailySales: []repository.DailySalesRow{
			{SaleDate: "2025-03-01", SalesCount: 1, Revenue: 10000},
			{SaleDate: "2025-03-02", SalesCount: 1, Revenue: 50000},
			{SaleDate: "2025-03-03", SalesCount: 1, Revenue: 30000},
			{SaleDate: "2025-03-04", SalesCount: 1, Revenue: 50000},
			{SaleDate: "2025-03-05", SalesCount: 1, Revenue: 20000},
			{SaleDate: "2025-03-06", SalesCount: 1, Revenue: 40000},
			{SaleDate: "2025-03-07", SalesCount: 1, Revenue: 25000},
		},
	}
	svc := newTestReportService(repo, time.Time{})

	report, err := svc.GetMonthlyReport(context.Background(), uuid.New(), "2025-03")
	require.NoError(t, err)

	require.Len(t, report.BestDays, 5)
	// Descending by revenue; the tie keeps calendar order
	assert.Equal(t, "2025-03-02", report.BestDays[0].Date)
	assert.Equal(t, "2025-03-04", report.BestDays[1].Date)
	assert.Equal(t, "2025-03-06", report.BestDays[2].Date)
	assert.Equal(t, "2025-03-03", report.BestDays[3].Date)
	assert.Equal(t, "2025-03-07", report.BestDays[4].Date)
}

func TestMonthlyReportBestDaysSkipsZeroRevenue(t *testing.T) {
	repo := &fakeReportRepo{
		dailySales: []repository.DailySalesRow{
			{SaleDate: "2025-03-05", SalesCount: 2, Revenue: 15000},
		},
	}
	svc := newTestReportService(repo, time.Time{})

	report, err := svc.GetMonthlyReport(context.Background(), uuid.New(), "2025-03")
	require.NoError(t, err)

	require.Len(t, report.BestDays, 1)
	assert.Equal(t, "2025-03-05", report.BestDays[0].Date)
}

func TestMonthlyReportInventoryDeltas(t *testing.T) {
	repo := &fakeReportRepo{
		phoneStatus: []repository.StatusCountRow{
			{Status: int64(enum.PhoneStatusInStock), Count: 5},
			{Status: int64(enum.PhoneStatusSold), Count: 3},
			{Status: int64(enum.PhoneStatusTransferred), Count: 1},
		},
		accStatus: []repository.StatusCountRow{
			{Status: int64(enum.AccessoryStatusInStock), Count: 4, Units: 80},
			{Status: int64(enum.AccessoryStatusOutOfStock), Count: 2, Units: 0},
		},
		transfers: repository.TransferCountsRow{
			PhoneTransfers:     1,
			AccessoryTransfers: 2,
			AccessoryUnits:     12,
		},
	}
	svc := newTestReportService(repo, time.Time{})

	report, err := svc.GetMonthlyReport(context.Background(), uuid.New(), "2025-03")
	require.NoError(t, err)

	assert.Equal(t, int64(9), report.Inventory.Phones.Added)
	assert.Equal(t, int64(5), report.Inventory.Phones.InStock)
	assert.Equal(t, int64(3), report.Inventory.Phones.Sold)
	assert.Equal(t, int64(1), report.Inventory.Phones.Transferred)

	assert.Equal(t, int64(6), report.Inventory.Accessories.Added)
	assert.Equal(t, int64(80), report.Inventory.Accessories.UnitsAdded)
	assert.Equal(t, int64(2), report.Inventory.Accessories.OutOfStock)

	assert.Equal(t, int64(1), report.Inventory.PhoneTransfers)
	assert.Equal(t, int64(2), report.Inventory.AccessoryTransfers)
	assert.Equal(t, int64(12), report.Inventory.TransferredUnits)
}

func TestMonthlyReportRejectsBadMonth(t *testing.T) {
	svc := newTestReportService(&fakeReportRepo{}, time.Time{})

	_, err := svc.GetMonthlyReport(context.Background(), uuid.New(), "2025-03-01")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
