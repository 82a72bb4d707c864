package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/phonehub/phonehub-api/internal/domain/enum"
	"github.com/phonehub/phonehub-api/internal/domain/repository"
	"github.com/phonehub/phonehub-api/pkg/apperror"
	"github.com/phonehub/phonehub-api/pkg/period"
)

// Ranking limits per granularity
const (
	weeklyTopLimit  = 5
	monthlyTopLimit = 10
	bestDaysLimit   = 5
)

// ReportService aggregates a user's sales, inventory and transfer activity
// into weekly and monthly reports. All derived data is recomputed per request;
// nothing is cached.
type ReportService struct {
	reportRepo repository.ReportRepository
	now        func() time.Time
}

// NewReportService creates a new report service
func NewReportService(reportRepo repository.ReportRepository) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		now:        time.Now,
	}
}

// DailyBucket is one calendar day's aggregated metrics. Every day of the
// period gets exactly one bucket, zero-filled when no sales occurred.
type DailyBucket struct {
	Date           string  `json:"date"` // YYYY-MM-DD
	Day            int     `json:"day"`  // day of month
	SalesCount     int64   `json:"sales_count"`
	Revenue        float64 `json:"revenue"`
	PhoneCount     int64   `json:"phone_count"`
	AccessoryCount int64   `json:"accessory_count"`
	AccessoryUnits int64   `json:"accessory_units"`
}

// ReportSummary totals the period. All fields are zero-valued, never absent,
// when the user had no activity.
type ReportSummary struct {
	TotalSales     int64   `json:"total_sales"`
	TotalRevenue   float64 `json:"total_revenue"`
	PhoneSales     int64   `json:"phone_sales"`
	AccessorySales int64   `json:"accessory_sales"`
	AccessoryUnits int64   `json:"accessory_units"`
}

// TopItem is one entry in the merged best-sellers ranking
type TopItem struct {
	ItemType   enum.ItemType `json:"item_type"`
	ItemID     uuid.UUID     `json:"item_id"`
	Name       string        `json:"name"`
	SalesCount int64         `json:"sales_count"`
	UnitsSold  int64         `json:"units_sold"`
	Revenue    float64       `json:"revenue"`
	AvgPrice   float64       `json:"avg_price"`
}

// PaymentBreakdown aggregates the period's sales for one payment method
type PaymentBreakdown struct {
	Method       string  `json:"method"`
	Transactions int64   `json:"transactions"`
	TotalAmount  float64 `json:"total_amount"`
	AvgAmount    float64 `json:"avg_amount"`
}

// MonthlyKPIs are derived indicators for the monthly report
type MonthlyKPIs struct {
	DaysWithSales   int     `json:"days_with_sales"`
	AvgDailySales   float64 `json:"avg_daily_sales"`   // rounded to 1 decimal
	AvgDailyRevenue float64 `json:"avg_daily_revenue"` // rounded to nearest unit
}

// PhoneInventoryDelta counts phones registered in the month by their live
// current status
type PhoneInventoryDelta struct {
	Added       int64 `json:"added"`
	InStock     int64 `json:"in_stock"`
	Sold        int64 `json:"sold"`
	Transferred int64 `json:"transferred"`
	Unavailable int64 `json:"unavailable"`
}

// AccessoryInventoryDelta counts accessory lines registered in the month by
// their live current status
type AccessoryInventoryDelta struct {
	Added       int64 `json:"added"`
	UnitsAdded  int64 `json:"units_added"`
	InStock     int64 `json:"in_stock"`
	OutOfStock  int64 `json:"out_of_stock"`
	Unavailable int64 `json:"unavailable"`
}

// MonthlyInventory combines both inventory deltas with transfer activity
type MonthlyInventory struct {
	Phones             PhoneInventoryDelta     `json:"phones"`
	Accessories        AccessoryInventoryDelta `json:"accessories"`
	PhoneTransfers     int64                   `json:"phone_transfers"`
	AccessoryTransfers int64                   `json:"accessory_transfers"`
	TransferredUnits   int64                   `json:"transferred_units"`
}

// WeeklyReport is the full weekly report payload
type WeeklyReport struct {
	Period   period.Period      `json:"period"`
	Days     []DailyBucket      `json:"days"`
	Summary  ReportSummary      `json:"summary"`
	TopItems []TopItem          `json:"top_items"`
	Payments []PaymentBreakdown `json:"payments"`
}

// MonthlyReport is the full monthly report payload
type MonthlyReport struct {
	Period    period.Period      `json:"period"`
	Days      []DailyBucket      `json:"days"`
	Summary   ReportSummary      `json:"summary"`
	KPIs      MonthlyKPIs        `json:"kpis"`
	Inventory MonthlyInventory   `json:"inventory"`
	TopItems  []TopItem          `json:"top_items"`
	BestDays  []DailyBucket      `json:"best_days"`
	Payments  []PaymentBreakdown `json:"payments"`
}

// GetWeeklyReport builds the weekly report for one user. An empty weekStart
// defaults to the Monday of the current ISO week; otherwise it must be a
// YYYY-MM-DD date and the report covers that day plus the following six.
func (s *ReportService) GetWeeklyReport(ctx context.Context, userID uuid.UUID, weekStart string) (*WeeklyReport, error) {
	p, err := period.WeekOf(weekStart, s.now())
	if err != nil {
		return nil, apperror.NewInvalidPeriodError(err.Error())
	}

	days, summary, err := s.buildBuckets(ctx, userID, p)
	if err != nil {
		return nil, err
	}

	topItems, err := s.buildTopItems(ctx, userID, p, weeklyTopLimit)
	if err != nil {
		return nil, err
	}

	payments, err := s.buildPaymentBreakdown(ctx, userID, p)
	if err != nil {
		return nil, err
	}

	return &WeeklyReport{
		Period:   p,
		Days:     days,
		Summary:  summary,
		TopItems: topItems,
		Payments: payments,
	}, nil
}

// GetMonthlyReport builds the monthly report for one user. An empty month
// defaults to the current calendar month; otherwise it must be YYYY-MM.
func (s *ReportService) GetMonthlyReport(ctx context.Context, userID uuid.UUID, month string) (*MonthlyReport, error) {
	p, err := period.MonthOf(month, s.now())
	if err != nil {
		return nil, apperror.NewInvalidPeriodError(err.Error())
	}

	days, summary, err := s.buildBuckets(ctx, userID, p)
	if err != nil {
		return nil, err
	}

	topItems, err := s.buildTopItems(ctx, userID, p, monthlyTopLimit)
	if err != nil {
		return nil, err
	}

	payments, err := s.buildPaymentBreakdown(ctx, userID, p)
	if err != nil {
		return nil, err
	}

	inventory, err := s.buildInventory(ctx, userID, p)
	if err != nil {
		return nil, err
	}

	return &MonthlyReport{
		Period:    p,
		Days:      days,
		Summary:   summary,
		KPIs:      computeKPIs(days, summary),
		Inventory: *inventory,
		TopItems:  topItems,
		BestDays:  bestDays(days, bestDaysLimit),
		Payments:  payments,
	}, nil
}

// buildBuckets builds the zero-filled calendar skeleton first, then overlays
// query rows by date-key lookup. The summary is totalled from the buckets so
// the two can never disagree.
func (s *ReportService) buildBuckets(ctx context.Context, userID uuid.UUID, p period.Period) ([]DailyBucket, ReportSummary, error) {
	rows, err := s.reportRepo.DailySales(ctx, userID, p.Start, p.End)
	if err != nil {
		return nil, ReportSummary{}, apperror.NewDataAccessError(err)
	}

	dates := p.Dates()
	buckets := make([]DailyBucket, 0, len(dates))
	index := make(map[string]int, len(dates))
	for i, d := range dates {
		buckets = append(buckets, DailyBucket{
			Date: d.Format(period.DateLayout),
			Day:  d.Day(),
		})
		index[buckets[i].Date] = i
	}

	for _, row := range rows {
		i, ok := index[row.SaleDate]
		if !ok {
			continue // outside the skeleton, should not happen with a range-bound query
		}
		buckets[i].SalesCount = row.SalesCount
		buckets[i].Revenue = centsToDecimal(row.Revenue)
		buckets[i].PhoneCount = row.PhoneCount
		buckets[i].AccessoryCount = row.AccessoryCount
		buckets[i].AccessoryUnits = row.AccessoryUnits
	}

	var summary ReportSummary
	for _, b := range buckets {
		summary.TotalSales += b.SalesCount
		summary.TotalRevenue += b.Revenue
		summary.PhoneSales += b.PhoneCount
		summary.AccessorySales += b.AccessoryCount
		summary.AccessoryUnits += b.AccessoryUnits
	}
	summary.TotalRevenue = round2(summary.TotalRevenue)

	return buckets, summary, nil
}

// buildTopItems ranks phones and accessories independently (each limited to
// the top N by sales count), then merges the two ranked lists and re-sorts
// the union by sales count descending, truncated to N. The two-stage ranking
// means each item type's own best sellers always compete in the final list.
func (s *ReportService) buildTopItems(ctx context.Context, userID uuid.UUID, p period.Period, limit int) ([]TopItem, error) {
	phones, err := s.reportRepo.TopPhones(ctx, userID, p.Start, p.End, limit)
	if err != nil {
		return nil, apperror.NewDataAccessError(err)
	}

	accessories, err := s.reportRepo.TopAccessories(ctx, userID, p.Start, p.End, limit)
	if err != nil {
		return nil, apperror.NewDataAccessError(err)
	}

	merged := make([]TopItem, 0, len(phones)+len(accessories))
	for _, row := range phones {
		merged = append(merged, TopItem{
			ItemType:   enum.ItemTypePhone,
			ItemID:     row.ItemID,
			Name:       row.ItemName,
			SalesCount: row.SalesCount,
			UnitsSold:  row.UnitsSold,
			Revenue:    centsToDecimal(row.Revenue),
			// A phone sale is one unit, so the average is the raw sale price
			AvgPrice: avgPrice(row.Revenue, row.SalesCount),
		})
	}
	for _, row := range accessories {
		merged = append(merged, TopItem{
			ItemType:   enum.ItemTypeAccessory,
			ItemID:     row.ItemID,
			Name:       row.ItemName,
			SalesCount: row.SalesCount,
			UnitsSold:  row.UnitsSold,
			Revenue:    centsToDecimal(row.Revenue),
			// Accessories sell in multiples; the average is the unit price
			AvgPrice: avgPrice(row.Revenue, row.UnitsSold),
		})
	}

	// Stable sort keeps each type's own descending order on ties
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].SalesCount > merged[j].SalesCount
	})

	if len(merged) > limit {
		merged = merged[:limit]
	}

	return merged, nil
}

func (s *ReportService) buildPaymentBreakdown(ctx context.Context, userID uuid.UUID, p period.Period) ([]PaymentBreakdown, error) {
	rows, err := s.reportRepo.PaymentBreakdown(ctx, userID, p.Start, p.End)
	if err != nil {
		return nil, apperror.NewDataAccessError(err)
	}

	payments := make([]PaymentBreakdown, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, PaymentBreakdown{
			Method:       row.Method,
			Transactions: row.Transactions,
			TotalAmount:  centsToDecimal(row.TotalAmount),
			AvgAmount:    avgPrice(row.TotalAmount, row.Transactions),
		})
	}

	return payments, nil
}

func (s *ReportService) buildInventory(ctx context.Context, userID uuid.UUID, p period.Period) (*MonthlyInventory, error) {
	phoneRows, err := s.reportRepo.PhoneStatusCounts(ctx, userID, p.Start, p.End)
	if err != nil {
		return nil, apperror.NewDataAccessError(err)
	}

	accessoryRows, err := s.reportRepo.AccessoryStatusCounts(ctx, userID, p.Start, p.End)
	if err != nil {
		return nil, apperror.NewDataAccessError(err)
	}

	transfers, err := s.reportRepo.TransferCounts(ctx, userID, p.Start, p.End)
	if err != nil {
		return nil, apperror.NewDataAccessError(err)
	}

	inventory := &MonthlyInventory{
		PhoneTransfers:     transfers.PhoneTransfers,
		AccessoryTransfers: transfers.AccessoryTransfers,
		TransferredUnits:   transfers.AccessoryUnits,
	}

	for _, row := range phoneRows {
		inventory.Phones.Added += row.Count
		switch enum.PhoneStatus(row.Status) {
		case enum.PhoneStatusInStock:
			inventory.Phones.InStock = row.Count
		case enum.PhoneStatusSold:
			inventory.Phones.Sold = row.Count
		case enum.PhoneStatusTransferred:
			inventory.Phones.Transferred = row.Count
		case enum.PhoneStatusUnavailable:
			inventory.Phones.Unavailable = row.Count
		}
	}

	for _, row := range accessoryRows {
		inventory.Accessories.Added += row.Count
		inventory.Accessories.UnitsAdded += row.Units
		switch enum.AccessoryStatus(row.Status) {
		case enum.AccessoryStatusInStock:
			inventory.Accessories.InStock = row.Count
		case enum.AccessoryStatusOutOfStock:
			inventory.Accessories.OutOfStock = row.Count
		case enum.AccessoryStatusUnavailable:
			inventory.Accessories.Unavailable = row.Count
		}
	}

	return inventory, nil
}

// computeKPIs derives the monthly indicators. Averages divide by days that
// actually had sales and are zero when there were none.
func computeKPIs(days []DailyBucket, summary ReportSummary) MonthlyKPIs {
	kpis := MonthlyKPIs{}
	for _, b := range days {
		if b.SalesCount > 0 {
			kpis.DaysWithSales++
		}
	}

	if kpis.DaysWithSales == 0 {
		return kpis
	}

	kpis.AvgDailySales = round1(float64(summary.TotalSales) / float64(kpis.DaysWithSales))
	kpis.AvgDailyRevenue = math.Round(summary.TotalRevenue / float64(kpis.DaysWithSales))
	return kpis
}

// bestDays picks the top revenue days, descending, stable on ties
func bestDays(days []DailyBucket, limit int) []DailyBucket {
	best := make([]DailyBucket, 0, limit)
	for _, b := range days {
		if b.Revenue > 0 {
			best = append(best, b)
		}
	}

	sort.SliceStable(best, func(i, j int) bool {
		return best[i].Revenue > best[j].Revenue
	})

	if len(best) > limit {
		best = best[:limit]
	}

	return best
}

func centsToDecimal(cents int64) float64 {
	return float64(cents) / 100
}

// avgPrice averages a cents total over a count, rounded to 2 decimals
func avgPrice(totalCents, count int64) float64 {
	if count == 0 {
		return 0
	}
	return round2(float64(totalCents) / 100 / float64(count))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
