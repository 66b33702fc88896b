package services

import (
	"encoding/json"
	"testing"

	"github.com/FAMH/Collection-Gateway/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReportRequest(t *testing.T) {
	base := models.ReportRequest{ReportType: models.ReportRevenue}

	tests := []struct {
		name    string
		mutate  func(*models.ReportRequest)
		wantErr string
	}{
		{
			name:    "missing report type",
			mutate:  func(r *models.ReportRequest) { r.ReportType = "" },
			wantErr: "Please select a report type.",
		},
		{
			name: "date range missing end",
			mutate: func(r *models.ReportRequest) {
				r.ReportPeriodType = models.PeriodDateRange
				r.StartDate = "2026-01-01"
			},
			wantErr: "Please select start and end dates.",
		},
		{
			name: "inverted date range",
			mutate: func(r *models.ReportRequest) {
				r.ReportPeriodType = models.PeriodDateRange
				r.StartDate = "2026-02-01"
				r.EndDate = "2026-01-01"
			},
			wantErr: "Start date cannot be after end date.",
		},
		{
			name:    "month period without month",
			mutate:  func(r *models.ReportRequest) { r.ReportPeriodType = models.PeriodMonth },
			wantErr: "Please select a month.",
		},
		{
			name:    "year period without year",
			mutate:  func(r *models.ReportRequest) { r.ReportPeriodType = models.PeriodYear },
			wantErr: "Please select a year.",
		},
		{
			name:    "single day without date",
			mutate:  func(r *models.ReportRequest) { r.ReportPeriodType = models.PeriodSingleDay },
			wantErr: "Please select a date.",
		},
		{
			name: "valid single day",
			mutate: func(r *models.ReportRequest) {
				r.ReportPeriodType = models.PeriodSingleDay
				r.SelectedDate = "2026-03-14"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)
			err := ValidateReportRequest(req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestBuildRevenueReportTotalsParseableBuckets(t *testing.T) {
	rows := []models.ReportRow{
		{Date: "2026-01-03", TotalRevenue: json.Number("120.50")},
		{Date: "2026-01-04", TotalRevenue: json.Number("")},
		{Date: "2026-01-05", TotalRevenue: json.Number("30")},
	}

	report := BuildRevenueReport(rows, models.PeriodDateRange)
	require.Len(t, report.Rows, 3)
	assert.Equal(t, "Date", report.DateLabel)
	assert.Equal(t, "$120.50", report.Rows[0].Revenue)
	// Unparseable values render N/A but count 0 toward the total.
	assert.Equal(t, "N/A", report.Rows[1].Revenue)
	assert.Equal(t, "$30.00", report.Rows[2].Revenue)
	assert.Equal(t, "$150.50", report.Total)
}

func TestBuildRevenueReportYearPeriodUsesMonthBuckets(t *testing.T) {
	rows := []models.ReportRow{
		{Date: "2025-01", TotalRevenue: json.Number("10")},
		{Date: "2025-11", TotalRevenue: json.Number("20")},
	}

	report := BuildRevenueReport(rows, models.PeriodYear)
	assert.Equal(t, "Month", report.DateLabel)
	assert.Equal(t, "January 2025", report.Rows[0].Label)
	assert.Equal(t, "November 2025", report.Rows[1].Label)
}

func TestBuildSingleDayReportGroupsByTransaction(t *testing.T) {
	rows := []models.ReportRow{
		{TransactionID: 7, TransactionDate: "2026-02-10T14:30:00", Username: "clerk1", TransactionType: "Credit Card", PaymentStatus: "Completed", ItemID: 1, ItemName: "Poster", Category: "Prints", Quantity: 3, PriceAtPurchase: json.Number("5.00"), ItemTotal: json.Number("15.00")},
		{TransactionID: 9, TransactionDate: "2026-02-10T15:00:00", Username: "clerk2", TransactionType: "Cash", PaymentStatus: "Completed", ItemID: 2, ItemName: "Mug", Category: "Homeware", Quantity: 1, PriceAtPurchase: json.Number("7.00"), ItemTotal: json.Number("7.00")},
		{TransactionID: 7, TransactionDate: "2026-02-10T14:30:00", Username: "clerk1", TransactionType: "Credit Card", PaymentStatus: "Completed", ItemID: 3, ItemName: "Tote Bag", Category: "Apparel", Quantity: 2, PriceAtPurchase: json.Number("10.00"), ItemTotal: json.Number("20.00")},
	}

	report := BuildSingleDayReport(rows)
	require.Len(t, report.Transactions, 2)

	// First-seen order, not numeric order of IDs.
	first := report.Transactions[0]
	assert.Equal(t, 7, first.TransactionID)
	require.Len(t, first.Items, 2)
	assert.Equal(t, "$35.00", first.Subtotal)
	assert.Equal(t, "Poster", first.Items[0].Name)
	assert.Equal(t, "Tote Bag", first.Items[1].Name)

	second := report.Transactions[1]
	assert.Equal(t, 9, second.TransactionID)
	assert.Equal(t, "$7.00", second.Subtotal)

	assert.Equal(t, "$42.00", report.GrandTotal)
}

func TestBuildSingleDayReportCoercesBadAmounts(t *testing.T) {
	rows := []models.ReportRow{
		{TransactionID: 1, ItemID: 1, ItemName: "Pin", Quantity: 1, PriceAtPurchase: json.Number("oops"), ItemTotal: json.Number("")},
		{TransactionID: 1, ItemID: 2, ItemName: "Card", Quantity: 1, PriceAtPurchase: json.Number("2.00"), ItemTotal: json.Number("2.00")},
	}

	report := BuildSingleDayReport(rows)
	require.Len(t, report.Transactions, 1)
	items := report.Transactions[0].Items
	require.Len(t, items, 2)
	assert.Equal(t, "N/A", items[0].Price)
	assert.Equal(t, "N/A", items[0].Total)
	// The bad line contributes nothing to the subtotal.
	assert.Equal(t, "$2.00", report.Transactions[0].Subtotal)
}

func TestBuildDetailsReportFormatsMoney(t *testing.T) {
	rows := []models.ReportRow{
		{TransactionID: 4, TransactionDate: "2026-05-01T09:15:30", Username: "clerk1", TransactionType: "Cash", PaymentStatus: "Completed", ItemID: 11, ItemName: "Catalog", Quantity: 2, PriceAtPurchase: json.Number("12.5"), ItemTotal: json.Number("25")},
	}

	report := BuildDetailsReport(rows)
	require.Len(t, report.Rows, 1)
	row := report.Rows[0]
	assert.Equal(t, "$12.50", row.PriceAtPurchase)
	assert.Equal(t, "$25.00", row.ItemTotal)
	assert.Equal(t, "5/1/2026, 9:15:30 AM", row.TransactionDate)
}

func TestTabulateSingleDayAppendsGrandTotalFooter(t *testing.T) {
	report := &Report{
		Kind:       models.ReportRevenue,
		PeriodType: models.PeriodSingleDay,
		SingleDay: BuildSingleDayReport([]models.ReportRow{
			{TransactionID: 1, ItemID: 1, ItemName: "Pin", Quantity: 1, PriceAtPurchase: json.Number("2.00"), ItemTotal: json.Number("2.00")},
		}),
	}

	table := report.Tabulate()
	assert.Equal(t, "Revenue Report - Single Day", table.Title)
	require.Len(t, table.Rows, 1)
	require.Len(t, table.Footer, len(table.Columns))
	assert.Equal(t, "Total:", table.Footer[len(table.Footer)-2])
	assert.Equal(t, "$2.00", table.Footer[len(table.Footer)-1])
}

func TestTabulateRevenueAppendsTotalRow(t *testing.T) {
	report := &Report{
		Kind:       models.ReportRevenue,
		PeriodType: models.PeriodDateRange,
		Revenue: BuildRevenueReport([]models.ReportRow{
			{Date: "2026-01-03", TotalRevenue: json.Number("10")},
		}, models.PeriodDateRange),
	}

	table := report.Tabulate()
	assert.Equal(t, "Revenue Report", table.Title)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"Total Revenue", "$10.00"}, table.Rows[1])
	// The on-screen total row is part of the body; only single-day uses
	// the footer.
	assert.Empty(t, table.Footer)
}

func TestTabulateDetails(t *testing.T) {
	report := &Report{
		Kind:       models.ReportTransactionDetails,
		PeriodType: models.PeriodMonth,
		Details: BuildDetailsReport([]models.ReportRow{
			{TransactionID: 4, ItemID: 11, ItemName: "Catalog", Quantity: 2, PriceAtPurchase: json.Number("12.5"), ItemTotal: json.Number("25")},
		}),
	}

	table := report.Tabulate()
	assert.Equal(t, "Transaction Details Report", table.Title)
	require.Len(t, table.Columns, 10)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Catalog", table.Rows[0][6])
}
