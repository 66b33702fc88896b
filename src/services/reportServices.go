package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/FAMH/Collection-Gateway/src/api"
	"github.com/FAMH/Collection-Gateway/src/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ReportService generates gift-shop reports: it validates the requested
// period, fetches the flat transaction lines from upstream, and aggregates
// them into the table the caller renders or exports.
type ReportService struct {
	api *api.Client
	log *zap.Logger
}

func NewReportService(client *api.Client, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{api: client, log: logger}
}

// Report is one generated report in its aggregated form. Exactly one of
// Revenue, SingleDay and Details is set, depending on kind and period.
type Report struct {
	Kind       string           `json:"reportType"`
	PeriodType string           `json:"reportPeriodType"`
	Revenue    *RevenueReport   `json:"revenue,omitempty"`
	SingleDay  *SingleDayReport `json:"singleDay,omitempty"`
	Details    *DetailsReport   `json:"details,omitempty"`
}

// RevenueRow is one date or month bucket.
type RevenueRow struct {
	Label string `json:"date"`
	// Revenue is the formatted amount, or "N/A" when the upstream value
	// did not parse as a number (such a value contributes 0 to the total).
	Revenue string `json:"totalRevenue"`
}

// RevenueReport is the bucketed revenue table plus its grand total.
type RevenueReport struct {
	DateLabel string       `json:"dateLabel"`
	Rows      []RevenueRow `json:"rows"`
	Total     string       `json:"total"`
}

// TransactionItem is one purchased line nested under a transaction group.
type TransactionItem struct {
	ItemID   int    `json:"itemId"`
	Name     string `json:"itemName"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
	Price    string `json:"priceAtPurchase"`
	Total    string `json:"itemTotal"`
}

// TransactionGroup is one transaction with its nested items and subtotal.
type TransactionGroup struct {
	TransactionID int               `json:"transactionId"`
	Date          string            `json:"transactionDate"`
	Username      string            `json:"username"`
	PaymentMethod string            `json:"paymentMethod"`
	PaymentStatus string            `json:"paymentStatus"`
	Items         []TransactionItem `json:"items"`
	Subtotal      string            `json:"totalAmount"`
}

// SingleDayReport groups the day's lines by transaction. The main table has
// no grand total; the exported document appends one.
type SingleDayReport struct {
	Transactions []TransactionGroup `json:"transactions"`
	GrandTotal   string             `json:"-"`
}

// DetailRow is one unaggregated transaction line with money formatted to
// two decimals.
type DetailRow struct {
	TransactionID   int    `json:"transactionId"`
	TransactionDate string `json:"transactionDate"`
	Username        string `json:"username"`
	PaymentMethod   string `json:"paymentMethod"`
	PaymentStatus   string `json:"paymentStatus"`
	ItemID          int    `json:"itemId"`
	ItemName        string `json:"itemName"`
	Quantity        int    `json:"quantity"`
	PriceAtPurchase string `json:"priceAtPurchase"`
	ItemTotal       string `json:"itemTotal"`
}

// DetailsReport passes every input line through unaggregated.
type DetailsReport struct {
	Rows []DetailRow `json:"rows"`
}

// money coerces an upstream numeric value. The zero value and ok=false mean
// the cell renders "N/A" and contributes nothing to totals.
func money(n json.Number) (decimal.Decimal, bool) {
	s := strings.TrimSpace(n.String())
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func formatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// formatBucketLabel renders a revenue bucket key: a calendar date for the
// day-grained periods, "January 2006" for the year period's month buckets.
func formatBucketLabel(raw, periodType string) string {
	if raw == "" {
		return "N/A"
	}
	if periodType == models.PeriodYear {
		parts := strings.SplitN(raw, "-", 2)
		if len(parts) == 2 {
			month, err := strconv.Atoi(parts[1])
			if err == nil && month >= 1 && month <= 12 {
				return fmt.Sprintf("%s %s", monthNames[month-1], parts[0])
			}
		}
		return raw
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("1/2/2006")
		}
	}
	return "Invalid Date"
}

// formatTimestamp renders a transaction timestamp for display.
func formatTimestamp(raw string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("1/2/2006, 3:04:05 PM")
		}
	}
	return raw
}

// dateLabel is the first column header of the revenue table: buckets are
// months for the year period and dates otherwise.
func dateLabel(periodType string) string {
	if periodType == models.PeriodYear {
		return "Month"
	}
	return "Date"
}

// BuildRevenueReport buckets are taken as delivered (one row per distinct
// date or month); the total row is the sum of every parseable bucket value.
func BuildRevenueReport(rows []models.ReportRow, periodType string) *RevenueReport {
	report := &RevenueReport{DateLabel: dateLabel(periodType)}
	total := decimal.Zero
	for _, row := range rows {
		out := RevenueRow{Label: formatBucketLabel(row.Date, periodType)}
		if amount, ok := money(row.TotalRevenue); ok {
			out.Revenue = formatMoney(amount)
			total = total.Add(amount)
		} else {
			out.Revenue = "N/A"
		}
		report.Rows = append(report.Rows, out)
	}
	report.Total = formatMoney(total)
	return report
}

// BuildSingleDayReport groups the day's lines by transaction id, first-seen
// order, each group's nested items preserving input order and summing into
// the group subtotal. Unparseable item totals count as 0.
func BuildSingleDayReport(rows []models.ReportRow) *SingleDayReport {
	byID := make(map[int]*TransactionGroup)
	subtotals := make(map[int]decimal.Decimal)
	var order []int

	for _, row := range rows {
		group, ok := byID[row.TransactionID]
		if !ok {
			group = &TransactionGroup{
				TransactionID: row.TransactionID,
				Date:          formatTimestamp(row.TransactionDate),
				Username:      row.Username,
				PaymentMethod: row.TransactionType,
				PaymentStatus: row.PaymentStatus,
			}
			byID[row.TransactionID] = group
			subtotals[row.TransactionID] = decimal.Zero
			order = append(order, row.TransactionID)
		}

		item := TransactionItem{
			ItemID:   row.ItemID,
			Name:     row.ItemName,
			Category: row.Category,
			Quantity: row.Quantity,
		}
		if price, ok := money(row.PriceAtPurchase); ok {
			item.Price = formatMoney(price)
		} else {
			item.Price = "N/A"
		}
		if lineTotal, ok := money(row.ItemTotal); ok {
			item.Total = formatMoney(lineTotal)
			subtotals[row.TransactionID] = subtotals[row.TransactionID].Add(lineTotal)
		} else {
			item.Total = "N/A"
		}
		group.Items = append(group.Items, item)
	}

	report := &SingleDayReport{}
	grand := decimal.Zero
	for _, id := range order {
		group := byID[id]
		group.Subtotal = formatMoney(subtotals[id])
		grand = grand.Add(subtotals[id])
		report.Transactions = append(report.Transactions, *group)
	}
	report.GrandTotal = formatMoney(grand)
	return report
}

// BuildDetailsReport passes lines through unaggregated.
func BuildDetailsReport(rows []models.ReportRow) *DetailsReport {
	report := &DetailsReport{}
	for _, row := range rows {
		out := DetailRow{
			TransactionID:   row.TransactionID,
			TransactionDate: formatTimestamp(row.TransactionDate),
			Username:        row.Username,
			PaymentMethod:   row.TransactionType,
			PaymentStatus:   row.PaymentStatus,
			ItemID:          row.ItemID,
			ItemName:        row.ItemName,
			Quantity:        row.Quantity,
		}
		if price, ok := money(row.PriceAtPurchase); ok {
			out.PriceAtPurchase = formatMoney(price)
		} else {
			out.PriceAtPurchase = "N/A"
		}
		if lineTotal, ok := money(row.ItemTotal); ok {
			out.ItemTotal = formatMoney(lineTotal)
		} else {
			out.ItemTotal = "N/A"
		}
		report.Rows = append(report.Rows, out)
	}
	return report
}

// ValidateReportRequest applies the pre-submission rules; a violation blocks
// the upstream call entirely.
func ValidateReportRequest(req models.ReportRequest) error {
	if req.ReportType != models.ReportRevenue && req.ReportType != models.ReportTransactionDetails {
		return errors.New("Please select a report type.")
	}
	switch req.ReportPeriodType {
	case models.PeriodDateRange:
		if req.StartDate == "" || req.EndDate == "" {
			return errors.New("Please select start and end dates.")
		}
		if req.StartDate > req.EndDate {
			return errors.New("Start date cannot be after end date.")
		}
	case models.PeriodMonth:
		if req.SelectedMonth == "" {
			return errors.New("Please select a month.")
		}
	case models.PeriodYear:
		if req.SelectedYear == "" {
			return errors.New("Please select a year.")
		}
	case models.PeriodSingleDay:
		if req.SelectedDate == "" {
			return errors.New("Please select a date.")
		}
	default:
		return errors.New("Please select a report period type.")
	}
	return nil
}

// Generate validates, fetches and aggregates one report.
func (s *ReportService) Generate(ctx context.Context, auth models.AuthContext, req models.ReportRequest) (*Report, error) {
	if err := ValidateReportRequest(req); err != nil {
		return nil, err
	}

	rows, err := s.api.GenerateReport(ctx, auth, req)
	if err != nil {
		s.log.Warn("report fetch failed", zap.String("report_type", req.ReportType), zap.Error(err))
		return nil, err
	}

	report := &Report{Kind: req.ReportType, PeriodType: req.ReportPeriodType}
	switch {
	case req.ReportType == models.ReportRevenue && req.ReportPeriodType == models.PeriodSingleDay:
		report.SingleDay = BuildSingleDayReport(rows)
	case req.ReportType == models.ReportRevenue:
		report.Revenue = BuildRevenueReport(rows, req.ReportPeriodType)
	default:
		report.Details = BuildDetailsReport(rows)
	}
	return report, nil
}

// Tabulate renders the report's active variant as the one table shared by
// the on-screen view and the document exports: same columns, same grouping,
// same totals.
func (r *Report) Tabulate() models.ReportTable {
	switch {
	case r.SingleDay != nil:
		table := models.ReportTable{
			Title: "Revenue Report - Single Day",
			Columns: []string{
				"Transaction ID", "Transaction Time", "User", "Payment Method",
				"Payment Status", "Items", "Total Amount",
			},
		}
		for _, group := range r.SingleDay.Transactions {
			var lines []string
			for _, item := range group.Items {
				lines = append(lines, fmt.Sprintf("%s\nID: %d\nCategory: %s\nQty: %d\nPrice: %s\nTotal: %s",
					item.Name, item.ItemID, item.Category, item.Quantity, item.Price, item.Total))
			}
			table.Rows = append(table.Rows, []string{
				strconv.Itoa(group.TransactionID),
				group.Date,
				group.Username,
				group.PaymentMethod,
				group.PaymentStatus,
				strings.Join(lines, "\n\n"),
				group.Subtotal,
			})
		}
		table.Footer = []string{"", "", "", "", "", "Total:", r.SingleDay.GrandTotal}
		return table

	case r.Revenue != nil:
		table := models.ReportTable{
			Title:   "Revenue Report",
			Columns: []string{r.Revenue.DateLabel, "Total Revenue"},
		}
		for _, row := range r.Revenue.Rows {
			table.Rows = append(table.Rows, []string{row.Label, row.Revenue})
		}
		table.Rows = append(table.Rows, []string{"Total Revenue", r.Revenue.Total})
		return table

	default:
		table := models.ReportTable{
			Title: "Transaction Details Report",
			Columns: []string{
				"Transaction ID", "Transaction Date", "User", "Payment Method",
				"Payment Status", "Item ID", "Item Name", "Quantity",
				"Price at Purchase", "Item Total",
			},
		}
		if r.Details != nil {
			for _, row := range r.Details.Rows {
				table.Rows = append(table.Rows, []string{
					strconv.Itoa(row.TransactionID),
					row.TransactionDate,
					row.Username,
					row.PaymentMethod,
					row.PaymentStatus,
					strconv.Itoa(row.ItemID),
					row.ItemName,
					strconv.Itoa(row.Quantity),
					row.PriceAtPurchase,
					row.ItemTotal,
				})
			}
		}
		return table
	}
}

// ReportOptions bundles the report filter option lists.
type ReportOptions struct {
	Items          []models.GiftShopItem     `json:"items"`
	Categories     []models.GiftShopCategory `json:"categories"`
	PaymentMethods []models.PaymentMethod    `json:"paymentMethods"`
}

// FetchOptions loads the filter option lists for the report form.
func (s *ReportService) FetchOptions(ctx context.Context) (*ReportOptions, error) {
	items, err := s.api.GiftShopItems(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.api.GiftShopCategories(ctx)
	if err != nil {
		return nil, err
	}
	methods, err := s.api.PaymentMethods(ctx)
	if err != nil {
		return nil, err
	}
	return &ReportOptions{Items: items, Categories: categories, PaymentMethods: methods}, nil
}
