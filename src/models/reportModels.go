package models

import "encoding/json"

// ReportRow is one flat transaction line (or revenue bucket row) from the
// reports endpoint. Revenue rows carry Date/TotalRevenue; detail rows carry
// the transaction and item fields. Monetary fields arrive as either JSON
// numbers or strings depending on the backend driver, so json.Number keeps
// both shapes intact until coercion.
type ReportRow struct {
	TransactionID   int         `json:"transaction_id"`
	TransactionDate string      `json:"transaction_date"`
	Username        string      `json:"username"`
	TransactionType string      `json:"transaction_type"`
	PaymentStatus   string      `json:"payment_status"`
	ItemID          int         `json:"item_id"`
	ItemName        string      `json:"item_name"`
	Category        string      `json:"category"`
	Quantity        int         `json:"quantity"`
	PriceAtPurchase json.Number `json:"price_at_purchase"`
	ItemTotal       json.Number `json:"item_total"`

	Date         string      `json:"date"`
	TotalRevenue json.Number `json:"total_revenue"`
}

// ReportRequest is the JSON body sent to the upstream reports endpoint.
type ReportRequest struct {
	ReportType       string   `json:"report_type"`
	ReportPeriodType string   `json:"report_period_type"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date"`
	SelectedMonth    string   `json:"selected_month"`
	SelectedYear     string   `json:"selected_year"`
	SelectedDate     string   `json:"selected_date"`
	ItemCategory     []string `json:"item_category"`
	PaymentMethod    []string `json:"payment_method"`
	ItemID           []int    `json:"item_id"`
}

// Report kinds and period kinds accepted by the aggregator.
const (
	ReportRevenue            = "revenue"
	ReportTransactionDetails = "transaction_details"

	PeriodDateRange = "date_range"
	PeriodMonth     = "month"
	PeriodYear      = "year"
	PeriodSingleDay = "single_day"
)

// GiftShopItem is a filter option for report generation.
type GiftShopItem struct {
	ItemID int    `json:"item_id"`
	Name   string `json:"name_"`
}

// GiftShopCategory is a filter option for report generation.
type GiftShopCategory struct {
	Category string `json:"category"`
}

// PaymentMethod is a filter option for report generation.
type PaymentMethod struct {
	TransactionType string `json:"transaction_type"`
}

// ReportTable is the tabular form of a generated report, shared by the
// on-screen JSON rendering and the PDF/XLSX exports so all three apply the
// same columns, grouping and totals.
type ReportTable struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	// Footer is a grand-total row rendered only by the document exports
	// (single-day revenue shows subtotals per transaction on screen but a
	// grand total in the exported document).
	Footer []string `json:"footer,omitempty"`
}
