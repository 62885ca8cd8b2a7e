package model

// DashboardStats aggregates the figures shown on the dashboard overview.
type DashboardStats struct {
	InvoiceCount  int64 `json:"invoice_count"`
	CustomerCount int64 `json:"customer_count"`
	PaidCents     int64 `json:"paid_cents"`
	PendingCents  int64 `json:"pending_cents"`
}
