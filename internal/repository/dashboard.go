package repository

import (
	"context"
	"fmt"

	"github.com/ledgerdash/ledgerdash/internal/model"
)

// GetDashboardStats computes the overview figures in a single statement.
func (r *Repository) GetDashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM invoices),
			(SELECT COUNT(*) FROM customers),
			COALESCE(SUM(CASE WHEN status = 'paid' THEN amount_cents ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'pending' THEN amount_cents ELSE 0 END), 0)
		FROM invoices
	`

	var stats model.DashboardStats
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.InvoiceCount,
		&stats.CustomerCount,
		&stats.PaidCents,
		&stats.PendingCents,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	return &stats, nil
}
