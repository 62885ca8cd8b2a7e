package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ledgerdash/ledgerdash/internal/model"
)

// Common errors for invoice repository operations.
var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrCustomerMissing = errors.New("referenced customer does not exist")
)

// CreateInvoice inserts a new invoice into the database.
func (r *Repository) CreateInvoice(ctx context.Context, inv *model.Invoice) error {
	query := `
		INSERT INTO invoices (id, customer_id, amount_cents, status, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		inv.ID,
		inv.CustomerID,
		inv.AmountCents,
		inv.Status,
		inv.Date,
		inv.CreatedAt,
		inv.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrCustomerMissing
		}
		return fmt.Errorf("failed to create invoice: %w", err)
	}

	return nil
}

// GetInvoiceByID retrieves an invoice by its ID.
func (r *Repository) GetInvoiceByID(ctx context.Context, id string) (*model.Invoice, error) {
	query := `
		SELECT id, customer_id, amount_cents, status, date, created_at, updated_at
		FROM invoices
		WHERE id = $1
	`

	var inv model.Invoice
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&inv.ID,
		&inv.CustomerID,
		&inv.AmountCents,
		&inv.Status,
		&inv.Date,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice by ID: %w", err)
	}

	return &inv, nil
}

// ListInvoices retrieves invoices joined with their customer, newest first.
func (r *Repository) ListInvoices(ctx context.Context) ([]*model.InvoiceRow, error) {
	query := `
		SELECT i.id, i.customer_id, i.amount_cents, i.status, i.date, i.created_at, i.updated_at,
		       c.name, c.email
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		ORDER BY i.date DESC, i.id DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*model.InvoiceRow
	for rows.Next() {
		var row model.InvoiceRow
		err := rows.Scan(
			&row.ID,
			&row.CustomerID,
			&row.AmountCents,
			&row.Status,
			&row.Date,
			&row.CreatedAt,
			&row.UpdatedAt,
			&row.CustomerName,
			&row.CustomerEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoices: %w", err)
	}

	return invoices, nil
}

// UpdateInvoice updates an invoice's mutable fields by id.
// The date is immutable once set at creation.
func (r *Repository) UpdateInvoice(ctx context.Context, inv *model.Invoice) error {
	query := `
		UPDATE invoices
		SET customer_id = $2, amount_cents = $3, status = $4, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		inv.ID,
		inv.CustomerID,
		inv.AmountCents,
		inv.Status,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrCustomerMissing
		}
		return fmt.Errorf("failed to update invoice: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrInvoiceNotFound
	}

	return nil
}

// DeleteInvoice removes an invoice by id.
func (r *Repository) DeleteInvoice(ctx context.Context, id string) error {
	query := `DELETE FROM invoices WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrInvoiceNotFound
	}

	return nil
}
