package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ledgerdash/ledgerdash/internal/model"
)

// Common errors for customer repository operations.
var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrCustomerEmailExists = errors.New("customer email already exists")
	ErrCustomerHasInvoices = errors.New("customer still has invoices")
)

// CreateCustomer inserts a new customer into the database.
func (r *Repository) CreateCustomer(ctx context.Context, c *model.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		c.ID,
		c.Name,
		c.Email,
		c.ImageURL,
		c.CreatedAt,
		c.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrCustomerEmailExists
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

// GetCustomerByID retrieves a customer by its ID.
func (r *Repository) GetCustomerByID(ctx context.Context, id string) (*model.Customer, error) {
	query := `
		SELECT id, name, email, image_url, created_at, updated_at
		FROM customers
		WHERE id = $1
	`

	var c model.Customer
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.ImageURL,
		&c.CreatedAt,
		&c.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by ID: %w", err)
	}

	return &c, nil
}

// ListCustomers retrieves all customers ordered by name.
func (r *Repository) ListCustomers(ctx context.Context) ([]*model.Customer, error) {
	query := `
		SELECT id, name, email, image_url, created_at, updated_at
		FROM customers
		ORDER BY name ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []*model.Customer
	for rows.Next() {
		var c model.Customer
		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Email,
			&c.ImageURL,
			&c.CreatedAt,
			&c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, nil
}

// UpdateCustomer updates a customer's mutable fields by id.
func (r *Repository) UpdateCustomer(ctx context.Context, c *model.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, email = $3, image_url = $4, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		c.ID,
		c.Name,
		c.Email,
		c.ImageURL,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrCustomerEmailExists
		}
		return fmt.Errorf("failed to update customer: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// DeleteCustomer removes a customer by id.
// Fails if invoices still reference the customer.
func (r *Repository) DeleteCustomer(ctx context.Context, id string) error {
	query := `DELETE FROM customers WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrCustomerHasInvoices
		}
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}

	return nil
}
