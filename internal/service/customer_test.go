package service

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/ledgerdash/ledgerdash/internal/model"
)

type fakeCustomerStore struct {
	created *model.Customer
	updated *model.Customer
	deleted string
	err     error
}

func (f *fakeCustomerStore) CreateCustomer(ctx context.Context, c *model.Customer) error {
	if f.err != nil {
		return f.err
	}
	f.created = c
	return nil
}

func (f *fakeCustomerStore) UpdateCustomer(ctx context.Context, c *model.Customer) error {
	if f.err != nil {
		return f.err
	}
	f.updated = c
	return nil
}

func (f *fakeCustomerStore) DeleteCustomer(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = id
	return nil
}

func validCustomerValues() url.Values {
	return url.Values{
		"name":      {"Ada Lovelace"},
		"email":     {"ada@example.com"},
		"image_url": {"https://example.com/ada.png"},
	}
}

func TestCustomerCreate_Success(t *testing.T) {
	t.Parallel()

	store := &fakeCustomerStore{}
	views := &fakeInvalidator{}
	svc := NewCustomerService(store, views, discardLogger(), nil)

	res := svc.Create(context.Background(), validCustomerValues())

	if res.Kind != KindRedirect || res.RedirectPath != PathCustomers {
		t.Fatalf("expected redirect to %s, got %+v", PathCustomers, res)
	}
	if store.created == nil {
		t.Fatal("expected customer to be persisted")
	}
	if store.created.ID == "" {
		t.Error("expected server-generated id")
	}
	if store.created.Name != "Ada Lovelace" || store.created.Email != "ada@example.com" {
		t.Errorf("unexpected persisted customer: %+v", store.created)
	}
	if store.created.ImageURL != "https://example.com/ada.png" {
		t.Errorf("expected image url to be persisted, got %q", store.created.ImageURL)
	}
	if len(views.paths) != 1 || views.paths[0] != PathCustomers {
		t.Errorf("expected customers view invalidation, got %v", views.paths)
	}
}

func TestCustomerCreate_ValidationFailed(t *testing.T) {
	t.Parallel()

	store := &fakeCustomerStore{}
	svc := NewCustomerService(store, &fakeInvalidator{}, discardLogger(), nil)

	res := svc.Create(context.Background(), url.Values{
		"name":  {"Ada"},
		"email": {"not-an-email"},
	})

	if res.Kind != KindValidationFailed {
		t.Fatalf("expected validation failure, got kind %d", res.Kind)
	}
	if res.Message != "Missing Fields. Failed to Create Customer." {
		t.Errorf("unexpected message %q", res.Message)
	}
	if len(res.Errors) != 2 {
		t.Errorf("expected two violated fields, got %v", res.Errors)
	}
	if store.created != nil {
		t.Error("no statement may run on validation failure")
	}
}

func TestCustomerUpdate_PersistFailed(t *testing.T) {
	t.Parallel()

	store := &fakeCustomerStore{err: errors.New("boom")}
	svc := NewCustomerService(store, &fakeInvalidator{}, discardLogger(), nil)

	res := svc.Update(context.Background(), "cus-1", validCustomerValues())

	if res.Kind != KindPersistFailed {
		t.Fatalf("expected persist failure, got kind %d", res.Kind)
	}
	if res.Message != "Database Error: Failed to Update Customer." {
		t.Errorf("unexpected message %q", res.Message)
	}
}

func TestCustomerDelete(t *testing.T) {
	t.Parallel()

	store := &fakeCustomerStore{}
	views := &fakeInvalidator{}
	svc := NewCustomerService(store, views, discardLogger(), nil)

	res := svc.Delete(context.Background(), "cus-1")

	if res.Kind != KindDeleted {
		t.Fatalf("expected deleted, got kind %d", res.Kind)
	}
	if res.Message != "Deleted Customer." {
		t.Errorf("unexpected message %q", res.Message)
	}
	if store.deleted != "cus-1" {
		t.Errorf("expected delete of cus-1, got %s", store.deleted)
	}
}
