package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ledgerdash/ledgerdash/internal/cache"
	"github.com/ledgerdash/ledgerdash/internal/model"
)

type fakeListingStore struct {
	invoices  []*model.InvoiceRow
	customers []*model.Customer
	stats     *model.DashboardStats
	err       error
	calls     int
}

func (f *fakeListingStore) ListInvoices(ctx context.Context) ([]*model.InvoiceRow, error) {
	f.calls++
	return f.invoices, f.err
}

func (f *fakeListingStore) ListCustomers(ctx context.Context) ([]*model.Customer, error) {
	f.calls++
	return f.customers, f.err
}

func (f *fakeListingStore) GetDashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	f.calls++
	return f.stats, f.err
}

type fakeViewCache struct {
	entries map[string][]byte
}

func newFakeViewCache() *fakeViewCache {
	return &fakeViewCache{entries: make(map[string][]byte)}
}

func (f *fakeViewCache) GetView(ctx context.Context, path string) ([]byte, error) {
	data, ok := f.entries[path]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return data, nil
}

func (f *fakeViewCache) SetView(ctx context.Context, path string, data []byte, ttl time.Duration) error {
	f.entries[path] = data
	return nil
}

func TestInvoicesView_MissComputesAndCaches(t *testing.T) {
	t.Parallel()

	store := &fakeListingStore{
		invoices: []*model.InvoiceRow{
			{Invoice: model.Invoice{ID: "inv-1", AmountCents: 1250}, CustomerName: "Ada Lovelace"},
		},
	}
	views := newFakeViewCache()
	svc := NewListingService(store, views, time.Minute, discardLogger(), nil)

	data, err := svc.InvoicesView(context.Background())
	if err != nil {
		t.Fatalf("InvoicesView failed: %v", err)
	}

	var payload struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(payload.Data) != 1 {
		t.Fatalf("expected one invoice, got %d", len(payload.Data))
	}

	if _, ok := views.entries[PathInvoices]; !ok {
		t.Error("expected rendering to be cached")
	}
}

func TestInvoicesView_HitSkipsStore(t *testing.T) {
	t.Parallel()

	store := &fakeListingStore{}
	views := newFakeViewCache()
	views.entries[PathInvoices] = []byte(`{"data":[]}`)
	svc := NewListingService(store, views, time.Minute, discardLogger(), nil)

	data, err := svc.InvoicesView(context.Background())
	if err != nil {
		t.Fatalf("InvoicesView failed: %v", err)
	}
	if string(data) != `{"data":[]}` {
		t.Errorf("expected cached rendering, got %s", data)
	}
	if store.calls != 0 {
		t.Errorf("cache hit must not touch the store, got %d calls", store.calls)
	}
}

func TestCustomersView_EmptyListRendersEmptyArray(t *testing.T) {
	t.Parallel()

	store := &fakeListingStore{customers: nil}
	svc := NewListingService(store, newFakeViewCache(), time.Minute, discardLogger(), nil)

	data, err := svc.CustomersView(context.Background())
	if err != nil {
		t.Fatalf("CustomersView failed: %v", err)
	}
	if string(data) != `{"data":[]}` {
		t.Errorf("expected empty data array, got %s", data)
	}
}

func TestOverviewView_StoreFailure(t *testing.T) {
	t.Parallel()

	store := &fakeListingStore{err: errors.New("connection refused")}
	svc := NewListingService(store, newFakeViewCache(), time.Minute, discardLogger(), nil)

	if _, err := svc.OverviewView(context.Background()); err == nil {
		t.Fatal("expected store failure to surface")
	}
}
