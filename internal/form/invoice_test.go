package form

import (
	"net/url"
	"testing"
)

func TestParseCreateInvoice_Valid(t *testing.T) {
	t.Parallel()

	values := url.Values{
		"customerId": {"01HZXC5N8PQRS2T3U4V5W6X7Y8"},
		"amount":     {"12.50"},
		"status":     {"pending"},
	}

	f, errs := ParseCreateInvoice(values)
	if errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if f.CustomerID != "01HZXC5N8PQRS2T3U4V5W6X7Y8" {
		t.Errorf("unexpected customer id: %s", f.CustomerID)
	}
	if f.Amount != 12.50 {
		t.Errorf("expected amount 12.50, got %v", f.Amount)
	}
	if f.Status != "pending" {
		t.Errorf("expected status pending, got %s", f.Status)
	}
}

func TestParseCreateInvoice_Violations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values url.Values
		field  string
		want   string
	}{
		{
			name: "missing_customer",
			values: url.Values{
				"amount": {"12.50"},
				"status": {"pending"},
			},
			field: "customerId",
			want:  MsgSelectCustomer,
		},
		{
			name: "zero_amount",
			values: url.Values{
				"customerId": {"c1"},
				"amount":     {"0"},
				"status":     {"pending"},
			},
			field: "amount",
			want:  MsgInvalidAmount,
		},
		{
			name: "negative_amount",
			values: url.Values{
				"customerId": {"c1"},
				"amount":     {"-5"},
				"status":     {"pending"},
			},
			field: "amount",
			want:  MsgInvalidAmount,
		},
		{
			name: "unparseable_amount",
			values: url.Values{
				"customerId": {"c1"},
				"amount":     {"twelve"},
				"status":     {"pending"},
			},
			field: "amount",
			want:  MsgInvalidAmount,
		},
		{
			name: "missing_status",
			values: url.Values{
				"customerId": {"c1"},
				"amount":     {"12.50"},
			},
			field: "status",
			want:  MsgSelectStatus,
		},
		{
			name: "unknown_status",
			values: url.Values{
				"customerId": {"c1"},
				"amount":     {"12.50"},
				"status":     {"overdue"},
			},
			field: "status",
			want:  MsgSelectStatus,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f, errs := ParseCreateInvoice(test.values)
			if f != nil {
				t.Fatal("expected nil form on violation")
			}
			msgs := errs[test.field]
			if len(msgs) != 1 || msgs[0] != test.want {
				t.Fatalf("expected [%q] for %s, got %v", test.want, test.field, msgs)
			}
		})
	}
}

func TestParseCreateInvoice_ZeroAmountOnly(t *testing.T) {
	t.Parallel()

	// A submission that fails only the amount rule reports only the
	// amount message; the valid fields stay clean.
	values := url.Values{
		"customerId": {"c1"},
		"amount":     {"0"},
		"status":     {"pending"},
	}

	_, errs := ParseCreateInvoice(values)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one violated field, got %v", errs)
	}
	if _, ok := errs["amount"]; !ok {
		t.Fatalf("expected amount violation, got %v", errs)
	}
}

func TestParseCreateInvoice_AllMissing(t *testing.T) {
	t.Parallel()

	_, errs := ParseCreateInvoice(url.Values{})
	if len(errs) != 3 {
		t.Fatalf("expected three violated fields, got %v", errs)
	}
	for field, want := range map[string]string{
		"customerId": MsgSelectCustomer,
		"amount":     MsgInvalidAmount,
		"status":     MsgSelectStatus,
	} {
		msgs := errs[field]
		if len(msgs) != 1 || msgs[0] != want {
			t.Errorf("field %s: expected [%q], got %v", field, want, msgs)
		}
	}
}

func TestParseUpdateInvoice_IgnoresIDAndDate(t *testing.T) {
	t.Parallel()

	// id and date keys in the submission are not part of the schema and
	// must not leak into the parsed form or trip validation.
	values := url.Values{
		"id":         {"forged-id"},
		"date":       {"1999-01-01"},
		"customerId": {"c1"},
		"amount":     {"25"},
		"status":     {"paid"},
	}

	f, errs := ParseUpdateInvoice(values)
	if errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if f.Amount != 25 || f.Status != "paid" {
		t.Errorf("unexpected parsed form: %+v", f)
	}
}

func TestAmountCents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount float64
		want   int64
	}{
		{12.50, 1250},
		{0.07, 7},
		{19.99, 1999},
		{1, 100},
		{350.00, 35000},
	}

	for _, test := range tests {
		if got := AmountCents(test.amount); got != test.want {
			t.Errorf("AmountCents(%v) = %d, want %d", test.amount, got, test.want)
		}
	}
}
