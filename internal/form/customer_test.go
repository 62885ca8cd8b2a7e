package form

import (
	"net/url"
	"testing"
)

func TestParseCreateCustomer_Valid(t *testing.T) {
	t.Parallel()

	values := url.Values{
		"name":      {"Ada Lovelace"},
		"email":     {"ada@example.com"},
		"image_url": {"https://example.com/ada.png"},
	}

	f, errs := ParseCreateCustomer(values)
	if errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if f.Name != "Ada Lovelace" || f.Email != "ada@example.com" {
		t.Errorf("unexpected parsed form: %+v", f)
	}
	if f.ImageURL != "https://example.com/ada.png" {
		t.Errorf("expected image url to be read, got %q", f.ImageURL)
	}
}

func TestParseCreateCustomer_Violations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values url.Values
		field  string
		want   string
	}{
		{
			name: "short_name",
			values: url.Values{
				"name":  {"Ada"},
				"email": {"ada@example.com"},
			},
			field: "name",
			want:  MsgFullName,
		},
		{
			name: "missing_name",
			values: url.Values{
				"email": {"ada@example.com"},
			},
			field: "name",
			want:  MsgFullName,
		},
		{
			name: "missing_email",
			values: url.Values{
				"name": {"Ada Lovelace"},
			},
			field: "email",
			want:  MsgInvalidEmail,
		},
		{
			name: "malformed_email",
			values: url.Values{
				"name":  {"Ada Lovelace"},
				"email": {"not-an-email"},
			},
			field: "email",
			want:  MsgInvalidEmail,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f, errs := ParseCreateCustomer(test.values)
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

func TestParseUpdateCustomer_ImageURLOptional(t *testing.T) {
	t.Parallel()

	values := url.Values{
		"name":  {"Grace Hopper"},
		"email": {"grace@example.com"},
	}

	f, errs := ParseUpdateCustomer(values)
	if errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if f.ImageURL != "" {
		t.Errorf("expected empty image url, got %s", f.ImageURL)
	}
}
