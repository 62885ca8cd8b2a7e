package form

import (
	"net/url"
	"strconv"
)

// Invoice field messages, as rendered to the user.
const (
	MsgSelectCustomer = "Please select a customer."
	MsgInvalidAmount  = "Please enter an amount greater than $0."
	MsgSelectStatus   = "Please select an invoice status."
)

var invoiceMessages = messageMap{
	"customerId": MsgSelectCustomer,
	"amount":     MsgInvalidAmount,
	"status":     MsgSelectStatus,
}

// CreateInvoiceForm is the accepted input for invoice creation.
// The id and date are server-generated and deliberately absent.
type CreateInvoiceForm struct {
	CustomerID string  `form:"customerId" validate:"required"`
	Amount     float64 `form:"amount" validate:"gt=0"`
	Status     string  `form:"status" validate:"oneof=pending paid"`
}

// UpdateInvoiceForm is the accepted input for invoice updates.
// The target id is path-supplied, never part of the submission.
type UpdateInvoiceForm struct {
	CustomerID string  `form:"customerId" validate:"required"`
	Amount     float64 `form:"amount" validate:"gt=0"`
	Status     string  `form:"status" validate:"oneof=pending paid"`
}

// AmountCents converts the submitted major-unit amount to integer cents.
func AmountCents(amount float64) int64 {
	return int64(amount*100 + 0.5)
}

// ParseCreateInvoice extracts and validates invoice creation fields.
func ParseCreateInvoice(values url.Values) (*CreateInvoiceForm, FieldErrors) {
	errs := FieldErrors{}

	f := &CreateInvoiceForm{
		CustomerID: field(values, "customerId"),
		Status:     field(values, "status"),
	}
	f.Amount = parseAmount(values, errs)

	errs = collect(f, invoiceMessages, errs)
	if len(errs) > 0 {
		return nil, errs
	}
	return f, nil
}

// ParseUpdateInvoice extracts and validates invoice update fields.
func ParseUpdateInvoice(values url.Values) (*UpdateInvoiceForm, FieldErrors) {
	errs := FieldErrors{}

	f := &UpdateInvoiceForm{
		CustomerID: field(values, "customerId"),
		Status:     field(values, "status"),
	}
	f.Amount = parseAmount(values, errs)

	errs = collect(f, invoiceMessages, errs)
	if len(errs) > 0 {
		return nil, errs
	}
	return f, nil
}

// parseAmount coerces the amount field to a number. A value that does
// not parse records the amount violation and coerces to zero, which
// also fails the gt=0 rule; Add dedupes the repeated message.
func parseAmount(values url.Values, errs FieldErrors) float64 {
	raw := field(values, "amount")
	if raw == "" {
		return 0
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		errs.Add("amount", MsgInvalidAmount)
		return 0
	}
	return amount
}
