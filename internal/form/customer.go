package form

import "net/url"

// Customer field messages.
const (
	MsgFullName     = "Please enter your full name."
	MsgInvalidEmail = "Please enter a valid email address."
)

var customerMessages = messageMap{
	"name":  MsgFullName,
	"email": MsgInvalidEmail,
}

// CreateCustomerForm is the accepted input for customer creation.
type CreateCustomerForm struct {
	Name     string `form:"name" validate:"min=4"`
	Email    string `form:"email" validate:"required,email"`
	ImageURL string `form:"image_url"` // optional profile image reference
}

// UpdateCustomerForm is the accepted input for customer updates.
type UpdateCustomerForm struct {
	Name     string `form:"name" validate:"min=4"`
	Email    string `form:"email" validate:"required,email"`
	ImageURL string `form:"image_url"`
}

// ParseCreateCustomer extracts and validates customer creation fields.
func ParseCreateCustomer(values url.Values) (*CreateCustomerForm, FieldErrors) {
	f := &CreateCustomerForm{
		Name:     field(values, "name"),
		Email:    field(values, "email"),
		ImageURL: field(values, "image_url"),
	}

	errs := collect(f, customerMessages, FieldErrors{})
	if len(errs) > 0 {
		return nil, errs
	}
	return f, nil
}

// ParseUpdateCustomer extracts and validates customer update fields.
func ParseUpdateCustomer(values url.Values) (*UpdateCustomerForm, FieldErrors) {
	f := &UpdateCustomerForm{
		Name:     field(values, "name"),
		Email:    field(values, "email"),
		ImageURL: field(values, "image_url"),
	}

	errs := collect(f, customerMessages, FieldErrors{})
	if len(errs) > 0 {
		return nil, errs
	}
	return f, nil
}
