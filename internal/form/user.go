package form

import "net/url"

var signupMessages = messageMap{
	"name":  MsgFullName,
	"email": MsgInvalidEmail,
	// password has no custom copy; the schema default message applies
}

var loginMessages = messageMap{
	"email": MsgInvalidEmail,
}

// SignupForm is the accepted input for user creation.
// The id and created_at are server-generated; the password is hashed
// before it ever reaches storage.
type SignupForm struct {
	Name     string `form:"name" validate:"min=4"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"min=8"`
}

// LoginForm is the credentials submission for the authentication flow.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// ParseSignup extracts and validates user creation fields.
func ParseSignup(values url.Values) (*SignupForm, FieldErrors) {
	f := &SignupForm{
		Name:     field(values, "name"),
		Email:    field(values, "email"),
		Password: field(values, "password"),
	}

	errs := collect(f, signupMessages, FieldErrors{})
	if len(errs) > 0 {
		return nil, errs
	}
	return f, nil
}

// ParseLogin extracts and validates a credentials submission.
func ParseLogin(values url.Values) (*LoginForm, FieldErrors) {
	f := &LoginForm{
		Email:    field(values, "email"),
		Password: field(values, "password"),
	}

	errs := collect(f, loginMessages, FieldErrors{})
	if len(errs) > 0 {
		return nil, errs
	}
	return f, nil
}
