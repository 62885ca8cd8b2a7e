// Package service implements the validated-mutation pipeline behind
// every dashboard form submission: validate, persist exactly one
// statement, invalidate the cached listing view, then hand the caller
// a tagged outcome to act on.
package service

import (
	"fmt"

	"github.com/ledgerdash/ledgerdash/internal/form"
)

// Dashboard listing paths. Mutations invalidate and redirect to these.
const (
	PathDashboard = "/dashboard"
	PathInvoices  = "/dashboard/invoices"
	PathCustomers = "/dashboard/customers"
)

// ResultKind tags the outcome of a mutation.
type ResultKind int

const (
	// KindRedirect is a successful create/update; the caller should
	// transfer control to RedirectPath.
	KindRedirect ResultKind = iota + 1
	// KindValidationFailed carries per-field errors; no side effect occurred.
	KindValidationFailed
	// KindPersistFailed carries a generic message; the single statement failed.
	KindPersistFailed
	// KindDeleted is a successful delete; no redirect, just a message.
	KindDeleted
)

// Result is the outcome of one mutation. Exactly one variant applies;
// the handler switches on Kind rather than probing for an errors key.
type Result struct {
	Kind         ResultKind
	RedirectPath string
	Errors       form.FieldErrors
	Message      string
}

// Redirect reports success with a follow-up navigation target.
func Redirect(path string) Result {
	return Result{Kind: KindRedirect, RedirectPath: path}
}

// ValidationFailed reports per-field violations. Terminal but recoverable.
func ValidationFailed(errs form.FieldErrors, message string) Result {
	return Result{Kind: KindValidationFailed, Errors: errs, Message: message}
}

// PersistFailed reports a storage failure with a generic message.
// The underlying error never reaches the caller.
func PersistFailed(message string) Result {
	return Result{Kind: KindPersistFailed, Message: message}
}

// Deleted reports a successful delete.
func Deleted(message string) Result {
	return Result{Kind: KindDeleted, Message: message}
}

// missingFieldsMsg renders the validation failure message for an operation.
func missingFieldsMsg(op, entity string) string {
	return fmt.Sprintf("Missing Fields. Failed to %s %s.", op, entity)
}

// dbErrorMsg renders the persistence failure message for an operation.
func dbErrorMsg(op, entity string) string {
	return fmt.Sprintf("Database Error: Failed to %s %s.", op, entity)
}

// deletedMsg renders the delete success message for an entity.
func deletedMsg(entity string) string {
	return fmt.Sprintf("Deleted %s.", entity)
}
