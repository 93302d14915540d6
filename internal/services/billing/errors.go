package billing

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrCustomerNotFound     = errors.New("customer not found")
)

// ValidationError rejects malformed input before anything touches the
// database. Field uses bracket notation for line items, e.g. "items[2].quantity".
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// InvalidTransitionError reports a status change the lifecycle does not allow.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
}

// ConflictError surfaces a uniqueness violation, the persistence-level
// backstop for duplicate invoice numbers.
type ConflictError struct {
	Message string
	Err     error
}

func (e *ConflictError) Error() string { return e.Message }
func (e *ConflictError) Unwrap() error { return e.Err }

// ItemWriteError reports a creation or update that wrote the invoice header
// but failed on the items. The invoice exists with zero (or stale) items;
// the caller decides whether to retry the item write or delete the header.
type ItemWriteError struct {
	InvoiceID uuid.UUID
	Err       error
}

func (e *ItemWriteError) Error() string {
	return fmt.Sprintf("invoice %s created but writing items failed: %v", e.InvoiceID, e.Err)
}

func (e *ItemWriteError) Unwrap() error { return e.Err }
