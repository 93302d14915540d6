package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FormatInvoiceNumber renders a counter value as INV-0001. The width is a
// minimum, not a cap: counter 10000 becomes INV-10000.
func FormatInvoiceNumber(counter int64) string {
	return fmt.Sprintf("INV-%04d", counter)
}

// AllocateNumber hands out the next invoice number for the organization.
// The database serializes the underlying counter increment, so concurrent
// callers always receive distinct, strictly increasing numbers. A creation
// that fails after allocation leaves a gap; numbers are never reused.
func (s *Service) AllocateNumber(ctx context.Context, orgID uuid.UUID) (string, error) {
	counter, err := s.orgs.IncrementInvoiceCounter(ctx, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrOrganizationNotFound
		}
		return "", err
	}
	return FormatInvoiceNumber(counter), nil
}
