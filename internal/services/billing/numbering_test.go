package billing

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"invoicing-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "INV-0001", FormatInvoiceNumber(1))
	assert.Equal(t, "INV-0042", FormatInvoiceNumber(42))
	assert.Equal(t, "INV-9999", FormatInvoiceNumber(9999))
	// Width is a minimum, not a cap.
	assert.Equal(t, "INV-10000", FormatInvoiceNumber(10000))
}

func TestAllocateNumberSequential(t *testing.T) {
	svc, _ := newTestService(t)
	org := seedOrganization(t, svc, "Acme")

	for i := 1; i <= 12; i++ {
		number, err := svc.AllocateNumber(context.Background(), org.ID)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("INV-%04d", i), number)
	}
}

func TestAllocateNumberConcurrent(t *testing.T) {
	svc, _ := newTestService(t)
	org := seedOrganization(t, svc, "Acme")

	const n = 50
	results := make(chan string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			number, err := svc.AllocateNumber(context.Background(), org.ID)
			assert.NoError(t, err)
			results <- number
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool, n)
	for number := range results {
		assert.False(t, seen[number], "duplicate number %s", number)
		seen[number] = true
	}
	require.Len(t, seen, n)

	// No duplicates and no gaps within the race itself: every value in
	// 1..n was handed out exactly once.
	for i := 1; i <= n; i++ {
		assert.True(t, seen[fmt.Sprintf("INV-%04d", i)])
	}
}

func TestAllocateNumberPerOrganization(t *testing.T) {
	svc, _ := newTestService(t)
	first := seedOrganization(t, svc, "First")
	second := seedOrganization(t, svc, "Second")

	a, err := svc.AllocateNumber(context.Background(), first.ID)
	require.NoError(t, err)
	b, err := svc.AllocateNumber(context.Background(), second.ID)
	require.NoError(t, err)

	// Counters are independent per tenant.
	assert.Equal(t, "INV-0001", a)
	assert.Equal(t, "INV-0001", b)
}

func TestAllocateNumberBeyondPadWidth(t *testing.T) {
	svc, db := newTestService(t)
	org := seedOrganization(t, svc, "Acme")

	require.NoError(t, db.Model(&models.Organization{}).
		Where("id = ?", org.ID).
		Update("invoice_counter", int64(9999)).Error)

	number, err := svc.AllocateNumber(context.Background(), org.ID)
	require.NoError(t, err)
	assert.Equal(t, "INV-10000", number)
}

func TestAllocateNumberUnknownOrganization(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AllocateNumber(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrOrganizationNotFound)
}
