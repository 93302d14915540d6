package billing

import (
	"context"
	"testing"

	"invoicing-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoiceWith(status, total string) models.Invoice {
	return models.Invoice{Status: status, TotalAmount: d(total)}
}

func TestRevenueReducer(t *testing.T) {
	invoices := []models.Invoice{
		invoiceWith(models.StatusPaid, "100"),
		invoiceWith(models.StatusDraft, "50"),
		invoiceWith(models.StatusPaid, "25"),
	}
	assert.True(t, Revenue(invoices).Equal(d("125")), "revenue %s", Revenue(invoices))
}

func TestOutstandingReducer(t *testing.T) {
	invoices := []models.Invoice{
		invoiceWith(models.StatusSent, "10"),
		invoiceWith("pending", "20"),
		invoiceWith(models.StatusOverdue, "30"),
		invoiceWith(models.StatusPaid, "40"),
		invoiceWith(models.StatusCancelled, "5"),
	}
	assert.True(t, Outstanding(invoices).Equal(d("60")), "outstanding %s", Outstanding(invoices))
}

func TestReducersEmpty(t *testing.T) {
	assert.True(t, Revenue(nil).IsZero())
	assert.True(t, Outstanding(nil).IsZero())
}

func TestGetDashboardStats(t *testing.T) {
	svc, _ := newTestService(t)
	org := seedOrganization(t, svc, "Acme")
	ctx := context.Background()

	paid := mustCreateInvoice(t, svc, org.ID, twoLineInput()) // total 286
	_, err := svc.SetStatus(ctx, paid.ID, models.StatusSent)
	require.NoError(t, err)
	_, err = svc.SetStatus(ctx, paid.ID, models.StatusPaid)
	require.NoError(t, err)

	sent := mustCreateInvoice(t, svc, org.ID, twoLineInput())
	_, err = svc.SetStatus(ctx, sent.ID, models.StatusSent)
	require.NoError(t, err)

	mustCreateInvoice(t, svc, org.ID, twoLineInput()) // stays draft

	stats, err := svc.GetDashboardStats(ctx, org.ID)
	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.TotalInvoices)
	assert.EqualValues(t, 1, stats.PaidCount)
	assert.EqualValues(t, 1, stats.SentCount)
	assert.EqualValues(t, 1, stats.DraftCount)
	assert.True(t, stats.Revenue.Equal(d("286")), "revenue %s", stats.Revenue)
	assert.True(t, stats.Outstanding.Equal(d("286")), "outstanding %s", stats.Outstanding)

	// The grouped query agrees with the pure reducers over the same rows.
	invoices, err := svc.ListInvoices(ctx, org.ID)
	require.NoError(t, err)
	assert.True(t, stats.Revenue.Equal(Revenue(invoices)))
	assert.True(t, stats.Outstanding.Equal(Outstanding(invoices)))
}

func TestGetDashboardStatsUnknownOrganization(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetDashboardStats(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrOrganizationNotFound)
}
