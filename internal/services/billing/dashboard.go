package billing

import (
	"context"

	"invoicing-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Revenue sums total_amount over paid invoices. Pure reducer, no I/O.
func Revenue(invoices []models.Invoice) decimal.Decimal {
	sum := decimal.Zero
	for _, inv := range invoices {
		if inv.Status == models.StatusPaid {
			sum = sum.Add(inv.TotalAmount)
		}
	}
	return sum
}

// Outstanding sums total_amount over invoices awaiting payment. "pending" is
// not a status this backend issues, but imported rows may still carry it.
func Outstanding(invoices []models.Invoice) decimal.Decimal {
	sum := decimal.Zero
	for _, inv := range invoices {
		switch inv.Status {
		case models.StatusSent, models.StatusOverdue, "pending":
			sum = sum.Add(inv.TotalAmount)
		}
	}
	return sum
}

type DashboardStats struct {
	TotalInvoices int64           `json:"total_invoices"`
	Revenue       decimal.Decimal `json:"revenue"`
	Outstanding   decimal.Decimal `json:"outstanding"`

	DraftCount int64           `json:"draft_count"`
	DraftSum   decimal.Decimal `json:"draft_sum"`

	SentCount int64           `json:"sent_count"`
	SentSum   decimal.Decimal `json:"sent_sum"`

	PaidCount int64           `json:"paid_count"`
	PaidSum   decimal.Decimal `json:"paid_sum"`

	OverdueCount int64           `json:"overdue_count"`
	OverdueSum   decimal.Decimal `json:"overdue_sum"`

	CancelledCount int64           `json:"cancelled_count"`
	CancelledSum   decimal.Decimal `json:"cancelled_sum"`
}

// GetDashboardStats aggregates per-status counts and sums for one
// organization with a single grouped query.
func (s *Service) GetDashboardStats(ctx context.Context, orgID uuid.UUID) (DashboardStats, error) {
	stats := DashboardStats{
		Revenue:      decimal.Zero,
		Outstanding:  decimal.Zero,
		DraftSum:     decimal.Zero,
		SentSum:      decimal.Zero,
		PaidSum:      decimal.Zero,
		OverdueSum:   decimal.Zero,
		CancelledSum: decimal.Zero,
	}

	if _, err := s.GetOrganization(ctx, orgID); err != nil {
		return stats, err
	}

	rows, err := s.invoices.StatusStats(ctx, orgID)
	if err != nil {
		return stats, err
	}

	for _, r := range rows {
		stats.TotalInvoices += r.Count

		switch r.Status {
		case models.StatusDraft:
			stats.DraftCount = r.Count
			stats.DraftSum = r.Sum
		case models.StatusSent:
			stats.SentCount = r.Count
			stats.SentSum = r.Sum
		case models.StatusPaid:
			stats.PaidCount = r.Count
			stats.PaidSum = r.Sum
		case models.StatusOverdue:
			stats.OverdueCount = r.Count
			stats.OverdueSum = r.Sum
		case models.StatusCancelled:
			stats.CancelledCount = r.Count
			stats.CancelledSum = r.Sum
		}

		switch r.Status {
		case models.StatusPaid:
			stats.Revenue = stats.Revenue.Add(r.Sum)
		case models.StatusSent, models.StatusOverdue, "pending":
			stats.Outstanding = stats.Outstanding.Add(r.Sum)
		}
	}

	return stats, nil
}
