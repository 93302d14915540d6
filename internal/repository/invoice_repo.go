package repository

import (
	"context"

	"invoicing-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// CreateHeader inserts the invoice row only. Items are written separately by
// ReplaceItems; a crash between the two leaves a zero-item invoice, which
// callers treat as recoverable.
func (r *InvoiceRepository) CreateHeader(ctx context.Context, invoice *models.Invoice) error {
	header := *invoice
	header.Items = nil
	return r.db.WithContext(ctx).Create(&header).Error
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&invoice, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *InvoiceRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Find(&invoices).Error
	return invoices, err
}

func (r *InvoiceRepository) UpdateHeader(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Invoice{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceItems drops every existing item and inserts the new set. Item
// identity deliberately does not survive an edit.
func (r *InvoiceRepository) ReplaceItems(ctx context.Context, invoiceID uuid.UUID, items []models.InvoiceItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", invoiceID).Delete(&models.InvoiceItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

// Delete removes the invoice and cascades to its items. The explicit item
// delete keeps the cascade working on databases without FK enforcement.
func (r *InvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", id).Delete(&models.InvoiceItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Invoice{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

type StatusRow struct {
	Status string
	Count  int64
	Sum    decimal.Decimal
}

// StatusStats returns per-status invoice count and total-amount sum for one
// organization in a single grouped query.
func (r *InvoiceRepository) StatusStats(ctx context.Context, orgID uuid.UUID) ([]StatusRow, error) {
	var rows []StatusRow
	err := r.db.WithContext(ctx).Model(&models.Invoice{}).
		Where("organization_id = ?", orgID).
		Select("status, COUNT(*) as count, COALESCE(SUM(total_amount), 0) as sum").
		Group("status").
		Scan(&rows).Error
	return rows, err
}
