package repository

import (
	"context"
	"time"

	"invoicing-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) Create(ctx context.Context, org *models.Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// UpdateDefaults replaces the invoice defaults copied onto new invoices.
// Existing invoices keep whatever was copied at their creation time.
func (r *OrganizationRepository) UpdateDefaults(ctx context.Context, id uuid.UUID, terms, additionalInfo string) error {
	result := r.db.WithContext(ctx).Model(&models.Organization{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"invoice_terms":           terms,
			"invoice_additional_info": additionalInfo,
			"updated_at":              time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementInvoiceCounter bumps the per-organization numbering sequence and
// returns the new value. The single UPDATE ... RETURNING statement keeps the
// increment and the read indivisible, so concurrent callers can never observe
// the same value. Never replace this with a read-modify-write.
func (r *OrganizationRepository) IncrementInvoiceCounter(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var counter int64
	result := r.db.WithContext(ctx).Raw(
		`UPDATE organizations
		 SET invoice_counter = invoice_counter + 1, updated_at = ?
		 WHERE id = ?
		 RETURNING invoice_counter`,
		time.Now().UTC(), orgID,
	).Scan(&counter)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return counter, nil
}
