package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Invoice statuses. Transitions are caller-driven; nothing in the backend
// flips a status on a timer.
const (
	StatusDraft     = "draft"
	StatusSent      = "sent"
	StatusPaid      = "paid"
	StatusOverdue   = "overdue"
	StatusCancelled = "cancelled"
)

type Invoice struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_org_invoice_number" json:"organization_id"`

	// InvoiceNumber is assigned exactly once at creation and unique within
	// the organization. The composite index is the backstop for allocator bugs.
	InvoiceNumber string `gorm:"uniqueIndex:idx_org_invoice_number" json:"invoice_number"`

	// Point-in-time customer snapshot. CustomerID is a weak reference and may
	// be nil for walk-ins; the denormalized fields are never re-synced when
	// the Customer row changes later.
	CustomerID      *uuid.UUID `gorm:"type:uuid;index" json:"customer_id"`
	CustomerName    string     `gorm:"index" json:"customer_name"`
	CustomerEmail   string     `json:"customer_email"`
	CustomerPhone   string     `json:"customer_phone"`
	CustomerAddress string     `json:"customer_address"`

	// Derived money fields, never hand-edited.
	// TotalAmount = Subtotal + TaxAmount - DiscountAmount.
	Subtotal       decimal.Decimal `gorm:"type:numeric" json:"subtotal"`
	TaxAmount      decimal.Decimal `gorm:"type:numeric" json:"tax_amount"`
	DiscountAmount decimal.Decimal `gorm:"type:numeric" json:"discount_amount"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric;index" json:"total_amount"`

	Status string `gorm:"index" json:"status"`

	IssueDate time.Time `json:"issue_date"`
	DueDate   time.Time `json:"due_date"`

	Notes          string         `json:"notes"`
	Terms          string         `json:"terms"`
	AdditionalInfo string         `json:"additional_info"`
	Metadata       datatypes.JSON `json:"metadata,omitempty"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidStatus reports whether s is one of the known invoice statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue, StatusCancelled:
		return true
	}
	return false
}
