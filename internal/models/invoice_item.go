package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceItem belongs to exactly one invoice. Updates replace the whole item
// set, so item IDs are not stable across edits.
type InvoiceItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;index" json:"invoice_id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `gorm:"type:numeric" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric" json:"unit_price"`
	TaxRate     decimal.Decimal `gorm:"type:numeric" json:"tax_rate"`

	// Amount = Quantity * UnitPrice * (1 + TaxRate/100), derived.
	Amount decimal.Decimal `gorm:"type:numeric" json:"amount"`

	CreatedAt time.Time `json:"created_at"`
}
