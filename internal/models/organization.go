package models

import (
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"index" json:"name"`

	// InvoiceCounter is the per-tenant numbering sequence. It is only ever
	// touched through an atomic increment-and-return; never read-modify-write.
	InvoiceCounter int64 `json:"invoice_counter"`

	// Defaults copied onto new invoices when the request leaves them blank.
	InvoiceTerms          string `json:"invoice_terms"`
	InvoiceAdditionalInfo string `json:"invoice_additional_info"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
