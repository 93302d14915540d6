package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"invoicing-backend/internal/models"
	"invoicing-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Service owns the invoice lifecycle: computation, numbering, status
// transitions, and the persistence choreography around them.
type Service struct {
	orgs      *repository.OrganizationRepository
	invoices  *repository.InvoiceRepository
	customers *repository.CustomerRepository
	log       *zap.Logger
}

func NewService(
	orgs *repository.OrganizationRepository,
	invoices *repository.InvoiceRepository,
	customers *repository.CustomerRepository,
	log *zap.Logger,
) *Service {
	return &Service{
		orgs:      orgs,
		invoices:  invoices,
		customers: customers,
		log:       log,
	}
}

type LineItemInput struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TaxRate     decimal.Decimal
}

type InvoiceInput struct {
	CustomerID      *uuid.UUID
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string

	Items []LineItemInput

	IssueDate time.Time
	DueDate   time.Time

	Notes          string
	Terms          string
	AdditionalInfo string

	// Metadata is free-form caller annotations (PO numbers, external refs).
	// Stored as-is, replaced wholesale on update.
	Metadata datatypes.JSON
}

func validateInvoiceInput(input InvoiceInput) error {
	if input.CustomerID == nil && input.CustomerName == "" {
		return &ValidationError{Field: "customer_name", Message: "customer name is required for walk-in invoices"}
	}
	if input.IssueDate.IsZero() {
		return &ValidationError{Field: "issue_date", Message: "issue date is required"}
	}
	if input.DueDate.IsZero() {
		return &ValidationError{Field: "due_date", Message: "due date is required"}
	}
	if input.DueDate.Before(input.IssueDate) {
		return &ValidationError{Field: "due_date", Message: "due date must not be before issue date"}
	}
	if len(input.Items) == 0 {
		return &ValidationError{Field: "items", Message: "at least one line item is required"}
	}
	for i, item := range input.Items {
		if item.Description == "" {
			return &ValidationError{Field: fmt.Sprintf("items[%d].description", i), Message: "description is required"}
		}
		if !item.Quantity.IsPositive() {
			return &ValidationError{Field: fmt.Sprintf("items[%d].quantity", i), Message: "quantity must be greater than zero"}
		}
		if item.UnitPrice.IsNegative() {
			return &ValidationError{Field: fmt.Sprintf("items[%d].unit_price", i), Message: "unit price must not be negative"}
		}
		if item.TaxRate.IsNegative() || item.TaxRate.GreaterThan(hundred) {
			return &ValidationError{Field: fmt.Sprintf("items[%d].tax_rate", i), Message: "tax rate must be between 0 and 100"}
		}
	}
	return nil
}

// resolveCustomerSnapshot fills blank snapshot fields from the referenced
// customer record. The copy happens once; later customer edits never
// propagate back into the invoice.
func (s *Service) resolveCustomerSnapshot(ctx context.Context, orgID uuid.UUID, input *InvoiceInput) error {
	if input.CustomerID == nil {
		return nil
	}
	customer, err := s.customers.GetByID(ctx, *input.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCustomerNotFound
		}
		return err
	}
	if customer.OrganizationID != orgID {
		return ErrCustomerNotFound
	}
	if input.CustomerName == "" {
		input.CustomerName = customer.Name
	}
	if input.CustomerEmail == "" {
		input.CustomerEmail = customer.Email
	}
	if input.CustomerPhone == "" {
		input.CustomerPhone = customer.Phone
	}
	if input.CustomerAddress == "" {
		input.CustomerAddress = customer.Address
	}
	return nil
}

func lineInputs(items []LineItemInput) []LineInput {
	lines := make([]LineInput, len(items))
	for i, item := range items {
		lines[i] = LineInput{
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			TaxRate:   item.TaxRate,
		}
	}
	return lines
}

func buildItems(invoiceID uuid.UUID, items []LineItemInput, now time.Time) []models.InvoiceItem {
	rows := make([]models.InvoiceItem, len(items))
	for i, item := range items {
		rows[i] = models.InvoiceItem{
			ID:          uuid.New(),
			InvoiceID:   invoiceID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TaxRate:     item.TaxRate,
			Amount:      LineAmount(item.Quantity, item.UnitPrice, item.TaxRate),
			CreatedAt:   now,
		}
	}
	return rows
}

// CreateInvoice validates the input, snapshots customer info, computes
// totals, allocates the next invoice number, and writes header then items.
// An item-write failure after a successful header insert returns the created
// invoice together with an *ItemWriteError; the allocated number is not
// reclaimed.
func (s *Service) CreateInvoice(ctx context.Context, orgID uuid.UUID, input InvoiceInput) (*models.Invoice, error) {
	if err := validateInvoiceInput(input); err != nil {
		return nil, err
	}

	org, err := s.orgs.GetByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, err
	}

	if err := s.resolveCustomerSnapshot(ctx, orgID, &input); err != nil {
		return nil, err
	}

	totals := ComputeTotals(lineInputs(input.Items))

	number, err := s.AllocateNumber(ctx, orgID)
	if err != nil {
		return nil, err
	}

	terms := input.Terms
	if terms == "" {
		terms = org.InvoiceTerms
	}
	additionalInfo := input.AdditionalInfo
	if additionalInfo == "" {
		additionalInfo = org.InvoiceAdditionalInfo
	}

	now := time.Now().UTC()
	invoice := &models.Invoice{
		ID:              uuid.New(),
		OrganizationID:  orgID,
		InvoiceNumber:   number,
		CustomerID:      input.CustomerID,
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		CustomerAddress: input.CustomerAddress,
		Subtotal:        totals.Subtotal,
		TaxAmount:       totals.TaxAmount,
		DiscountAmount:  decimal.Zero,
		TotalAmount:     totals.Total,
		Status:          models.StatusDraft,
		IssueDate:       input.IssueDate,
		DueDate:         input.DueDate,
		Notes:           input.Notes,
		Terms:           terms,
		AdditionalInfo:  additionalInfo,
		Metadata:        input.Metadata,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.invoices.CreateHeader(ctx, invoice); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{
				Message: fmt.Sprintf("invoice number %s already exists in organization", number),
				Err:     err,
			}
		}
		return nil, err
	}

	items := buildItems(invoice.ID, input.Items, now)
	if err := s.invoices.ReplaceItems(ctx, invoice.ID, items); err != nil {
		s.log.Warn("invoice header written but items failed",
			zap.String("invoice_id", invoice.ID.String()),
			zap.String("invoice_number", number),
			zap.Error(err),
		)
		return invoice, &ItemWriteError{InvoiceID: invoice.ID, Err: err}
	}
	invoice.Items = items

	s.log.Info("invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("organization_id", orgID.String()),
		zap.String("invoice_number", number),
		zap.String("total", totals.Total.String()),
	)
	return invoice, nil
}

// UpdateInvoice recomputes totals, overwrites the customer snapshot, dates,
// notes and terms, and replaces the entire item set. Number and status are
// untouched. Concurrent edits are last-writer-wins.
func (s *Service) UpdateInvoice(ctx context.Context, id uuid.UUID, input InvoiceInput) (*models.Invoice, error) {
	if err := validateInvoiceInput(input); err != nil {
		return nil, err
	}

	existing, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	if err := s.resolveCustomerSnapshot(ctx, existing.OrganizationID, &input); err != nil {
		return nil, err
	}

	totals := ComputeTotals(lineInputs(input.Items))
	now := time.Now().UTC()

	fields := map[string]interface{}{
		"customer_id":      input.CustomerID,
		"customer_name":    input.CustomerName,
		"customer_email":   input.CustomerEmail,
		"customer_phone":   input.CustomerPhone,
		"customer_address": input.CustomerAddress,
		"subtotal":         totals.Subtotal,
		"tax_amount":       totals.TaxAmount,
		"total_amount":     totals.Total.Sub(existing.DiscountAmount),
		"issue_date":       input.IssueDate,
		"due_date":         input.DueDate,
		"notes":            input.Notes,
		"terms":            input.Terms,
		"additional_info":  input.AdditionalInfo,
		"metadata":         input.Metadata,
		"updated_at":       now,
	}
	if err := s.invoices.UpdateHeader(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	items := buildItems(id, input.Items, now)
	if err := s.invoices.ReplaceItems(ctx, id, items); err != nil {
		s.log.Warn("invoice header updated but items failed",
			zap.String("invoice_id", id.String()),
			zap.Error(err),
		)
		return nil, &ItemWriteError{InvoiceID: id, Err: err}
	}

	return s.GetInvoice(ctx, id)
}

// SetStatus applies one explicit lifecycle transition.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status string) (*models.Invoice, error) {
	if !models.ValidStatus(status) {
		return nil, &ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %q", status)}
	}

	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	if !canTransition(invoice.Status, status) {
		return nil, &InvalidTransitionError{From: invoice.Status, To: status}
	}

	now := time.Now().UTC()
	fields := map[string]interface{}{
		"status":     status,
		"updated_at": now,
	}
	if err := s.invoices.UpdateHeader(ctx, id, fields); err != nil {
		return nil, err
	}

	s.log.Info("invoice status changed",
		zap.String("invoice_id", id.String()),
		zap.String("from", invoice.Status),
		zap.String("to", status),
	)

	invoice.Status = status
	invoice.UpdatedAt = now
	return invoice, nil
}

func (s *Service) GetInvoice(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return invoice, nil
}

func (s *Service) ListInvoices(ctx context.Context, orgID uuid.UUID) ([]models.Invoice, error) {
	return s.invoices.ListByOrganization(ctx, orgID)
}

// DeleteInvoice removes the invoice and all of its items.
func (s *Service) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	if err := s.invoices.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvoiceNotFound
		}
		return err
	}
	s.log.Info("invoice deleted", zap.String("invoice_id", id.String()))
	return nil
}
