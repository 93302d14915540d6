package billing

import (
	"context"
	"errors"
	"time"

	"invoicing-backend/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type OrganizationInput struct {
	Name                  string
	InvoiceTerms          string
	InvoiceAdditionalInfo string
}

type CustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

func (s *Service) CreateOrganization(ctx context.Context, input OrganizationInput) (*models.Organization, error) {
	if input.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "organization name is required"}
	}
	now := time.Now().UTC()
	org := &models.Organization{
		ID:                    uuid.New(),
		Name:                  input.Name,
		InvoiceCounter:        0,
		InvoiceTerms:          input.InvoiceTerms,
		InvoiceAdditionalInfo: input.InvoiceAdditionalInfo,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := s.orgs.Create(ctx, org); err != nil {
		return nil, err
	}
	s.log.Info("organization created", zap.String("organization_id", org.ID.String()))
	return org, nil
}

func (s *Service) GetOrganization(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	org, err := s.orgs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, err
	}
	return org, nil
}

// UpdateInvoiceDefaults changes the terms copied onto future invoices.
// Invoices already created keep their snapshot.
func (s *Service) UpdateInvoiceDefaults(ctx context.Context, id uuid.UUID, terms, additionalInfo string) (*models.Organization, error) {
	if err := s.orgs.UpdateDefaults(ctx, id, terms, additionalInfo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, err
	}
	return s.GetOrganization(ctx, id)
}

func (s *Service) CreateCustomer(ctx context.Context, orgID uuid.UUID, input CustomerInput) (*models.Customer, error) {
	if input.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "customer name is required"}
	}
	if _, err := s.GetOrganization(ctx, orgID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	customer := &models.Customer{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Address:        input.Address,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *Service) GetCustomer(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}

func (s *Service) ListCustomers(ctx context.Context, orgID uuid.UUID) ([]models.Customer, error) {
	return s.customers.ListByOrganization(ctx, orgID)
}

func (s *Service) UpdateCustomer(ctx context.Context, id uuid.UUID, input CustomerInput) (*models.Customer, error) {
	if input.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "customer name is required"}
	}
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	customer.Name = input.Name
	customer.Email = input.Email
	customer.Phone = input.Phone
	customer.Address = input.Address
	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}
