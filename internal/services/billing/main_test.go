package billing

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"invoicing-backend/internal/models"
	"invoicing-backend/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One shared in-memory database per test, single connection so
	// concurrent writers serialize at the pool instead of hitting
	// SQLITE_BUSY.
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Organization{},
		&models.Customer{},
		&models.Invoice{},
		&models.InvoiceItem{},
	))
	return db
}

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewService(
		repository.NewOrganizationRepository(db),
		repository.NewInvoiceRepository(db),
		repository.NewCustomerRepository(db),
		zap.NewNop(),
	)
	return svc, db
}

func seedOrganization(t *testing.T, svc *Service, name string) *models.Organization {
	t.Helper()
	org, err := svc.CreateOrganization(context.Background(), OrganizationInput{
		Name:         name,
		InvoiceTerms: "Payment due within 30 days",
	})
	require.NoError(t, err)
	return org
}

func testDates() (time.Time, time.Time) {
	issue := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return issue, issue.AddDate(0, 0, 30)
}

func mustCreateInvoice(t *testing.T, svc *Service, orgID uuid.UUID, input InvoiceInput) *models.Invoice {
	t.Helper()
	invoice, err := svc.CreateInvoice(context.Background(), orgID, input)
	require.NoError(t, err)
	return invoice
}
