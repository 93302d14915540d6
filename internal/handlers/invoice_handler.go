package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"invoicing-backend/internal/services/billing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type InvoiceHandler struct {
	service *billing.Service
}

func NewInvoiceHandler(s *billing.Service) *InvoiceHandler {
	return &InvoiceHandler{service: s}
}

type invoiceItemPayload struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}

type invoicePayload struct {
	CustomerID      string               `json:"customer_id"` // optional
	CustomerName    string               `json:"customer_name"`
	CustomerEmail   string               `json:"customer_email"`
	CustomerPhone   string               `json:"customer_phone"`
	CustomerAddress string               `json:"customer_address"`
	Items           []invoiceItemPayload `json:"items"`
	IssueDate       string               `json:"issue_date"` // "yyyy-mm-dd"
	DueDate         string               `json:"due_date"`
	Notes           string               `json:"notes"`
	Terms           string               `json:"terms"`
	AdditionalInfo  string               `json:"additional_info"`
	Metadata        json.RawMessage      `json:"metadata,omitempty"`
}

func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, &billing.ValidationError{Field: field, Message: "invalid date, expected yyyy-mm-dd"}
	}
	return t, nil
}

func (p invoicePayload) toInput() (billing.InvoiceInput, error) {
	input := billing.InvoiceInput{
		CustomerName:    p.CustomerName,
		CustomerEmail:   p.CustomerEmail,
		CustomerPhone:   p.CustomerPhone,
		CustomerAddress: p.CustomerAddress,
		Notes:           p.Notes,
		Terms:           p.Terms,
		AdditionalInfo:  p.AdditionalInfo,
	}
	if len(p.Metadata) > 0 {
		input.Metadata = datatypes.JSON(p.Metadata)
	}

	if p.CustomerID != "" {
		id, err := uuid.Parse(p.CustomerID)
		if err != nil {
			return input, &billing.ValidationError{Field: "customer_id", Message: "invalid customer ID"}
		}
		input.CustomerID = &id
	}

	issueDate, err := parseDate("issue_date", p.IssueDate)
	if err != nil {
		return input, err
	}
	dueDate, err := parseDate("due_date", p.DueDate)
	if err != nil {
		return input, err
	}
	input.IssueDate = issueDate
	input.DueDate = dueDate

	for _, item := range p.Items {
		input.Items = append(input.Items, billing.LineItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TaxRate:     item.TaxRate,
		})
	}
	return input, nil
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization ID"})
		return
	}

	var payload invoicePayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	input, err := payload.toInput()
	if err != nil {
		respondError(c, err)
		return
	}

	invoice, err := h.service.CreateInvoice(c.Request.Context(), orgID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "invoice created", "invoice": invoice})
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	invoice, err := h.service.GetInvoice(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}

func (h *InvoiceHandler) List(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization ID"})
		return
	}

	invoices, err := h.service.ListInvoices(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	var payload invoicePayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	input, err := payload.toInput()
	if err != nil {
		respondError(c, err)
		return
	}

	invoice, err := h.service.UpdateInvoice(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "invoice updated", "invoice": invoice})
}

func (h *InvoiceHandler) SetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	invoice, err := h.service.SetStatus(c.Request.Context(), id, payload.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "status updated", "invoice": invoice})
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	if err := h.service.DeleteInvoice(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "invoice deleted"})
}

func (h *InvoiceHandler) Dashboard(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization ID"})
		return
	}

	stats, err := h.service.GetDashboardStats(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
