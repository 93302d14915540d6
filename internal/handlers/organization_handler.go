package handler

import (
	"net/http"

	"invoicing-backend/internal/services/billing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrganizationHandler struct {
	service *billing.Service
}

func NewOrganizationHandler(s *billing.Service) *OrganizationHandler {
	return &OrganizationHandler{service: s}
}

func (h *OrganizationHandler) Create(c *gin.Context) {
	var payload struct {
		Name                  string `json:"name"`
		InvoiceTerms          string `json:"invoice_terms"`
		InvoiceAdditionalInfo string `json:"invoice_additional_info"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	org, err := h.service.CreateOrganization(c.Request.Context(), billing.OrganizationInput{
		Name:                  payload.Name,
		InvoiceTerms:          payload.InvoiceTerms,
		InvoiceAdditionalInfo: payload.InvoiceAdditionalInfo,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "organization created", "organization": org})
}

func (h *OrganizationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization ID"})
		return
	}

	org, err := h.service.GetOrganization(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"organization": org})
}

func (h *OrganizationHandler) UpdateDefaults(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization ID"})
		return
	}

	var payload struct {
		InvoiceTerms          string `json:"invoice_terms"`
		InvoiceAdditionalInfo string `json:"invoice_additional_info"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	org, err := h.service.UpdateInvoiceDefaults(c.Request.Context(), id, payload.InvoiceTerms, payload.InvoiceAdditionalInfo)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "defaults updated", "organization": org})
}
