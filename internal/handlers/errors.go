package handler

import (
	"errors"
	"net/http"

	"invoicing-backend/internal/services/billing"

	"github.com/gin-gonic/gin"
)

// respondError maps billing error kinds to HTTP status codes in one place.
func respondError(c *gin.Context, err error) {
	var (
		validationErr *billing.ValidationError
		transitionErr *billing.InvalidTransitionError
		conflictErr   *billing.ConflictError
		itemWriteErr  *billing.ItemWriteError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": validationErr.Message,
			"field": validationErr.Field,
		})
	case errors.Is(err, billing.ErrOrganizationNotFound),
		errors.Is(err, billing.ErrInvoiceNotFound),
		errors.Is(err, billing.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"error": conflictErr.Message})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": transitionErr.Error()})
	case errors.As(err, &itemWriteErr):
		// Header exists without items; tell the caller which invoice to recover.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      itemWriteErr.Error(),
			"invoice_id": itemWriteErr.InvoiceID.String(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
