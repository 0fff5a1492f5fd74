package contact

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"zevro/internal/pkg/response"
)

// Handler handles public contact HTTP requests
type Handler struct {
	service  *Service
	whatsapp WhatsAppConfig
}

func NewHandler(service *Service, whatsapp WhatsAppConfig) *Handler {
	return &Handler{
		service:  service,
		whatsapp: whatsapp,
	}
}

// Submit handles POST /api/contact
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	sub, err := h.service.Submit(c.Request.Context(), req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		var validationErr *ValidationError
		switch {
		case errors.As(err, &validationErr):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", validationErr.Fields)
		case errors.Is(err, ErrDuplicateSubmission):
			response.Error(c, http.StatusConflict, "DUPLICATE_SUBMISSION", "You have already submitted a form in the last 24 hours.")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unable to process your submission. Please try again later.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":        true,
		"message":        "Form submitted successfully! We will contact you soon.",
		"submissionId":   sub.ID,
		"whatsappConfig": h.whatsapp,
	})
}

// Config handles GET /api/contact/config
func (h *Handler) Config(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"whatsappConfig": h.whatsapp,
	})
}
