package admin

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"zevro/internal/domain"
	"zevro/internal/pkg/response"
)

// Handler handles admin HTTP requests
type Handler struct {
	service  *Service
	tokenTTL time.Duration
}

func NewHandler(service *Service, tokenTTL time.Duration) *Handler {
	return &Handler{
		service:  service,
		tokenTTL: tokenTTL,
	}
}

// Login handles POST /api/admin/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	token, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Username or password is incorrect")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unable to process login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Login successful",
		"token":     token,
		"expiresIn": fmt.Sprintf("%gh", h.tokenTTL.Hours()),
	})
}

// ListSubmissions handles GET /api/admin/submissions
func (h *Handler) ListSubmissions(c *gin.Context) {
	query := ListQuery{
		EnquiryType: c.Query("enquiryType"),
		Status:      c.Query("status"),
		Search:      c.Query("search"),
		SortBy:      c.DefaultQuery("sortBy", "createdAt"),
		SortOrder:   c.DefaultQuery("sortOrder", "desc"),
	}
	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		query.Page = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		query.PageSize = v
	}

	result, err := h.service.ListSubmissions(c.Request.Context(), query)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unable to fetch submissions")
		return
	}

	response.Success(c, http.StatusOK, result)
}

// UpdateSubmission handles PUT /api/admin/submissions/:id
func (h *Handler) UpdateSubmission(c *gin.Context) {
	id := c.Param("id")

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	sub, err := h.service.UpdateSubmission(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSubmissionNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Submission not found")
		case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrNotesTooLong):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unable to update submission")
		}
		return
	}

	response.Success(c, http.StatusOK, sub)
}

// Export handles GET /api/admin/submissions/export
func (h *Handler) Export(c *gin.Context) {
	filter := domain.ExportFilter{
		EnquiryType: c.Query("enquiryType"),
		Status:      c.Query("status"),
	}
	if raw := c.Query("startDate"); raw != "" {
		if ts, err := parseDate(raw); err == nil {
			filter.StartDate = &ts
		}
	}
	if raw := c.Query("endDate"); raw != "" {
		if ts, err := parseDate(raw); err == nil {
			filter.EndDate = &ts
		}
	}

	data, err := h.service.ExportCSV(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unable to export submissions")
		return
	}

	filename := "zevro-submissions-" + time.Now().UTC().Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", `attachment; filename=`+filename)
	c.Data(http.StatusOK, "text/csv", data)
}

func parseDate(raw string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02", raw)
}
