package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"zevro/internal/database"
	"zevro/internal/domain"
	"zevro/internal/middleware"
	jwtsvc "zevro/internal/pkg/jwt"
	"zevro/internal/repository"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	tokens := jwtsvc.New("test-secret", 24*time.Hour)
	repo := repository.NewSubmissionRepository(db)
	service := NewService(repo, tokens, Credentials{Username: "admin", Password: "hunter2"})
	handler := NewHandler(service, tokens.TTL())

	router := gin.New()
	api := router.Group("/api")
	RegisterRoutes(api.Group("/admin"), handler, middleware.AdminAuth(tokens))

	return router, db
}

func seedSubmission(t *testing.T, db *gorm.DB, email string, enquiry domain.EnquiryType) domain.Submission {
	t.Helper()
	sub := domain.Submission{
		Name:        "Jane Doe",
		Email:       email,
		Phone:       "+77001234567",
		City:        "Almaty",
		EnquiryType: enquiry,
		Message:     "Interested in opening a location downtown.",
		Status:      domain.StatusNew,
	}
	require.NoError(t, repository.NewSubmissionRepository(db).Create(context.Background(), &sub))
	return sub
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		reader = new(bytes.Buffer)
		_ = json.NewEncoder(reader).Encode(body)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func loginToken(t *testing.T, router *gin.Engine) string {
	t.Helper()
	resp := doJSON(router, http.MethodPost, "/api/admin/login", "", LoginRequest{
		Username: "admin",
		Password: "hunter2",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body struct {
		Token     string `json:"token"`
		ExpiresIn string `json:"expiresIn"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	require.Equal(t, "24h", body.ExpiresIn)
	return body.Token
}

func TestLoginEndpointRejectsBadPassword(t *testing.T) {
	router, _ := setupRouter(t)

	resp := doJSON(router, http.MethodPost, "/api/admin/login", "", LoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "INVALID_CREDENTIALS")
}

func TestSubmissionsEndpointRequiresToken(t *testing.T) {
	router, _ := setupRouter(t)

	resp := doJSON(router, http.MethodGet, "/api/admin/submissions", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestSubmissionsEndpointListsAndFilters(t *testing.T) {
	router, db := setupRouter(t)
	seedSubmission(t, db, "a@example.com", domain.EnquiryFranchise)
	seedSubmission(t, db, "b@example.com", domain.EnquiryContact)

	token := loginToken(t, router)

	resp := doJSON(router, http.MethodGet, "/api/admin/submissions?enquiryType=franchise", token, nil)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body struct {
		Data ListResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Data.Submissions, 1)
	assert.Equal(t, "a@example.com", body.Data.Submissions[0].Email)
	assert.Equal(t, int64(1), body.Data.Pagination.TotalSubmissions)
	// Statistics cover the whole store, not the filtered page.
	assert.Len(t, body.Data.Statistics, 2)
}

func TestUpdateEndpointChangesStatus(t *testing.T) {
	router, db := setupRouter(t)
	sub := seedSubmission(t, db, "a@example.com", domain.EnquiryFranchise)

	token := loginToken(t, router)
	status := "contacted"
	notes := "Called, asked to ring back tomorrow"

	resp := doJSON(router, http.MethodPut, "/api/admin/submissions/"+sub.ID, token, UpdateRequest{
		Status: &status,
		Notes:  &notes,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body struct {
		Data domain.Submission `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, domain.StatusContacted, body.Data.Status)
	assert.Equal(t, notes, body.Data.Notes)
}

func TestUpdateEndpointUnknownID(t *testing.T) {
	router, _ := setupRouter(t)

	token := loginToken(t, router)
	status := "contacted"

	resp := doJSON(router, http.MethodPut, "/api/admin/submissions/no-such-id", token, UpdateRequest{
		Status: &status,
	})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestExportEndpointReturnsCSV(t *testing.T) {
	router, db := setupRouter(t)
	seedSubmission(t, db, "a@example.com", domain.EnquiryFranchise)

	token := loginToken(t, router)

	resp := doJSON(router, http.MethodGet, "/api/admin/submissions/export", token, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "text/csv", resp.Header().Get("Content-Type"))
	assert.Contains(t, resp.Header().Get("Content-Disposition"), "zevro-submissions-")

	lines := strings.Split(strings.TrimSpace(resp.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Name,Email,"))
	assert.Contains(t, lines[1], `"a@example.com"`)
}
