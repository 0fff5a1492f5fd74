package admin

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"zevro/internal/domain"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	maxNotesLength  = 2000
	adminRole       = "admin"

	csvHeader = "Name,Email,Phone,City,Enquiry Type,Message,Status,Created At,IP,User Agent"
)

// Credentials is the single configured admin credential pair, resolved at
// startup and injected here so the gate is testable with swapped values.
type Credentials struct {
	Username string
	Password string
}

// Service handles admin business logic: the auth gate plus querying,
// triaging and exporting submissions.
type Service struct {
	store  SubmissionStore
	tokens TokenIssuer
	creds  Credentials
}

func NewService(store SubmissionStore, tokens TokenIssuer, creds Credentials) *Service {
	return &Service{
		store:  store,
		tokens: tokens,
		creds:  creds,
	}
}

// Login checks the credential pair and issues a signed session token. The
// error is the same whichever half was wrong.
func (s *Service) Login(username, password string) (string, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.creds.Username)) == 1
	passwordOK := s.passwordMatches(password)
	if !usernameOK || !passwordOK {
		return "", ErrInvalidCredentials
	}
	return s.tokens.GenerateToken(s.creds.Username, adminRole)
}

// passwordMatches accepts a bcrypt hash as the configured value; anything
// else is compared verbatim in constant time, matching how the credential
// has always been configured.
func (s *Service) passwordMatches(password string) bool {
	configured := s.creds.Password
	if strings.HasPrefix(configured, "$2a$") || strings.HasPrefix(configured, "$2b$") || strings.HasPrefix(configured, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(password)) == 1
}

// ListSubmissions returns one filtered page plus pagination metadata and
// the whole-store enquiry-type statistics.
func (s *Service) ListSubmissions(ctx context.Context, query ListQuery) (*ListResult, error) {
	page := query.Page
	if page <= 0 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	filter := domain.SubmissionFilter{
		EnquiryType: query.EnquiryType,
		Status:      query.Status,
		Search:      query.Search,
	}
	opts := domain.ListOptions{
		Page:      page,
		PageSize:  pageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}

	subs, total, err := s.store.List(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []domain.Submission{}
	}

	stats, err := s.store.CountByEnquiryType(ctx)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = []domain.EnquiryTypeCount{}
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &ListResult{
		Submissions: subs,
		Pagination: Pagination{
			CurrentPage:      page,
			TotalPages:       totalPages,
			TotalSubmissions: total,
			HasNextPage:      page < totalPages,
			HasPrevPage:      page > 1,
		},
		Statistics: stats,
	}, nil
}

// UpdateSubmission patches the workflow fields on one submission. Every
// other column is untouched; an invalid status leaves the record unchanged.
func (s *Service) UpdateSubmission(ctx context.Context, id string, req UpdateRequest) (*domain.Submission, error) {
	updates := make(map[string]any)

	if req.Status != nil {
		status := domain.Status(*req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		updates["status"] = status
	}
	if req.Notes != nil {
		notes := strings.TrimSpace(*req.Notes)
		if utf8.RuneCountInString(notes) > maxNotesLength {
			return nil, ErrNotesTooLong
		}
		updates["notes"] = notes
	}
	if req.FollowUpDate != nil {
		updates["follow_up_date"] = *req.FollowUpDate
	}
	if req.AssignedTo != nil {
		updates["assigned_to"] = strings.TrimSpace(*req.AssignedTo)
	}

	if len(updates) == 0 {
		sub, err := s.store.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if sub == nil {
			return nil, ErrSubmissionNotFound
		}
		return sub, nil
	}

	sub, err := s.store.UpdateFields(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubmissionNotFound
	}
	return sub, nil
}

// ExportCSV renders every matching submission, newest first, with every
// field quoted and embedded quotes doubled.
func (s *Service) ExportCSV(ctx context.Context, filter domain.ExportFilter) ([]byte, error) {
	subs, err := s.store.FindForExport(ctx, filter)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteByte('\n')

	for _, sub := range subs {
		row := []string{
			sub.Name,
			sub.Email,
			sub.Phone,
			sub.City,
			string(sub.EnquiryType),
			sub.Message,
			string(sub.Status),
			sub.CreatedAt.UTC().Format(time.RFC3339),
			sub.IP,
			sub.UserAgent,
		}
		for i, value := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(value, `"`, `""`))
			b.WriteByte('"')
		}
		b.WriteByte('\n')
	}

	return []byte(b.String()), nil
}
