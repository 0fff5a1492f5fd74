package admin

import (
	"context"

	"zevro/internal/domain"
)

// SubmissionStore — the repository surface the admin services use
type SubmissionStore interface {
	GetByID(ctx context.Context, id string) (*domain.Submission, error)
	List(ctx context.Context, filter domain.SubmissionFilter, opts domain.ListOptions) ([]domain.Submission, int64, error)
	CountByEnquiryType(ctx context.Context) ([]domain.EnquiryTypeCount, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) (*domain.Submission, error)
	FindForExport(ctx context.Context, filter domain.ExportFilter) ([]domain.Submission, error)
}

// TokenIssuer signs admin session tokens
type TokenIssuer interface {
	GenerateToken(username, role string) (string, error)
}
