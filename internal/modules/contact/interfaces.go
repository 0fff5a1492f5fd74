package contact

import (
	"context"
	"time"

	"zevro/internal/domain"
)

// SubmissionWriter — only the repository methods the intake path needs
type SubmissionWriter interface {
	Create(ctx context.Context, sub *domain.Submission) error
	ExistsRecentByEmail(ctx context.Context, email string, since time.Time) (bool, error)
}
