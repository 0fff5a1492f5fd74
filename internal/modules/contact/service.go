package contact

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"zevro/internal/domain"
)

// DedupWindow is the trailing period during which a second submission from
// the same email is rejected.
const DedupWindow = 24 * time.Hour

// Service handles public intake business logic
type Service struct {
	repo SubmissionWriter
}

func NewService(repo SubmissionWriter) *Service {
	return &Service{repo: repo}
}

// Submit validates, dedup-checks and persists one contact form payload.
// Nothing is written unless every gate passes; a storage-level duplicate
// conflict surfaces as ErrDuplicateSubmission, not a generic failure.
func (s *Service) Submit(ctx context.Context, req SubmitRequest, ip, userAgent string) (*domain.Submission, error) {
	req = req.normalized()

	if fieldErrors := validateSubmitRequest(req); len(fieldErrors) > 0 {
		return nil, &ValidationError{Fields: fieldErrors}
	}

	recent, err := s.repo.ExistsRecentByEmail(ctx, req.Email, time.Now().Add(-DedupWindow))
	if err != nil {
		return nil, err
	}
	if recent {
		return nil, ErrDuplicateSubmission
	}

	sub := &domain.Submission{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		City:        req.City,
		EnquiryType: domain.EnquiryType(req.EnquiryType),
		Message:     req.Message,
		Status:      domain.StatusNew,
		IP:          ip,
		UserAgent:   userAgent,
	}
	if req.UTM != nil {
		sub.UTM = domain.UTM{
			Source:   req.UTM.Source,
			Medium:   req.UTM.Medium,
			Campaign: req.UTM.Campaign,
			Term:     req.UTM.Term,
			Content:  req.UTM.Content,
		}
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		// Two racing submissions can both pass the advisory check; a
		// unique-constraint conflict on insert is still a duplicate.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSubmission
		}
		return nil, err
	}

	return sub, nil
}
