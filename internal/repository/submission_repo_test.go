package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zevro/internal/database"
	"zevro/internal/domain"
)

func setupRepo(t *testing.T) *SubmissionRepository {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewSubmissionRepository(db)
}

func seedSubmission(t *testing.T, repo *SubmissionRepository, mutate func(*domain.Submission)) *domain.Submission {
	t.Helper()
	sub := &domain.Submission{
		Name:        "John Smith",
		Email:       "john@example.com",
		Phone:       "+77001234567",
		City:        "Astana",
		EnquiryType: domain.EnquiryFranchise,
		Message:     "I would like to open a franchise.",
		Status:      domain.StatusNew,
	}
	if mutate != nil {
		mutate(sub)
	}
	require.NoError(t, repo.Create(context.Background(), sub))
	return sub
}

func TestCreateAssignsID(t *testing.T) {
	repo := setupRepo(t)
	sub := seedSubmission(t, repo, nil)

	assert.NotEmpty(t, sub.ID)
	assert.False(t, sub.CreatedAt.IsZero())

	loaded, err := repo.GetByID(context.Background(), sub.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "john@example.com", loaded.Email)
}

func TestGetByIDUnknown(t *testing.T) {
	repo := setupRepo(t)

	loaded, err := repo.GetByID(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestExistsRecentByEmailWindow(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	old := time.Now().Add(-25 * time.Hour)
	seedSubmission(t, repo, func(s *domain.Submission) {
		s.Email = "old@example.com"
		s.CreatedAt = old
		s.UpdatedAt = old
	})
	seedSubmission(t, repo, func(s *domain.Submission) {
		s.Email = "fresh@example.com"
	})

	since := time.Now().Add(-24 * time.Hour)

	recent, err := repo.ExistsRecentByEmail(ctx, "fresh@example.com", since)
	require.NoError(t, err)
	assert.True(t, recent)

	recent, err = repo.ExistsRecentByEmail(ctx, "old@example.com", since)
	require.NoError(t, err)
	assert.False(t, recent, "a 25h-old submission is outside the dedup window")

	recent, err = repo.ExistsRecentByEmail(ctx, "never@example.com", since)
	require.NoError(t, err)
	assert.False(t, recent)
}

func TestListFiltersAndSearch(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	seedSubmission(t, repo, func(s *domain.Submission) {
		s.Email = "a@example.com"
		s.Name = "Aigerim Bekova"
		s.City = "Almaty"
		s.EnquiryType = domain.EnquiryFranchise
	})
	seedSubmission(t, repo, func(s *domain.Submission) {
		s.Email = "b@example.com"
		s.Name = "Boris Ivanov"
		s.City = "Astana"
		s.EnquiryType = domain.EnquiryContact
		s.Status = domain.StatusContacted
	})
	seedSubmission(t, repo, func(s *domain.Submission) {
		s.Email = "c@example.com"
		s.Name = "Carlos Ortega"
		s.City = "Shymkent"
		s.EnquiryType = domain.EnquiryGeneral
	})

	opts := domain.ListOptions{Page: 1, PageSize: 20}

	subs, total, err := repo.List(ctx, domain.SubmissionFilter{EnquiryType: "franchise"}, opts)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, subs, 1)
	assert.Equal(t, "a@example.com", subs[0].Email)

	subs, total, err = repo.List(ctx, domain.SubmissionFilter{Status: "contacted"}, opts)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, subs, 1)
	assert.Equal(t, "b@example.com", subs[0].Email)

	// Search is case-insensitive and matches name, email, city and message
	subs, total, err = repo.List(ctx, domain.SubmissionFilter{Search: "ALMATY"}, opts)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, subs, 1)
	assert.Equal(t, "Aigerim Bekova", subs[0].Name)

	subs, total, err = repo.List(ctx, domain.SubmissionFilter{Search: "ortega"}, opts)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, subs, 1)

	_, total, err = repo.List(ctx, domain.SubmissionFilter{Search: "franchise"}, opts)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total, "message text matches every row")
}

func TestListSortAndPagination(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		created := base.Add(time.Duration(i) * time.Minute)
		seedSubmission(t, repo, func(s *domain.Submission) {
			s.Email = fmt.Sprintf("user%d@example.com", i)
			s.CreatedAt = created
			s.UpdatedAt = created
		})
	}

	// Default sort is createdAt descending
	subs, total, err := repo.List(ctx, domain.SubmissionFilter{}, domain.ListOptions{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, subs, 2)
	assert.Equal(t, "user4@example.com", subs[0].Email)
	assert.Equal(t, "user3@example.com", subs[1].Email)

	subs, _, err = repo.List(ctx, domain.SubmissionFilter{}, domain.ListOptions{Page: 3, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "user0@example.com", subs[0].Email)

	subs, _, err = repo.List(ctx, domain.SubmissionFilter{}, domain.ListOptions{
		Page: 1, PageSize: 5, SortBy: "email", SortOrder: "asc",
	})
	require.NoError(t, err)
	require.Len(t, subs, 5)
	assert.Equal(t, "user0@example.com", subs[0].Email)

	// Unknown sort keys fall back to created_at
	subs, _, err = repo.List(ctx, domain.SubmissionFilter{}, domain.ListOptions{
		Page: 1, PageSize: 1, SortBy: "drop table", SortOrder: "desc",
	})
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "user4@example.com", subs[0].Email)
}

func TestCountByEnquiryType(t *testing.T) {
	repo := setupRepo(t)

	for i := 0; i < 3; i++ {
		seedSubmission(t, repo, func(s *domain.Submission) {
			s.Email = fmt.Sprintf("f%d@example.com", i)
			s.EnquiryType = domain.EnquiryFranchise
		})
	}
	seedSubmission(t, repo, func(s *domain.Submission) {
		s.Email = "g@example.com"
		s.EnquiryType = domain.EnquiryGeneral
	})

	counts, err := repo.CountByEnquiryType(context.Background())
	require.NoError(t, err)

	byType := make(map[domain.EnquiryType]int64, len(counts))
	for _, c := range counts {
		byType[c.EnquiryType] = c.Count
	}
	assert.Equal(t, int64(3), byType[domain.EnquiryFranchise])
	assert.Equal(t, int64(1), byType[domain.EnquiryGeneral])
}

func TestUpdateFieldsScope(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	sub := seedSubmission(t, repo, nil)

	updated, err := repo.UpdateFields(ctx, sub.ID, map[string]any{
		"status": domain.StatusContacted,
		"notes":  "called, call back tomorrow",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, domain.StatusContacted, updated.Status)
	assert.Equal(t, "called, call back tomorrow", updated.Notes)

	// Everything outside the patch is untouched
	assert.Equal(t, sub.Email, updated.Email)
	assert.Equal(t, sub.Name, updated.Name)
	assert.Equal(t, sub.Message, updated.Message)
	assert.WithinDuration(t, sub.CreatedAt, updated.CreatedAt, time.Second)
	assert.False(t, updated.UpdatedAt.Before(sub.UpdatedAt))
}

func TestUpdateFieldsUnknownID(t *testing.T) {
	repo := setupRepo(t)

	updated, err := repo.UpdateFields(context.Background(), "missing", map[string]any{
		"status": domain.StatusClosed,
	})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestFindForExportDateRangeAndOrder(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	day := 24 * time.Hour
	now := time.Now()
	for i := 0; i < 4; i++ {
		created := now.Add(-time.Duration(i) * day)
		seedSubmission(t, repo, func(s *domain.Submission) {
			s.Email = fmt.Sprintf("d%d@example.com", i)
			s.CreatedAt = created
			s.UpdatedAt = created
		})
	}

	start := now.Add(-2*day - time.Hour)
	subs, err := repo.FindForExport(ctx, domain.ExportFilter{StartDate: &start})
	require.NoError(t, err)
	require.Len(t, subs, 3)
	assert.Equal(t, "d0@example.com", subs[0].Email, "newest first")

	end := now.Add(-2*day + time.Hour)
	subs, err = repo.FindForExport(ctx, domain.ExportFilter{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "d2@example.com", subs[0].Email)
}
