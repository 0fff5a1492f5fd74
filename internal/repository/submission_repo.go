package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"zevro/internal/domain"
)

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// sortableColumns maps API sort keys onto columns. Anything outside the
// map falls back to created_at.
var sortableColumns = map[string]string{
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"name":        "name",
	"email":       "email",
	"phone":       "phone",
	"city":        "city",
	"enquiryType": "enquiry_type",
	"message":     "message",
	"status":      "status",
}

func (r *SubmissionRepository) Create(ctx context.Context, sub *domain.Submission) error {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	var sub domain.Submission
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&sub)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &sub, nil
}

// ExistsRecentByEmail reports whether the email already submitted on or
// after the given instant. Backs the 24h dedup guard.
func (r *SubmissionRepository) ExistsRecentByEmail(ctx context.Context, email string, since time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Submission{}).
		Where("email = ? AND created_at >= ?", strings.ToLower(strings.TrimSpace(email)), since).
		Count(&count).Error
	return count > 0, err
}

// List returns one page of submissions plus the total matching count
func (r *SubmissionRepository) List(ctx context.Context, filter domain.SubmissionFilter, opts domain.ListOptions) ([]domain.Submission, int64, error) {
	query := applyFilter(r.db.WithContext(ctx).Model(&domain.Submission{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortableColumns[opts.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(opts.SortOrder, "asc") {
		direction = "ASC"
	}

	offset := (opts.Page - 1) * opts.PageSize

	var subs []domain.Submission
	err := query.
		Order(column + " " + direction + ", id " + direction).
		Offset(offset).
		Limit(opts.PageSize).
		Find(&subs).Error
	return subs, total, err
}

// CountByEnquiryType aggregates the whole store, ignoring any filter
func (r *SubmissionRepository) CountByEnquiryType(ctx context.Context) ([]domain.EnquiryTypeCount, error) {
	var counts []domain.EnquiryTypeCount
	err := r.db.WithContext(ctx).
		Model(&domain.Submission{}).
		Select("enquiry_type, COUNT(*) AS count").
		Group("enquiry_type").
		Order("enquiry_type").
		Scan(&counts).Error
	return counts, err
}

// UpdateFields patches the given columns on one submission and returns the
// reloaded record, or nil when the id is unknown. UpdatedAt is refreshed
// by gorm on every patch.
func (r *SubmissionRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) (*domain.Submission, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Submission{}).
		Where("id = ?", id).
		Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

// FindForExport returns every matching submission, newest first
func (r *SubmissionRepository) FindForExport(ctx context.Context, filter domain.ExportFilter) ([]domain.Submission, error) {
	query := r.db.WithContext(ctx).Model(&domain.Submission{})
	if filter.EnquiryType != "" {
		query = query.Where("enquiry_type = ?", filter.EnquiryType)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", *filter.EndDate)
	}

	var subs []domain.Submission
	err := query.Order("created_at DESC, id DESC").Find(&subs).Error
	return subs, err
}

func applyFilter(query *gorm.DB, filter domain.SubmissionFilter) *gorm.DB {
	if filter.EnquiryType != "" {
		query = query.Where("enquiry_type = ?", filter.EnquiryType)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(city) LIKE ? OR LOWER(message) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	return query
}
