package admin

import (
	"time"

	"zevro/internal/domain"
)

// LoginRequest carries the admin credential pair
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ListQuery is the parsed query string of the submissions listing
type ListQuery struct {
	Page        int
	PageSize    int
	EnquiryType string
	Status      string
	Search      string
	SortBy      string
	SortOrder   string
}

// UpdateRequest patches the admin-owned workflow fields; absent fields are
// left untouched.
type UpdateRequest struct {
	Status       *string    `json:"status"`
	Notes        *string    `json:"notes"`
	FollowUpDate *time.Time `json:"followUpDate"`
	AssignedTo   *string    `json:"assignedTo"`
}

// Pagination describes one page of the listing against true totals
type Pagination struct {
	CurrentPage      int   `json:"currentPage"`
	TotalPages       int   `json:"totalPages"`
	TotalSubmissions int64 `json:"totalSubmissions"`
	HasNextPage      bool  `json:"hasNextPage"`
	HasPrevPage      bool  `json:"hasPrevPage"`
}

// ListResult is the listing payload: one page plus whole-store statistics
type ListResult struct {
	Submissions []domain.Submission       `json:"submissions"`
	Pagination  Pagination                `json:"pagination"`
	Statistics  []domain.EnquiryTypeCount `json:"statistics"`
}
