package domain

import "time"

// Status represents the triage state of a submission
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusQualified Status = "qualified"
	StatusConverted Status = "converted"
	StatusClosed    Status = "closed"
)

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusQualified, StatusConverted, StatusClosed:
		return true
	}
	return false
}

// EnquiryType classifies why a submission was made
type EnquiryType string

const (
	EnquiryFranchise EnquiryType = "franchise"
	EnquiryContact   EnquiryType = "contact"
	EnquiryGeneral   EnquiryType = "general"
)

// Valid reports whether e is one of the known enquiry types
func (e EnquiryType) Valid() bool {
	switch e {
	case EnquiryFranchise, EnquiryContact, EnquiryGeneral:
		return true
	}
	return false
}

// UTM carries optional marketing attribution captured with a submission
type UTM struct {
	Source   string `gorm:"size:200" json:"source,omitempty"`
	Medium   string `gorm:"size:200" json:"medium,omitempty"`
	Campaign string `gorm:"size:200" json:"campaign,omitempty"`
	Term     string `gorm:"size:200" json:"term,omitempty"`
	Content  string `gorm:"size:200" json:"content,omitempty"`
}

// Submission is one inbound lead captured through the contact form.
// Contact fields and provenance are immutable after creation; only the
// workflow fields (status, notes, follow-up, assignment) may change.
type Submission struct {
	ID          string      `gorm:"primaryKey;size:36" json:"id"`
	Name        string      `gorm:"not null;size:100" json:"name"`
	Email       string      `gorm:"not null;size:320;index" json:"email"`
	Phone       string      `gorm:"not null;size:32" json:"phone"`
	City        string      `gorm:"not null;size:100" json:"city"`
	EnquiryType EnquiryType `gorm:"not null;size:20;index" json:"enquiryType"`
	Message     string      `gorm:"not null;size:1000" json:"message"`

	UTM UTM `gorm:"embedded;embeddedPrefix:utm_" json:"utm"`

	IP        string `gorm:"size:64" json:"ip,omitempty"`
	UserAgent string `gorm:"size:400" json:"userAgent,omitempty"`

	Status       Status     `gorm:"not null;size:20;default:new;index" json:"status"`
	Notes        string     `gorm:"size:2000" json:"notes,omitempty"`
	FollowUpDate *time.Time `json:"followUpDate,omitempty"`
	AssignedTo   string     `gorm:"size:200" json:"assignedTo,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Submission) TableName() string { return "submissions" }

// SubmissionFilter narrows admin listings. Search matches name, email,
// city and message as a case-insensitive substring.
type SubmissionFilter struct {
	EnquiryType string
	Status      string
	Search      string
}

// ListOptions controls pagination and ordering of admin listings
type ListOptions struct {
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// ExportFilter narrows CSV exports
type ExportFilter struct {
	EnquiryType string
	Status      string
	StartDate   *time.Time
	EndDate     *time.Time
}

// EnquiryTypeCount is one row of the whole-store statistics aggregate
type EnquiryTypeCount struct {
	EnquiryType EnquiryType `json:"enquiryType"`
	Count       int64       `json:"count"`
}
