package report

import (
	"io"

	reportDomain "activity-report-service/internal/domain/report"
)

type CreateInput struct {
	Title        string
	ActivityDate string // YYYY-MM-DD
	StartTime    string // HH:MM
	EndTime      string // HH:MM
	Description  string
	Location     string
	Participants string
	// Status is optional; DRAFT when unset. SUBMITTED is the only other
	// value accepted at creation time.
	Status *reportDomain.Status
}

// UpdateInput is a field-presence patch: nil means "leave untouched",
// a non-nil pointer means "set to this value".
type UpdateInput struct {
	ID           uint64
	Title        *string
	ActivityDate *string
	StartTime    *string
	EndTime      *string
	Description  *string
	Location     *string
	Participants *string
	Status       *reportDomain.Status
}

type ListInput struct {
	Status    *reportDomain.Status
	CreatedBy *uint64
	DateFrom  *string // YYYY-MM-DD, inclusive
	DateTo    *string // YYYY-MM-DD, inclusive
	Search    string
	Limit     int
	Offset    int
}

type ListResult struct {
	Reports []reportDomain.Report `json:"reports"`
	Total   int64                 `json:"total"`
	Limit   int                   `json:"limit"`
	Offset  int                   `json:"offset"`
}

type ReviewInput struct {
	ReportID uint64
	Decision reportDomain.Status // APPROVED or REJECTED
	Comment  string              // optional; trimmed, dropped when empty
}

type UploadAttachmentInput struct {
	ReportID         uint64
	OriginalFilename string
	MimeType         string
	Content          io.Reader
}

type DashboardStats struct {
	reportDomain.StatusCounts
	RecentReports []reportDomain.Report `json:"recent_reports"`
}
