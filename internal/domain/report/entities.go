package report

import (
	"time"
)

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusSubmitted Status = "SUBMITTED"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
)

// Valid reports whether s is one of the four lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Report struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title        string    `gorm:"column:title;size:255;not null" json:"title"`
	ActivityDate time.Time `gorm:"column:activity_date;type:date;not null" json:"activity_date"`
	// StartTime/EndTime use the 24h "HH:MM" wall-clock format.
	StartTime    string    `gorm:"column:start_time;size:5;not null" json:"start_time"`
	EndTime      string    `gorm:"column:end_time;size:5;not null" json:"end_time"`
	Description  string    `gorm:"column:description;type:text;not null" json:"description"`
	Location     string    `gorm:"column:location;size:255;not null" json:"location"`
	Participants string    `gorm:"column:participants;type:text" json:"participants"`
	Status       Status    `gorm:"column:status;size:16;not null;default:'DRAFT';index:idx_reports_status" json:"status"`
	CreatedBy    uint64    `gorm:"column:created_by;not null;index:idx_reports_created_by" json:"created_by"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Report) TableName() string { return "reports" }

// Comment rows are append-only: never updated, removed only when the
// parent report is deleted.
type Comment struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ReportID  uint64    `gorm:"column:report_id;not null;index:idx_report_comments_report" json:"report_id"`
	UserID    uint64    `gorm:"column:user_id;not null" json:"user_id"`
	Comment   string    `gorm:"column:comment;type:text;not null" json:"comment"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Comment) TableName() string { return "report_comments" }

type Attachment struct {
	ID               uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ReportID         uint64    `gorm:"column:report_id;not null;index:idx_report_attachments_report" json:"report_id"`
	Filename         string    `gorm:"column:filename;size:255;not null" json:"filename"`
	OriginalFilename string    `gorm:"column:original_filename;size:255;not null" json:"original_filename"`
	FilePath         string    `gorm:"column:file_path;size:512;not null" json:"file_path"`
	FileSize         int64     `gorm:"column:file_size;not null" json:"file_size"`
	MimeType         string    `gorm:"column:mime_type;size:128;not null" json:"mime_type"`
	UploadedAt       time.Time `gorm:"column:uploaded_at;autoCreateTime" json:"uploaded_at"`
}

func (Attachment) TableName() string { return "report_attachments" }

// StatusCounts is the dashboard rollup over a role-scoped report set.
type StatusCounts struct {
	Total     int64 `json:"total_reports"`
	Draft     int64 `json:"draft"`
	Submitted int64 `json:"submitted"`
	Approved  int64 `json:"approved"`
	Rejected  int64 `json:"rejected"`
}
