package report

import (
	"context"
	"time"
)

// Filter is the conjunctive predicate for List. Nil pointer fields mean
// "not filtered". Pagination is always applied; Limit is clamped to 100
// and defaults to 20, Offset defaults to 0.
type Filter struct {
	Status    *Status
	CreatedBy *uint64
	DateFrom  *time.Time
	DateTo    *time.Time
	Search    string
	Limit     int
	Offset    int
}

type Repository interface {
	Create(ctx context.Context, r *Report) error
	GetByID(ctx context.Context, id uint64) (*Report, error)
	// GetByIDForUpdate locks the row for the duration of the surrounding
	// transaction so that concurrent reviews serialize.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Report, error)
	Save(ctx context.Context, r *Report) error
	Delete(ctx context.Context, id uint64) error
	// List returns one page plus the total matching all filters except
	// pagination.
	List(ctx context.Context, f Filter) ([]Report, int64, error)
	// CountByStatus aggregates over all reports, or over a single
	// creator's reports when createdBy is non-nil.
	CountByStatus(ctx context.Context, createdBy *uint64) (StatusCounts, error)
	// Recent returns the most recently created reports, newest first.
	Recent(ctx context.Context, createdBy *uint64, limit int) ([]Report, error)
}

type CommentRepository interface {
	Create(ctx context.Context, c *Comment) error
	ListByReport(ctx context.Context, reportID uint64) ([]Comment, error)
	DeleteByReport(ctx context.Context, reportID uint64) error
}

type AttachmentRepository interface {
	Create(ctx context.Context, a *Attachment) error
	GetByID(ctx context.Context, id uint64) (*Attachment, error)
	ListByReport(ctx context.Context, reportID uint64) ([]Attachment, error)
	Delete(ctx context.Context, id uint64) error
	DeleteByReport(ctx context.Context, reportID uint64) error
}
