package reportmock

import (
	"context"

	domain "activity-report-service/internal/domain/report"

	"gorm.io/gorm"
)

// Repo is a function-backed mock that satisfies report.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, r *domain.Report) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Report, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Report, error)
	SaveFn             func(ctx context.Context, r *domain.Report) error
	DeleteFn           func(ctx context.Context, id uint64) error
	ListFn             func(ctx context.Context, f domain.Filter) ([]domain.Report, int64, error)
	CountByStatusFn    func(ctx context.Context, createdBy *uint64) (domain.StatusCounts, error)
	RecentFn           func(ctx context.Context, createdBy *uint64, limit int) ([]domain.Report, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.Report) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Report, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Report, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) Save(ctx context.Context, r *domain.Report) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.Report, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, nil
}

func (m *Repo) CountByStatus(ctx context.Context, createdBy *uint64) (domain.StatusCounts, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx, createdBy)
	}
	return domain.StatusCounts{}, nil
}

func (m *Repo) Recent(ctx context.Context, createdBy *uint64, limit int) ([]domain.Report, error) {
	if m.RecentFn != nil {
		return m.RecentFn(ctx, createdBy, limit)
	}
	return nil, nil
}

// CommentRepo mocks report.CommentRepository.
type CommentRepo struct {
	CreateFn         func(ctx context.Context, c *domain.Comment) error
	ListByReportFn   func(ctx context.Context, reportID uint64) ([]domain.Comment, error)
	DeleteByReportFn func(ctx context.Context, reportID uint64) error
}

func (m *CommentRepo) Create(ctx context.Context, c *domain.Comment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *CommentRepo) ListByReport(ctx context.Context, reportID uint64) ([]domain.Comment, error) {
	if m.ListByReportFn != nil {
		return m.ListByReportFn(ctx, reportID)
	}
	return nil, nil
}

func (m *CommentRepo) DeleteByReport(ctx context.Context, reportID uint64) error {
	if m.DeleteByReportFn != nil {
		return m.DeleteByReportFn(ctx, reportID)
	}
	return nil
}

// AttachmentRepo mocks report.AttachmentRepository.
type AttachmentRepo struct {
	CreateFn         func(ctx context.Context, a *domain.Attachment) error
	GetByIDFn        func(ctx context.Context, id uint64) (*domain.Attachment, error)
	ListByReportFn   func(ctx context.Context, reportID uint64) ([]domain.Attachment, error)
	DeleteFn         func(ctx context.Context, id uint64) error
	DeleteByReportFn func(ctx context.Context, reportID uint64) error
}

func (m *AttachmentRepo) Create(ctx context.Context, a *domain.Attachment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *AttachmentRepo) GetByID(ctx context.Context, id uint64) (*domain.Attachment, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *AttachmentRepo) ListByReport(ctx context.Context, reportID uint64) ([]domain.Attachment, error) {
	if m.ListByReportFn != nil {
		return m.ListByReportFn(ctx, reportID)
	}
	return nil, nil
}

func (m *AttachmentRepo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *AttachmentRepo) DeleteByReport(ctx context.Context, reportID uint64) error {
	if m.DeleteByReportFn != nil {
		return m.DeleteByReportFn(ctx, reportID)
	}
	return nil
}
