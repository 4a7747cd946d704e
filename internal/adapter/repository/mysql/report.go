package mysql

import (
	"context"
	"strings"

	reportDomain "activity-report-service/internal/domain/report"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ReportRepository struct{ db *gorm.DB }

func NewReportRepository(db *gorm.DB) *ReportRepository { return &ReportRepository{db: db} }

func (r *ReportRepository) Create(ctx context.Context, rep *reportDomain.Report) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *ReportRepository) Save(ctx context.Context, rep *reportDomain.Report) error {
	return r.db.WithContext(ctx).Save(rep).Error
}

func (r *ReportRepository) GetByID(ctx context.Context, id uint64) (*reportDomain.Report, error) {
	var out reportDomain.Report
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *ReportRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*reportDomain.Report, error) {
	var out reportDomain.Report
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *ReportRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&reportDomain.Report{}).Error
}

// applyFilter builds the conjunctive predicate shared by the page query
// and the total count. Pagination is handled by List itself.
func applyFilter(q *gorm.DB, f reportDomain.Filter) *gorm.DB {
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.CreatedBy != nil {
		q = q.Where("created_by = ?", *f.CreatedBy)
	}
	if f.DateFrom != nil {
		q = q.Where("activity_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("activity_date <= ?", *f.DateTo)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(location) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	return q
}

func (r *ReportRepository) List(ctx context.Context, f reportDomain.Filter) ([]reportDomain.Report, int64, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = defaultPageSize
	} else if limit > maxPageSize {
		limit = maxPageSize
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	base := applyFilter(r.db.WithContext(ctx).Model(&reportDomain.Report{}), f)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var page []reportDomain.Report
	err := applyFilter(r.db.WithContext(ctx).Model(&reportDomain.Report{}), f).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&page).Error
	if err != nil {
		return nil, 0, err
	}
	return page, total, nil
}

func (r *ReportRepository) CountByStatus(ctx context.Context, createdBy *uint64) (reportDomain.StatusCounts, error) {
	var counts reportDomain.StatusCounts

	q := r.db.WithContext(ctx).Model(&reportDomain.Report{})
	if createdBy != nil {
		q = q.Where("created_by = ?", *createdBy)
	}

	type row struct {
		Status reportDomain.Status
		N      int64
	}
	var rows []row
	if err := q.Select("status, COUNT(*) AS n").Group("status").Scan(&rows).Error; err != nil {
		return counts, err
	}
	for _, rw := range rows {
		counts.Total += rw.N
		switch rw.Status {
		case reportDomain.StatusDraft:
			counts.Draft = rw.N
		case reportDomain.StatusSubmitted:
			counts.Submitted = rw.N
		case reportDomain.StatusApproved:
			counts.Approved = rw.N
		case reportDomain.StatusRejected:
			counts.Rejected = rw.N
		}
	}
	return counts, nil
}

func (r *ReportRepository) Recent(ctx context.Context, createdBy *uint64, limit int) ([]reportDomain.Report, error) {
	q := r.db.WithContext(ctx).Model(&reportDomain.Report{})
	if createdBy != nil {
		q = q.Where("created_by = ?", *createdBy)
	}
	var out []reportDomain.Report
	err := q.Order("created_at DESC, id DESC").Limit(limit).Find(&out).Error
	return out, err
}
