package mysql

import (
	"context"

	reportDomain "activity-report-service/internal/domain/report"

	"gorm.io/gorm"
)

type CommentRepository struct{ db *gorm.DB }

func NewCommentRepository(db *gorm.DB) *CommentRepository { return &CommentRepository{db: db} }

func (r *CommentRepository) Create(ctx context.Context, c *reportDomain.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CommentRepository) ListByReport(ctx context.Context, reportID uint64) ([]reportDomain.Comment, error) {
	var out []reportDomain.Comment
	res := r.db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *CommentRepository) DeleteByReport(ctx context.Context, reportID uint64) error {
	return r.db.WithContext(ctx).Where("report_id = ?", reportID).Delete(&reportDomain.Comment{}).Error
}
