package mysql

import (
	"context"

	reportDomain "activity-report-service/internal/domain/report"

	"gorm.io/gorm"
)

type AttachmentRepository struct{ db *gorm.DB }

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

func (r *AttachmentRepository) Create(ctx context.Context, a *reportDomain.Attachment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AttachmentRepository) GetByID(ctx context.Context, id uint64) (*reportDomain.Attachment, error) {
	var out reportDomain.Attachment
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *AttachmentRepository) ListByReport(ctx context.Context, reportID uint64) ([]reportDomain.Attachment, error) {
	var out []reportDomain.Attachment
	res := r.db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Order("uploaded_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *AttachmentRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&reportDomain.Attachment{}).Error
}

func (r *AttachmentRepository) DeleteByReport(ctx context.Context, reportID uint64) error {
	return r.db.WithContext(ctx).Where("report_id = ?", reportID).Delete(&reportDomain.Attachment{}).Error
}
