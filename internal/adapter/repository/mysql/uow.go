package mysql

import (
	"context"

	"activity-report-service/internal/domain/report"
	"activity-report-service/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func bindRepos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Users:       &UserRepository{db: tx},
		Reports:     &ReportRepository{db: tx},
		Comments:    &CommentRepository{db: tx},
		Attachments: &AttachmentRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(bindRepos(tx))
	})
}

func (u *GormUoW) WithinReportTx(ctx context.Context, reportID uint64, fn func(r uow.Repos, rep *report.Report) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := bindRepos(tx)
		// lock the report row up-front to prevent races
		rep, err := r.Reports.GetByIDForUpdate(ctx, reportID)
		if err != nil {
			return err
		}
		return fn(r, rep)
	})
}
