package uow

import (
	"context"

	"activity-report-service/internal/domain/report"
	"activity-report-service/internal/domain/user"
)

type Repos struct {
	Users       user.Repository
	Reports     report.Repository
	Comments    report.CommentRepository
	Attachments report.AttachmentRepository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the report row first, then pass it in
	WithinReportTx(ctx context.Context, reportID uint64, fn func(r Repos, rep *report.Report) error) error
}
