package report

import (
	"context"
	"errors"
	"strings"

	"activity-report-service/internal/domain/policy"
	reportDomain "activity-report-service/internal/domain/report"
	"activity-report-service/internal/domain/uow"
	userDomain "activity-report-service/internal/domain/user"

	"gorm.io/gorm"
)

// Review moves a SUBMITTED report to APPROVED or REJECTED. The report
// row is locked for the duration of the transaction, so of two
// concurrent reviews exactly one wins; the loser sees ErrInvalidState.
func (u *Usecase) Review(ctx context.Context, in ReviewInput, reviewerID uint64, role userDomain.Role) (*reportDomain.Report, error) {
	if !policy.CanReview(role) {
		return nil, reportDomain.Denied("only supervisors can review reports")
	}
	if in.Decision != reportDomain.StatusApproved && in.Decision != reportDomain.StatusRejected {
		return nil, reportDomain.Invalid("review status must be APPROVED or REJECTED")
	}

	var out *reportDomain.Report
	err := u.uow.WithinReportTx(ctx, in.ReportID, func(r uow.Repos, rep *reportDomain.Report) error {
		if rep.Status != reportDomain.StatusSubmitted {
			return reportDomain.ErrInvalidState
		}
		rep.Status = in.Decision
		if err := r.Reports.Save(ctx, rep); err != nil {
			return err
		}
		// Whitespace-only review comments are dropped, not rejected.
		if text := strings.TrimSpace(in.Comment); text != "" {
			c := &reportDomain.Comment{ReportID: rep.ID, UserID: reviewerID, Comment: text}
			if err := r.Comments.Create(ctx, c); err != nil {
				return err
			}
		}
		out = rep
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reportDomain.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}
