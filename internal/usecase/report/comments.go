package report

import (
	"context"
	"errors"
	"strings"

	"activity-report-service/internal/domain/policy"
	reportDomain "activity-report-service/internal/domain/report"
	userDomain "activity-report-service/internal/domain/user"

	"gorm.io/gorm"
)

// AddComment appends a comment. The author's visibility of the report is
// re-checked here, not only at list time.
func (u *Usecase) AddComment(ctx context.Context, reportID, authorID uint64, text string) (*reportDomain.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, reportDomain.Invalid("comment must not be empty")
	}

	author, err := u.users.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userDomain.ErrNotFound
		}
		return nil, err
	}

	rep, err := u.reports.GetByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reportDomain.ErrNotFound
		}
		return nil, err
	}
	if !policy.CanView(authorID, author.Role, rep.CreatedBy) {
		return nil, reportDomain.Denied("staff users can only comment on their own reports")
	}

	c := &reportDomain.Comment{ReportID: reportID, UserID: authorID, Comment: text}
	if err := u.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *Usecase) ListComments(ctx context.Context, reportID, callerID uint64, role userDomain.Role) ([]reportDomain.Comment, error) {
	rep, err := u.reports.GetByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reportDomain.ErrNotFound
		}
		return nil, err
	}
	if !policy.CanView(callerID, role, rep.CreatedBy) {
		return nil, reportDomain.Denied("staff users can only view comments on their own reports")
	}
	out, err := u.comments.ListByReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []reportDomain.Comment{}
	}
	return out, nil
}
