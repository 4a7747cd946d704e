package mysql

import (
	"context"
	"errors"
	"testing"

	reportDomain "activity-report-service/internal/domain/report"
	"activity-report-service/internal/domain/uow"

	"gorm.io/gorm"
)

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	comRepo := NewCommentRepository(db)

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		rep := makeReport("tx commit", 1, reportDomain.StatusSubmitted)
		if err := r.Reports.Create(ctx, rep); err != nil {
			return err
		}
		if rep.ID == 0 {
			t.Fatal("report auto ID not set")
		}
		return r.Comments.Create(ctx, &reportDomain.Comment{ReportID: rep.ID, UserID: 3, Comment: "ok"})
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	var rep reportDomain.Report
	if err := db.Where("title = ?", "tx commit").First(&rep).Error; err != nil {
		t.Fatalf("report not visible after commit: %v", err)
	}
	comments, err := comRepo.ListByReport(ctx, rep.ID)
	if err != nil || len(comments) != 1 {
		t.Fatalf("comments after commit: %v (%d)", err, len(comments))
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	sentinel := errors.New("boom")

	_ = guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Reports.Create(ctx, makeReport("tx rollback", 1, reportDomain.StatusDraft)); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	var rep reportDomain.Report
	err := db.Where("title = ?", "tx rollback").First(&rep).Error
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found after rollback, got %v", err)
	}
}

func TestGormUoW_WithinReportTx_LocksAndCommits(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	repRepo := NewReportRepository(db)

	seed := makeReport("review target", 1, reportDomain.StatusSubmitted)
	if err := repRepo.Create(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := guow.WithinReportTx(ctx, seed.ID, func(r uow.Repos, rep *reportDomain.Report) error {
		if rep == nil || rep.ID != seed.ID || rep.Status != reportDomain.StatusSubmitted {
			t.Fatalf("unexpected report passed to fn: %+v", rep)
		}
		rep.Status = reportDomain.StatusApproved
		return r.Reports.Save(ctx, rep)
	}); err != nil {
		t.Fatalf("WithinReportTx commit err: %v", err)
	}

	got, err := repRepo.GetByID(ctx, seed.ID)
	if err != nil {
		t.Fatalf("GetByID post-commit: %v", err)
	}
	if got.Status != reportDomain.StatusApproved {
		t.Fatalf("status not updated, got=%s", got.Status)
	}
}

func TestGormUoW_WithinReportTx_NotFound(t *testing.T) {
	db := openTestDB(t)
	guow := NewGormUoW(db)

	err := guow.WithinReportTx(context.Background(), 9999, func(r uow.Repos, rep *reportDomain.Report) error {
		t.Fatal("callback should not run when report missing")
		return nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

// Cascade delete through the UoW: the report row, its comments and its
// attachment rows all go in one transaction.
func TestGormUoW_CascadeDelete(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	repRepo := NewReportRepository(db)
	comRepo := NewCommentRepository(db)
	attRepo := NewAttachmentRepository(db)

	rep := makeReport("doomed", 1, reportDomain.StatusDraft)
	if err := repRepo.Create(ctx, rep); err != nil {
		t.Fatalf("seed report: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := comRepo.Create(ctx, &reportDomain.Comment{ReportID: rep.ID, UserID: 1, Comment: "c"}); err != nil {
			t.Fatalf("seed comment: %v", err)
		}
	}
	for i := 0; i < 2; i++ {
		if err := attRepo.Create(ctx, &reportDomain.Attachment{
			ReportID: rep.ID, Filename: "f", OriginalFilename: "o", FilePath: "p", FileSize: 1, MimeType: "m",
		}); err != nil {
			t.Fatalf("seed attachment: %v", err)
		}
	}

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Comments.DeleteByReport(ctx, rep.ID); err != nil {
			return err
		}
		if err := r.Attachments.DeleteByReport(ctx, rep.ID); err != nil {
			return err
		}
		return r.Reports.Delete(ctx, rep.ID)
	})
	if err != nil {
		t.Fatalf("cascade tx: %v", err)
	}

	if _, err := repRepo.GetByID(ctx, rep.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("report should be gone, got %v", err)
	}
	comments, _ := comRepo.ListByReport(ctx, rep.ID)
	if len(comments) != 0 {
		t.Fatalf("comments remain: %d", len(comments))
	}
	atts, _ := attRepo.ListByReport(ctx, rep.ID)
	if len(atts) != 0 {
		t.Fatalf("attachments remain: %d", len(atts))
	}
}
