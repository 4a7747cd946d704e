package report

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	reportDomain "activity-report-service/internal/domain/report"
	"activity-report-service/internal/domain/uow"
	userDomain "activity-report-service/internal/domain/user"
	"activity-report-service/internal/testutil/blobmock"
	"activity-report-service/internal/testutil/reportmock"
	"activity-report-service/internal/testutil/uowmock"
	"activity-report-service/internal/testutil/usermock"

	"gorm.io/gorm"
)

// ----- test doubles -----

func staffUser(id uint64) *userDomain.User {
	return &userDomain.User{ID: id, Username: "staff", Role: userDomain.RoleStaff}
}

func knownUsers(users ...*userDomain.User) *usermock.Repo {
	return &usermock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*userDomain.User, error) {
			for _, u := range users {
				if u.ID == id {
					return u, nil
				}
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
}

func newTestUsecase(users *usermock.Repo, reports *reportmock.Repo) (*Usecase, uow.Repos) {
	r := uow.Repos{
		Users:       users,
		Reports:     reports,
		Comments:    &reportmock.CommentRepo{},
		Attachments: &reportmock.AttachmentRepo{},
	}
	return NewUsecase(r, &uowmock.UoW{Repos: r}, blobmock.New()), r
}

// ----- Create -----

func TestCreate_DefaultsToDraft(t *testing.T) {
	reports := &reportmock.Repo{
		CreateFn: func(ctx context.Context, r *reportDomain.Report) error {
			r.ID = 10
			r.CreatedAt = time.Now().UTC()
			return nil
		},
	}
	uc, _ := newTestUsecase(knownUsers(staffUser(1)), reports)

	rep, err := uc.Create(context.Background(), CreateInput{
		Title:        "T",
		ActivityDate: "2024-01-15",
		StartTime:    "09:00",
		EndTime:      "12:00",
		Description:  "D",
		Location:     "L",
		Participants: "P",
	}, 1)
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if rep.Status != reportDomain.StatusDraft {
		t.Fatalf("status=%s, want DRAFT", rep.Status)
	}
	if rep.CreatedBy != 1 {
		t.Fatalf("created_by=%d, want 1", rep.CreatedBy)
	}
}

func TestCreate_ExplicitSubmitted(t *testing.T) {
	uc, _ := newTestUsecase(knownUsers(staffUser(1)), &reportmock.Repo{})

	s := reportDomain.StatusSubmitted
	rep, err := uc.Create(context.Background(), CreateInput{
		Title: "T", ActivityDate: "2024-01-15", StartTime: "09:00", EndTime: "12:00",
		Description: "D", Location: "L", Status: &s,
	}, 1)
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if rep.Status != reportDomain.StatusSubmitted {
		t.Fatalf("status=%s, want SUBMITTED", rep.Status)
	}
}

func TestCreate_RejectsApprovedAsInitialStatus(t *testing.T) {
	uc, _ := newTestUsecase(knownUsers(staffUser(1)), &reportmock.Repo{})

	s := reportDomain.StatusApproved
	_, err := uc.Create(context.Background(), CreateInput{
		Title: "T", ActivityDate: "2024-01-15", StartTime: "09:00", EndTime: "12:00",
		Description: "D", Location: "L", Status: &s,
	}, 1)
	if !errors.Is(err, reportDomain.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestCreate_InvalidTimeFormat(t *testing.T) {
	uc, _ := newTestUsecase(knownUsers(staffUser(1)), &reportmock.Repo{})

	for _, bad := range []string{"9:00", "24:00", "12:60", "noon"} {
		_, err := uc.Create(context.Background(), CreateInput{
			Title: "T", ActivityDate: "2024-01-15", StartTime: bad, EndTime: "12:00",
			Description: "D", Location: "L",
		}, 1)
		if !errors.Is(err, reportDomain.ErrValidation) {
			t.Fatalf("start_time %q: want ErrValidation, got %v", bad, err)
		}
	}
}

func TestCreate_UnknownCreator(t *testing.T) {
	uc, _ := newTestUsecase(knownUsers(), &reportmock.Repo{})

	_, err := uc.Create(context.Background(), CreateInput{
		Title: "T", ActivityDate: "2024-01-15", StartTime: "09:00", EndTime: "12:00",
		Description: "D", Location: "L",
	}, 42)
	if !errors.Is(err, userDomain.ErrNotFound) {
		t.Fatalf("want user not found, got %v", err)
	}
}

// ----- Get: existence hiding -----

func TestGet_HidesAbsentAndForbiddenIdentically(t *testing.T) {
	reports := &reportmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*reportDomain.Report, error) {
			if id == 7 {
				return &reportDomain.Report{ID: 7, CreatedBy: 2, Status: reportDomain.StatusDraft}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc, _ := newTestUsecase(knownUsers(staffUser(1)), reports)
	ctx := context.Background()

	// absent
	rep, err := uc.Get(ctx, 999, 1, userDomain.RoleStaff)
	if err != nil || rep != nil {
		t.Fatalf("absent: got (%v, %v), want (nil, nil)", rep, err)
	}
	// exists but belongs to user 2
	rep, err = uc.Get(ctx, 7, 1, userDomain.RoleStaff)
	if err != nil || rep != nil {
		t.Fatalf("forbidden: got (%v, %v), want (nil, nil)", rep, err)
	}
	// supervisor sees it
	rep, err = uc.Get(ctx, 7, 3, userDomain.RolePimpinan)
	if err != nil || rep == nil || rep.ID != 7 {
		t.Fatalf("supervisor: got (%v, %v)", rep, err)
	}
}

func TestGet_Idempotent(t *testing.T) {
	stored := &reportDomain.Report{ID: 5, Title: "same", CreatedBy: 1, Status: reportDomain.StatusDraft}
	reports := &reportmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*reportDomain.Report, error) {
			cp := *stored
			return &cp, nil
		},
	}
	uc, _ := newTestUsecase(knownUsers(staffUser(1)), reports)
	ctx := context.Background()

	a, err := uc.Get(ctx, 5, 1, userDomain.RoleStaff)
	if err != nil {
		t.Fatal(err)
	}
	b, err := uc.Get(ctx, 5, 1, userDomain.RoleStaff)
	if err != nil {
		t.Fatal(err)
	}
	if *a != *b {
		t.Fatalf("two reads differ: %+v vs %+v", a, b)
	}
}

// ----- Update -----

func TestUpdate_StaffCannotTouchOthersReport(t *testing.T) {
	reports := &reportmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*reportDomain.Report, error) {
			return &reportDomain.Report{ID: id, CreatedBy: 1, Status: reportDomain.StatusDraft}, nil
		},
	}
	uc, _ := newTestUsecase(knownUsers(staffUser(1), staffUser2()), reports)

	title := "X"
	_, err := uc.Update(context.Background(), UpdateInput{ID: 5, Title: &title}, 2)
	if !errors.Is(err, reportDomain.ErrPermissionDenied) {
		t.Fatalf("want ErrPermissionDenied, got %v", err)
	}
	if !strings.Contains(err.Error(), "their own reports") {
		t.Fatalf("error should mention ownership: %v", err)
	}
}

func staffUser2() *userDomain.User {
	return &userDomain.User{ID: 2, Username: "staff2", Role: userDomain.RoleStaff}
}

func TestUpdate_StaffBlockedOutsideDraft(t *testing.T) {
	reports := &reportmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*reportDomain.Report, error) {
			return &reportDomain.Report{ID: id, CreatedBy: 1, Status: reportDomain.StatusSubmitted}, nil
		},
	}
	uc, _ := newTestUsecase(knownUsers(staffUser(1)), reports)

	title := "X"
	_, err := uc.Update(context.Background(), UpdateInput{ID: 5, Title: &title}, 1)
	if !errors.Is(err, reportDomain.ErrPermissionDenied) {
		t.Fatalf("want ErrPermissionDenied, got %v", err)
	}
	if !strings.Contains(err.Error(), "draft status") {
		t.Fatalf("error should mention draft status: %v", err)
	}
}

func TestUpdate_PatchLeavesOmittedFieldsAlone(t *testing.T) {
	var saved *reportDomain.Report
	reports := &reportmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*reportDomain.Report, error) {
			return &reportDomain.Report{
				ID: id, Title: "old title", Description: "old desc", Location: "old loc",
				StartTime: "09:00", EndTime: "10:00",
				CreatedBy: 1, Status: reportDomain.StatusDraft,
			}, nil
		},
		SaveFn: func(ctx context.Context, r *reportDomain.Report) error {
			saved = r
			return nil
		},
	}
	uc, _ := newTestUsecase(knownUsers(staffUser(1)), reports)

	title := "new title"
	status := reportDomain.StatusSubmitted
	got, err := uc.Update(context.Background(), UpdateInput{ID: 5, Title: &title, Status: &status}, 1)
	if err != nil {
		t.Fatalf("Update err: %v", err)
	}
	if saved == nil {
		t.Fatal("Save never called")
	}
	if got.Title != "new title" || got.Status != reportDomain.StatusSubmitted {
		t.Fatalf("patch not applied: %+v", got)
	}
	if got.Description != "old desc" || got.Location != "old loc" {
		t.Fatalf("omitted fields changed: %+v", got)
	}
}

func TestUpdate_StaffCannotSelfApprove(t *testing.T) {
	reports := &reportmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*reportDomain.Report, error) {
			return &reportDomain.Report{ID: id, CreatedBy: 1, Status: reportDomain.StatusDraft}, nil
		},
	}
	uc, _ := newTestUsecase(knownUsers(staffUser(1)), reports)

	status := reportDomain.StatusApproved
	_, err := uc.Update(context.Background(), UpdateInput{ID: 5, Status: &status}, 1)
	if !errors.Is(err, reportDomain.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestUpdate_SupervisorOverridesAnyStatus(t *testing.T) {
	admin := &userDomain.User{ID: 9, Role: userDomain.RoleAdmin}
	reports := &reportmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*reportDomain.Report, error) {
			return &reportDomain.Report{ID: id, CreatedBy: 1, Status: reportDomain.StatusApproved}, nil
		},
	}
	uc, _ := newTestUsecase(knownUsers(admin), reports)

	status := reportDomain.StatusRejected
	got, err := uc.Update(context.Background(), UpdateInput{ID: 5, Status: &status}, 9)
	if err != nil {
		t.Fatalf("admin override err: %v", err)
	}
	if got.Status != reportDomain.StatusRejected {
		t.Fatalf("status=%s", got.Status)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	uc, _ := newTestUsecase(knownUsers(staffUser(1)), &reportmock.Repo{})

	title := "X"
	_, err := uc.Update(context.Background(), UpdateInput{ID: 404, Title: &title}, 1)
	if !errors.Is(err, reportDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

// ----- Delete -----

func TestDelete_SoftFalseOnAbsentAndForbidden(t *testing.T) {
	reports := &reportmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*reportDomain.Report, error) {
			if id == 7 {
				return &reportDomain.Report{ID: 7, CreatedBy: 2, Status: reportDomain.StatusDraft}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc, _ := newTestUsecase(knownUsers(staffUser(1)), reports)
	ctx := context.Background()

	ok, err := uc.Delete(ctx, 999, 1, userDomain.RoleStaff)
	if err != nil || ok {
		t.Fatalf("absent: (%v, %v), want (false, nil)", ok, err)
	}
	ok, err = uc.Delete(ctx, 7, 1, userDomain.RoleStaff)
	if err != nil || ok {
		t.Fatalf("forbidden: (%v, %v), want (false, nil)", ok, err)
	}
}

func TestDelete_CascadesAndRemovesBlobs(t *testing.T) {
	blobs := blobmock.New()
	ctx := context.Background()
	if _, err := blobs.Save(ctx, "reports/7/a.pdf", strings.NewReader("x")); err != nil {
		t.Fatal(err)
	}

	var deletedComments, deletedAtts, deletedReport bool
	reports := &reportmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*reportDomain.Report, error) {
			return &reportDomain.Report{ID: 7, CreatedBy: 1, Status: reportDomain.StatusDraft}, nil
		},
		DeleteFn: func(ctx context.Context, id uint64) error { deletedReport = true; return nil },
	}
	r := uow.Repos{
		Users:   knownUsers(staffUser(1)),
		Reports: reports,
		Comments: &reportmock.CommentRepo{
			DeleteByReportFn: func(ctx context.Context, id uint64) error { deletedComments = true; return nil },
		},
		Attachments: &reportmock.AttachmentRepo{
			ListByReportFn: func(ctx context.Context, id uint64) ([]reportDomain.Attachment, error) {
				return []reportDomain.Attachment{{ID: 1, ReportID: 7, FilePath: "reports/7/a.pdf"}}, nil
			},
			DeleteByReportFn: func(ctx context.Context, id uint64) error { deletedAtts = true; return nil },
		},
	}
	uc := NewUsecase(r, &uowmock.UoW{Repos: r}, blobs)

	ok, err := uc.Delete(ctx, 7, 1, userDomain.RoleStaff)
	if err != nil || !ok {
		t.Fatalf("Delete: (%v, %v)", ok, err)
	}
	if !deletedComments || !deletedAtts || !deletedReport {
		t.Fatalf("cascade incomplete: comments=%v atts=%v report=%v", deletedComments, deletedAtts, deletedReport)
	}
	if blobs.Len() != 0 {
		t.Fatalf("blob not removed, %d remain", blobs.Len())
	}
}

// ----- List -----

func TestList_StaffPinnedToOwnReports(t *testing.T) {
	var gotFilter reportDomain.Filter
	reports := &reportmock.Repo{
		ListFn: func(ctx context.Context, f reportDomain.Filter) ([]reportDomain.Report, int64, error) {
			gotFilter = f
			return nil, 0, nil
		},
	}
	uc, _ := newTestUsecase(knownUsers(staffUser(1)), reports)

	other := uint64(99)
	_, err := uc.List(context.Background(), ListInput{CreatedBy: &other}, 1, userDomain.RoleStaff)
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if gotFilter.CreatedBy == nil || *gotFilter.CreatedBy != 1 {
		t.Fatalf("created_by filter = %v, want forced to 1", gotFilter.CreatedBy)
	}
}

func TestList_SupervisorKeepsRequestedCreator(t *testing.T) {
	var gotFilter reportDomain.Filter
	reports := &reportmock.Repo{
		ListFn: func(ctx context.Context, f reportDomain.Filter) ([]reportDomain.Report, int64, error) {
			gotFilter = f
			return nil, 0, nil
		},
	}
	uc, _ := newTestUsecase(knownUsers(), reports)

	requested := uint64(2)
	_, err := uc.List(context.Background(), ListInput{CreatedBy: &requested}, 4, userDomain.RoleAdmin)
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if gotFilter.CreatedBy == nil || *gotFilter.CreatedBy != 2 {
		t.Fatalf("created_by filter = %v, want 2", gotFilter.CreatedBy)
	}
}

func TestList_ClampsPagination(t *testing.T) {
	var gotFilter reportDomain.Filter
	reports := &reportmock.Repo{
		ListFn: func(ctx context.Context, f reportDomain.Filter) ([]reportDomain.Report, int64, error) {
			gotFilter = f
			return nil, 0, nil
		},
	}
	uc, _ := newTestUsecase(knownUsers(), reports)
	ctx := context.Background()

	res, err := uc.List(ctx, ListInput{Limit: 5000, Offset: -3}, 4, userDomain.RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}
	if gotFilter.Limit != 100 || gotFilter.Offset != 0 {
		t.Fatalf("filter limit/offset = %d/%d, want 100/0", gotFilter.Limit, gotFilter.Offset)
	}
	if res.Limit != 100 || res.Offset != 0 {
		t.Fatalf("result limit/offset = %d/%d", res.Limit, res.Offset)
	}

	if _, err := uc.List(ctx, ListInput{}, 4, userDomain.RoleAdmin); err != nil {
		t.Fatal(err)
	}
	if gotFilter.Limit != 20 {
		t.Fatalf("default limit = %d, want 20", gotFilter.Limit)
	}
}

func TestList_InvalidDate(t *testing.T) {
	uc, _ := newTestUsecase(knownUsers(), &reportmock.Repo{})

	bad := "15-01-2024"
	_, err := uc.List(context.Background(), ListInput{DateFrom: &bad}, 4, userDomain.RoleAdmin)
	if !errors.Is(err, reportDomain.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}
