package report

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"activity-report-service/internal/domain/policy"
	reportDomain "activity-report-service/internal/domain/report"
	"activity-report-service/internal/domain/uow"
	userDomain "activity-report-service/internal/domain/user"
	"activity-report-service/internal/infrastructure/storage"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

var reHHMM = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type Usecase struct {
	users       userDomain.Repository
	reports     reportDomain.Repository
	comments    reportDomain.CommentRepository
	attachments reportDomain.AttachmentRepository
	uow         uow.UnitOfWork
	blobs       storage.BlobStore

	// cache is optional; nil disables dashboard caching.
	cache    *redis.Client
	statsTTL time.Duration
}

func NewUsecase(r uow.Repos, tx uow.UnitOfWork, blobs storage.BlobStore) *Usecase {
	return &Usecase{
		users:       r.Users,
		reports:     r.Reports,
		comments:    r.Comments,
		attachments: r.Attachments,
		uow:         tx,
		blobs:       blobs,
	}
}

// WithStatsCache enables the redis-backed dashboard cache.
func (u *Usecase) WithStatsCache(rdb *redis.Client, ttl time.Duration) *Usecase {
	u.cache = rdb
	u.statsTTL = ttl
	return u
}

func validTime(s string) bool { return reHHMM.MatchString(s) }

func parseDate(s string) (time.Time, error) { return time.Parse(dateLayout, s) }

func (u *Usecase) Create(ctx context.Context, in CreateInput, creatorID uint64) (*reportDomain.Report, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Location = strings.TrimSpace(in.Location)
	if in.Title == "" || strings.TrimSpace(in.Description) == "" || in.Location == "" {
		return nil, reportDomain.Invalid("title, description and location are required")
	}
	if !validTime(in.StartTime) || !validTime(in.EndTime) {
		return nil, reportDomain.Invalid("start_time and end_time must be in HH:MM format")
	}
	day, err := parseDate(in.ActivityDate)
	if err != nil {
		return nil, reportDomain.Invalid("activity_date must be in YYYY-MM-DD format")
	}

	status := reportDomain.StatusDraft
	if in.Status != nil {
		if *in.Status != reportDomain.StatusDraft && *in.Status != reportDomain.StatusSubmitted {
			return nil, reportDomain.Invalid("initial status must be DRAFT or SUBMITTED")
		}
		status = *in.Status
	}

	if _, err := u.users.GetByID(ctx, creatorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userDomain.ErrNotFound
		}
		return nil, err
	}

	rep := &reportDomain.Report{
		Title:        in.Title,
		ActivityDate: day,
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		Description:  in.Description,
		Location:     in.Location,
		Participants: in.Participants,
		Status:       status,
		CreatedBy:    creatorID,
	}
	if err := u.reports.Create(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

// Get returns (nil, nil) both when the report does not exist and when
// the caller is not allowed to see it, so unauthorized callers cannot
// probe for existence.
func (u *Usecase) Get(ctx context.Context, id, callerID uint64, role userDomain.Role) (*reportDomain.Report, error) {
	rep, err := u.reports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !policy.CanView(callerID, role, rep.CreatedBy) {
		return nil, nil
	}
	return rep, nil
}

// Update applies a partial patch. Unlike Get/Delete it fails loudly:
// NotFound and PermissionDenied are distinguishable here.
func (u *Usecase) Update(ctx context.Context, in UpdateInput, callerID uint64) (*reportDomain.Report, error) {
	caller, err := u.users.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userDomain.ErrNotFound
		}
		return nil, err
	}

	rep, err := u.reports.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reportDomain.ErrNotFound
		}
		return nil, err
	}

	if ok, reason := policy.CanEdit(callerID, caller.Role, rep.CreatedBy, rep.Status); !ok {
		return nil, reportDomain.Denied(reason)
	}

	if in.Title != nil {
		t := strings.TrimSpace(*in.Title)
		if t == "" {
			return nil, reportDomain.Invalid("title must not be empty")
		}
		rep.Title = t
	}
	if in.ActivityDate != nil {
		day, err := parseDate(*in.ActivityDate)
		if err != nil {
			return nil, reportDomain.Invalid("activity_date must be in YYYY-MM-DD format")
		}
		rep.ActivityDate = day
	}
	if in.StartTime != nil {
		if !validTime(*in.StartTime) {
			return nil, reportDomain.Invalid("start_time must be in HH:MM format")
		}
		rep.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		if !validTime(*in.EndTime) {
			return nil, reportDomain.Invalid("end_time must be in HH:MM format")
		}
		rep.EndTime = *in.EndTime
	}
	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			return nil, reportDomain.Invalid("description must not be empty")
		}
		rep.Description = *in.Description
	}
	if in.Location != nil {
		loc := strings.TrimSpace(*in.Location)
		if loc == "" {
			return nil, reportDomain.Invalid("location must not be empty")
		}
		rep.Location = loc
	}
	if in.Participants != nil {
		rep.Participants = *in.Participants
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, reportDomain.Invalid(fmt.Sprintf("unknown status %q", *in.Status))
		}
		// Staff can only move a draft forward; approve/reject stays
		// behind the dedicated review flow.
		if !caller.Role.Supervisor() &&
			*in.Status != reportDomain.StatusDraft && *in.Status != reportDomain.StatusSubmitted {
			return nil, reportDomain.Invalid("status must be DRAFT or SUBMITTED")
		}
		rep.Status = *in.Status
	}

	rep.UpdatedAt = time.Now().UTC()
	if err := u.reports.Save(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

// Delete removes the report and cascades to its comments, attachments
// and blobs. It answers false, not an error, when the report is absent
// or the caller may not delete it.
func (u *Usecase) Delete(ctx context.Context, id, callerID uint64, role userDomain.Role) (bool, error) {
	rep, err := u.reports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if !policy.CanDelete(callerID, role, rep.CreatedBy, rep.Status) {
		return false, nil
	}

	var paths []string
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		atts, err := r.Attachments.ListByReport(ctx, id)
		if err != nil {
			return err
		}
		for _, a := range atts {
			paths = append(paths, a.FilePath)
		}
		if err := r.Comments.DeleteByReport(ctx, id); err != nil {
			return err
		}
		if err := r.Attachments.DeleteByReport(ctx, id); err != nil {
			return err
		}
		return r.Reports.Delete(ctx, id)
	})
	if err != nil {
		return false, err
	}

	// Blob removal is best-effort and happens after the commit: a failed
	// unlink must not resurrect the metadata.
	if u.blobs != nil {
		for _, p := range paths {
			if err := u.blobs.Remove(ctx, p); err != nil {
				log.Printf("report %d: removing blob %s: %v", id, p, err)
			}
		}
	}
	return true, nil
}

func (u *Usecase) List(ctx context.Context, in ListInput, callerID uint64, role userDomain.Role) (*ListResult, error) {
	f := reportDomain.Filter{Search: in.Search}

	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, reportDomain.Invalid(fmt.Sprintf("unknown status %q", *in.Status))
		}
		f.Status = in.Status
	}
	if in.DateFrom != nil {
		day, err := parseDate(*in.DateFrom)
		if err != nil {
			return nil, reportDomain.Invalid("date_from must be in YYYY-MM-DD format")
		}
		f.DateFrom = &day
	}
	if in.DateTo != nil {
		day, err := parseDate(*in.DateTo)
		if err != nil {
			return nil, reportDomain.Invalid("date_to must be in YYYY-MM-DD format")
		}
		f.DateTo = &day
	}

	// Staff are pinned to their own reports no matter what filter they
	// asked for.
	f.CreatedBy = policy.ScopeCreator(callerID, role, in.CreatedBy)

	f.Limit = in.Limit
	if f.Limit <= 0 {
		f.Limit = 20
	} else if f.Limit > 100 {
		f.Limit = 100
	}
	f.Offset = in.Offset
	if f.Offset < 0 {
		f.Offset = 0
	}

	page, total, err := u.reports.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if page == nil {
		page = []reportDomain.Report{}
	}
	return &ListResult{Reports: page, Total: total, Limit: f.Limit, Offset: f.Offset}, nil
}
