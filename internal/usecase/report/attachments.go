package report

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"activity-report-service/internal/domain/policy"
	reportDomain "activity-report-service/internal/domain/report"
	userDomain "activity-report-service/internal/domain/user"
	"activity-report-service/pkg/id"

	"gorm.io/gorm"
)

// UploadAttachment stores the blob under a generated storage-safe name
// and records the metadata row. Only the report creator may attach
// files; elevated roles get no bypass here.
func (u *Usecase) UploadAttachment(ctx context.Context, in UploadAttachmentInput, uploaderID uint64) (*reportDomain.Attachment, error) {
	if strings.TrimSpace(in.OriginalFilename) == "" {
		return nil, reportDomain.Invalid("filename must not be empty")
	}
	if in.Content == nil {
		return nil, reportDomain.Invalid("file must not be empty")
	}

	rep, err := u.reports.GetByID(ctx, in.ReportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reportDomain.ErrNotFound
		}
		return nil, err
	}
	if !policy.CanUploadAttachment(uploaderID, rep.CreatedBy) {
		return nil, reportDomain.Denied("only the report creator can upload attachments")
	}

	// The original filename is user-supplied and untrusted; only its
	// extension survives into the storage name.
	ext := strings.ToLower(filepath.Ext(in.OriginalFilename))
	filename := id.NewID32() + ext
	path := fmt.Sprintf("reports/%d/%s", rep.ID, filename)

	size, err := u.blobs.Save(ctx, path, in.Content)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		if rmErr := u.blobs.Remove(ctx, path); rmErr != nil {
			log.Printf("report %d: removing empty blob %s: %v", rep.ID, path, rmErr)
		}
		return nil, reportDomain.Invalid("file must not be empty")
	}

	mime := in.MimeType
	if mime == "" {
		mime = "application/octet-stream"
	}

	att := &reportDomain.Attachment{
		ReportID:         rep.ID,
		Filename:         filename,
		OriginalFilename: in.OriginalFilename,
		FilePath:         path,
		FileSize:         size,
		MimeType:         mime,
	}
	if err := u.attachments.Create(ctx, att); err != nil {
		if rmErr := u.blobs.Remove(ctx, path); rmErr != nil {
			log.Printf("report %d: removing orphan blob %s: %v", rep.ID, path, rmErr)
		}
		return nil, err
	}
	return att, nil
}

func (u *Usecase) ListAttachments(ctx context.Context, reportID, callerID uint64, role userDomain.Role) ([]reportDomain.Attachment, error) {
	rep, err := u.reports.GetByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reportDomain.ErrNotFound
		}
		return nil, err
	}
	if !policy.CanView(callerID, role, rep.CreatedBy) {
		return nil, reportDomain.Denied("staff users can only view attachments on their own reports")
	}
	out, err := u.attachments.ListByReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []reportDomain.Attachment{}
	}
	return out, nil
}

// GetAttachment resolves an attachment for download, mirroring the View
// policy of its parent report. Absent and hidden are both (nil, nil).
func (u *Usecase) GetAttachment(ctx context.Context, attID, callerID uint64, role userDomain.Role) (*reportDomain.Attachment, error) {
	att, err := u.attachments.GetByID(ctx, attID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	rep, err := u.reports.GetByID(ctx, att.ReportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !policy.CanView(callerID, role, rep.CreatedBy) {
		return nil, nil
	}
	return att, nil
}

// DeleteAttachment answers false for absent rows and for callers who may
// not delete, matching the soft semantics of report deletion. The blob
// unlink is best-effort.
func (u *Usecase) DeleteAttachment(ctx context.Context, attID, callerID uint64, role userDomain.Role) (bool, error) {
	att, err := u.attachments.GetByID(ctx, attID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	rep, err := u.reports.GetByID(ctx, att.ReportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if !policy.CanDeleteAttachment(callerID, role, rep.CreatedBy) {
		return false, nil
	}

	if err := u.attachments.Delete(ctx, attID); err != nil {
		return false, err
	}
	if u.blobs != nil {
		if err := u.blobs.Remove(ctx, att.FilePath); err != nil {
			log.Printf("attachment %d: removing blob %s: %v", attID, att.FilePath, err)
		}
	}
	return true, nil
}
