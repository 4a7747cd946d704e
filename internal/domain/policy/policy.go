// Package policy holds the pure authorization decisions for reports and
// their sub-resources. Every function is a total function of its inputs:
// no storage access, no side effects, so the rules are unit-testable on
// their own.
//
// Rules:
//   - STAFF can see and manage only reports they created
//   - PIMPINAN and ADMIN can view any report and review submitted ones
//   - attachment upload is creator-only, with no elevated-role bypass
package policy

import (
	"activity-report-service/internal/domain/report"
	"activity-report-service/internal/domain/user"
)

// CanView reports whether the actor may see a report (or one of its
// comments/attachments) owned by ownerID.
func CanView(actorID uint64, role user.Role, ownerID uint64) bool {
	if role.Supervisor() {
		return true
	}
	return actorID == ownerID
}

// CanEdit decides the report-field update rule. When denied it also
// returns the reason to surface to the caller. STAFF may edit only their
// own reports and only while in draft; supervisors may edit any report
// regardless of status.
func CanEdit(actorID uint64, role user.Role, ownerID uint64, status report.Status) (bool, string) {
	if role.Supervisor() {
		return true, ""
	}
	if actorID != ownerID {
		return false, "staff users can only update their own reports"
	}
	if status != report.StatusDraft {
		return false, "staff users can only update reports in draft status"
	}
	return true, ""
}

// CanDelete decides report deletion: STAFF only own drafts, supervisors
// anything.
func CanDelete(actorID uint64, role user.Role, ownerID uint64, status report.Status) bool {
	if role.Supervisor() {
		return true
	}
	return actorID == ownerID && status == report.StatusDraft
}

// CanReview gates the approve/reject operation to supervisory roles.
func CanReview(role user.Role) bool { return role.Supervisor() }

// CanUploadAttachment is stricter than CanView: only the report creator
// may attach files, regardless of role.
func CanUploadAttachment(actorID uint64, ownerID uint64) bool {
	return actorID == ownerID
}

// CanDeleteAttachment permits the parent-report owner and supervisors.
func CanDeleteAttachment(actorID uint64, role user.Role, ownerID uint64) bool {
	if role.Supervisor() {
		return true
	}
	return actorID == ownerID
}

// ScopeCreator resolves the created_by list filter. STAFF callers are
// always pinned to their own id; a requested creator filter is silently
// ignored for them. Supervisors may filter by any creator, or none.
func ScopeCreator(actorID uint64, role user.Role, requested *uint64) *uint64 {
	if !role.Supervisor() {
		id := actorID
		return &id
	}
	return requested
}
