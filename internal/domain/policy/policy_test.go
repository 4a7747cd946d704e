package policy

import (
	"testing"

	"activity-report-service/internal/domain/report"
	"activity-report-service/internal/domain/user"
)

func TestCanView(t *testing.T) {
	cases := []struct {
		name    string
		actor   uint64
		role    user.Role
		owner   uint64
		allowed bool
	}{
		{"staff own", 1, user.RoleStaff, 1, true},
		{"staff other", 1, user.RoleStaff, 2, false},
		{"pimpinan other", 3, user.RolePimpinan, 2, true},
		{"admin other", 4, user.RoleAdmin, 2, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanView(tc.actor, tc.role, tc.owner); got != tc.allowed {
				t.Fatalf("CanView = %v, want %v", got, tc.allowed)
			}
		})
	}
}

func TestCanEdit(t *testing.T) {
	cases := []struct {
		name       string
		actor      uint64
		role       user.Role
		owner      uint64
		status     report.Status
		allowed    bool
		wantReason string
	}{
		{"staff own draft", 1, user.RoleStaff, 1, report.StatusDraft, true, ""},
		{"staff other draft", 1, user.RoleStaff, 2, report.StatusDraft, false, "staff users can only update their own reports"},
		{"staff own submitted", 1, user.RoleStaff, 1, report.StatusSubmitted, false, "staff users can only update reports in draft status"},
		{"staff own rejected", 1, user.RoleStaff, 1, report.StatusRejected, false, "staff users can only update reports in draft status"},
		{"pimpinan any status", 3, user.RolePimpinan, 2, report.StatusApproved, true, ""},
		{"admin any status", 4, user.RoleAdmin, 2, report.StatusRejected, true, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, reason := CanEdit(tc.actor, tc.role, tc.owner, tc.status)
			if ok != tc.allowed {
				t.Fatalf("CanEdit = %v, want %v", ok, tc.allowed)
			}
			if reason != tc.wantReason {
				t.Fatalf("reason = %q, want %q", reason, tc.wantReason)
			}
		})
	}
}

func TestCanDelete(t *testing.T) {
	if !CanDelete(1, user.RoleStaff, 1, report.StatusDraft) {
		t.Fatal("staff should delete own draft")
	}
	if CanDelete(1, user.RoleStaff, 1, report.StatusSubmitted) {
		t.Fatal("staff must not delete a submitted report")
	}
	if CanDelete(1, user.RoleStaff, 2, report.StatusDraft) {
		t.Fatal("staff must not delete another user's report")
	}
	if !CanDelete(3, user.RolePimpinan, 2, report.StatusApproved) {
		t.Fatal("pimpinan should delete any report")
	}
	if !CanDelete(4, user.RoleAdmin, 2, report.StatusSubmitted) {
		t.Fatal("admin should delete any report")
	}
}

func TestCanReview(t *testing.T) {
	if CanReview(user.RoleStaff) {
		t.Fatal("staff must not review")
	}
	if !CanReview(user.RolePimpinan) || !CanReview(user.RoleAdmin) {
		t.Fatal("supervisors should review")
	}
}

func TestCanUploadAttachment_NoElevatedBypass(t *testing.T) {
	if !CanUploadAttachment(1, 1) {
		t.Fatal("creator should upload")
	}
	// Deliberately creator-only; even admins are not the creator here.
	if CanUploadAttachment(4, 1) {
		t.Fatal("non-creator must not upload, role notwithstanding")
	}
}

func TestCanDeleteAttachment(t *testing.T) {
	if !CanDeleteAttachment(1, user.RoleStaff, 1) {
		t.Fatal("owner should delete own attachment")
	}
	if CanDeleteAttachment(1, user.RoleStaff, 2) {
		t.Fatal("staff must not delete another user's attachment")
	}
	if !CanDeleteAttachment(3, user.RolePimpinan, 2) {
		t.Fatal("pimpinan should delete any attachment")
	}
}

func TestScopeCreator(t *testing.T) {
	requested := uint64(7)

	if got := ScopeCreator(1, user.RoleStaff, &requested); got == nil || *got != 1 {
		t.Fatalf("staff scope = %v, want own id 1", got)
	}
	if got := ScopeCreator(1, user.RoleStaff, nil); got == nil || *got != 1 {
		t.Fatalf("staff scope without filter = %v, want own id 1", got)
	}
	if got := ScopeCreator(3, user.RolePimpinan, &requested); got == nil || *got != 7 {
		t.Fatalf("pimpinan scope = %v, want requested 7", got)
	}
	if got := ScopeCreator(4, user.RoleAdmin, nil); got != nil {
		t.Fatalf("admin scope without filter = %v, want nil", got)
	}
}
