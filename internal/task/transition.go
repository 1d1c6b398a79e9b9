package task

import (
	"time"

	"impag-tasks/internal/model"
)

// ApplyStatusChange is the single place where a status change touches the
// coupled fields. Every status-changing code path (direct update, soft
// delete, auto-archive sweep, un-archive) must go through it so the
// status/number invariant cannot drift:
//
//   - entering done stamps CompletedAt; moving to any other status
//     clears it, except archived, which keeps it for history
//   - entering archived stamps ArchivedAt and releases the task number
//   - leaving archived reports needsNumber; the caller must assign a
//     fresh number inside the allocation transaction
func ApplyStatusChange(t model.Task, newStatus model.Status, now time.Time) (model.Task, bool) {
	oldStatus := t.Status
	t.Status = newStatus
	t.LastUpdated = &now

	if newStatus == model.StatusDone && oldStatus != model.StatusDone {
		completed := now
		t.CompletedAt = &completed
	} else if newStatus != model.StatusDone && newStatus != model.StatusArchived {
		// Archived tasks keep their completion time for history; every
		// other non-done status means not completed.
		t.CompletedAt = nil
	}

	needsNumber := false
	if newStatus == model.StatusArchived {
		archived := now
		t.ArchivedAt = &archived
		t.Number = nil
	} else if oldStatus == model.StatusArchived {
		t.ArchivedAt = nil
		needsNumber = t.Number == nil
	}

	return t, needsNumber
}
