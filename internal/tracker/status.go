package tracker

import (
	"time"

	"reviewdash/internal/model"
)

// DeriveStatus maps an assignment to the status shown to the user. A completed
// assignment is never overdue; anything else becomes Overdue once its due date
// falls strictly before the start of ref's calendar day. The result is never
// stored, so callers must derive it fresh on every read.
func DeriveStatus(a model.Assignment, ref time.Time) model.Status {
	if a.Status == model.StatusCompleted {
		return model.StatusCompleted
	}

	due, err := time.ParseInLocation(model.DueDateLayout, a.DueDate, ref.Location())
	if err != nil {
		return a.Status
	}

	dayStart := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	if due.Before(dayStart) {
		return model.StatusOverdue
	}
	return a.Status
}
