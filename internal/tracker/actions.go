package tracker

import (
	"reviewdash/internal/model"
)

// Action is a named user-triggered status transition applied to one
// assignment by id. Deletion is handled separately because it removes the
// assignment instead of moving it through the lifecycle.
type Action string

const (
	ActionStart    Action = "start"
	ActionComplete Action = "complete"
	ActionPend     Action = "pend"
	ActionReopen   Action = "reopen"
)

// transition enforces the lifecycle graph: Pending → In Progress → Completed,
// with In Progress → Pending (pend) and Completed → Pending (reopen) as the
// only backward edges. The dashboard UI only offered the buttons valid for
// the current status; here the same rule is checked server-side.
func transition(current model.Status, action Action) (model.Status, error) {
	switch action {
	case ActionStart:
		if current != model.StatusPending {
			return current, ErrInvalidTransition
		}
		return model.StatusInProgress, nil
	case ActionComplete:
		if current != model.StatusInProgress {
			return current, ErrInvalidTransition
		}
		return model.StatusCompleted, nil
	case ActionPend:
		if current != model.StatusInProgress {
			return current, ErrInvalidTransition
		}
		return model.StatusPending, nil
	case ActionReopen:
		if current != model.StatusCompleted {
			return current, ErrInvalidTransition
		}
		return model.StatusPending, nil
	default:
		return current, ErrUnknownAction
	}
}
