package tracker

import "errors"

var (
	// ErrAssignmentNotFound is returned when no assignment matches the given id.
	ErrAssignmentNotFound = errors.New("assignment not found")

	// ErrInvalidTransition is returned when an action is not allowed from the
	// assignment's current status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrUnknownAction is returned for an action name outside the closed set.
	ErrUnknownAction = errors.New("unknown action")

	// ErrUnknownAssignee is returned when creating an assignment for a name
	// that is not on the team roster.
	ErrUnknownAssignee = errors.New("assignee is not on the team roster")

	// ErrEmptyTitle is returned when creating an assignment without a title.
	ErrEmptyTitle = errors.New("title must not be empty")

	// ErrEmptyName is returned when adding a team member with a blank name.
	ErrEmptyName = errors.New("member name must not be empty")

	// ErrMemberExists is returned when the roster already contains the name,
	// compared case-insensitively.
	ErrMemberExists = errors.New("member already exists")
)
