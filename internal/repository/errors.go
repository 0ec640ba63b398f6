package repository

import "errors"

// Common repository errors
var (
	// ErrDocumentNotFound is returned when a document is not found
	ErrDocumentNotFound = errors.New("document not found")

	// ErrReviewerNotFound is returned when a reviewer is not found
	ErrReviewerNotFound = errors.New("reviewer not found")

	// ErrReviewTypeNotFound is returned when a review type is not found
	ErrReviewTypeNotFound = errors.New("review type not found")

	// ErrReminderNotFound is returned when a reminder log entry is not found
	ErrReminderNotFound = errors.New("reminder log entry not found")
)
