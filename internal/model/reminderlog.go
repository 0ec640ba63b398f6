package model

import (
	"time"

	"github.com/google/uuid"
)

// ReminderStatus tracks the delivery lifecycle of a sent reminder.
type ReminderStatus string

const (
	ReminderSent    ReminderStatus = "Sent"
	ReminderOpened  ReminderStatus = "Opened"
	ReminderClicked ReminderStatus = "Clicked"
	ReminderError   ReminderStatus = "Error"
	ReminderPending ReminderStatus = "Pending"
)

func ValidReminderStatus(s ReminderStatus) bool {
	switch s {
	case ReminderSent, ReminderOpened, ReminderClicked, ReminderError, ReminderPending:
		return true
	}
	return false
}

type ReminderLog struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	DocumentID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	ReviewerID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	SentTimestamp time.Time      `gorm:"not null"`
	Status        ReminderStatus `gorm:"not null;default:'Sent'"`

	Document Document `gorm:"foreignKey:DocumentID"`
	Reviewer Reviewer `gorm:"foreignKey:ReviewerID"`
}
