package model

import (
	"github.com/google/uuid"
)

type ReviewType struct {
	ID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name  string    `gorm:"uniqueIndex;not null"`
	Color string    `gorm:"not null"`
}
