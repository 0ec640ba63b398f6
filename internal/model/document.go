package model

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Title        string     `gorm:"not null;index"`
	DueDate      *time.Time `gorm:"type:date"`
	ReviewTypeID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`

	ReviewType *ReviewType `gorm:"foreignKey:ReviewTypeID"`
}
