package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"reviewdash/internal/model"
)

type ReminderRepository struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

// Create adds a new reminder log entry to the database
func (r *ReminderRepository) Create(ctx context.Context, log *model.ReminderLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// GetByID retrieves a reminder log entry with its document and reviewer
func (r *ReminderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ReminderLog, error) {
	var log model.ReminderLog
	result := r.db.WithContext(ctx).
		Preload("Document").
		Preload("Reviewer").
		First(&log, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrReminderNotFound
		}
		return nil, result.Error
	}
	return &log, nil
}

// List retrieves reminder log entries, optionally filtered by document and
// reviewer, newest first
func (r *ReminderRepository) List(ctx context.Context, documentID, reviewerID *uuid.UUID) ([]model.ReminderLog, error) {
	query := r.db.WithContext(ctx).
		Preload("Document").
		Preload("Reviewer").
		Order("sent_timestamp DESC")

	if documentID != nil {
		query = query.Where("document_id = ?", *documentID)
	}
	if reviewerID != nil {
		query = query.Where("reviewer_id = ?", *reviewerID)
	}

	var logs []model.ReminderLog
	result := query.Find(&logs)
	if result.Error != nil {
		return nil, result.Error
	}
	return logs, nil
}

// UpdateStatus changes the delivery status of one reminder log entry
func (r *ReminderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ReminderStatus) error {
	result := r.db.WithContext(ctx).Model(&model.ReminderLog{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReminderNotFound
	}
	return nil
}

// SentSince reports whether a reminder for the document/reviewer pair was
// already recorded at or after the given instant
func (r *ReminderRepository) SentSince(ctx context.Context, documentID, reviewerID uuid.UUID, since time.Time) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.ReminderLog{}).
		Where("document_id = ? AND reviewer_id = ? AND sent_timestamp >= ?", documentID, reviewerID, since).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
