package worker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"reviewdash/internal/logger"
	"reviewdash/internal/model"
	"reviewdash/internal/storage"
	"reviewdash/internal/tracker"
)

type documentStore interface {
	FindOrCreateByTitle(ctx context.Context, title string, dueDate *time.Time) (*model.Document, error)
}

type reviewerStore interface {
	FindOrCreateByName(ctx context.Context, name string) (*model.Reviewer, error)
}

type reminderStore interface {
	Create(ctx context.Context, log *model.ReminderLog) error
	SentSince(ctx context.Context, documentID, reviewerID uuid.UUID, since time.Time) (bool, error)
}

// ReminderWorker periodically nudges assignees of overdue assignments by
// recording reminder log entries. The persisted frequency setting bounds how
// often the same assignment/assignee pair is reminded; the tick interval only
// bounds how quickly a newly overdue assignment is noticed.
type ReminderWorker struct {
	tracker   *tracker.Tracker
	settings  *storage.Store
	documents documentStore
	reviewers reviewerStore
	reminders reminderStore
	interval  time.Duration
}

func NewReminderWorker(
	t *tracker.Tracker,
	settings *storage.Store,
	documents documentStore,
	reviewers reviewerStore,
	reminders reminderStore,
	interval time.Duration,
) *ReminderWorker {
	return &ReminderWorker{
		tracker:   t,
		settings:  settings,
		documents: documents,
		reviewers: reviewers,
		reminders: reminders,
		interval:  interval,
	}
}

// Start runs the check loop until ctx is cancelled.
func (w *ReminderWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logger.Info("🔔 Reminder worker started", zap.Duration("interval", w.interval))

	for {
		select {
		case <-ticker.C:
			w.Check(ctx)
		case <-ctx.Done():
			logger.Info("🔔 Reminder worker stopped")
			return
		}
	}
}

// Check records one reminder per overdue assignment whose assignee has not
// been reminded about it inside the current frequency window.
func (w *ReminderWorker) Check(ctx context.Context) {
	now := time.Now()
	window := LoadSettings(w.settings).Frequency.Window()
	windowStart := now.Add(-window)

	sent := 0
	for _, a := range w.tracker.Assignments() {
		if tracker.DeriveStatus(a, now) != model.StatusOverdue {
			continue
		}
		recorded, err := w.remind(ctx, a, windowStart, now)
		if err != nil {
			logger.Warn("Reminder not recorded",
				zap.String("assignment_id", a.ID),
				zap.String("assignee", a.Assignee),
				zap.Error(err),
			)
			continue
		}
		if recorded {
			sent++
		}
	}

	if sent > 0 {
		logger.Info("🔔 Overdue reminders recorded", zap.Int("count", sent))
	}
}

func (w *ReminderWorker) remind(ctx context.Context, a model.Assignment, windowStart, now time.Time) (bool, error) {
	var dueDate *time.Time
	if due, err := time.Parse(model.DueDateLayout, a.DueDate); err == nil {
		dueDate = &due
	}

	document, err := w.documents.FindOrCreateByTitle(ctx, a.Title, dueDate)
	if err != nil {
		return false, err
	}
	reviewer, err := w.reviewers.FindOrCreateByName(ctx, a.Assignee)
	if err != nil {
		return false, err
	}

	already, err := w.reminders.SentSince(ctx, document.ID, reviewer.ID, windowStart)
	if err != nil || already {
		return false, err
	}

	err = w.reminders.Create(ctx, &model.ReminderLog{
		ID:            uuid.New(),
		DocumentID:    document.ID,
		ReviewerID:    reviewer.ID,
		SentTimestamp: now,
		Status:        model.ReminderSent,
	})
	return err == nil, err
}
