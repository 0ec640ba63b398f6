package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"reviewdash/internal/model"
	"reviewdash/internal/repository"
	"reviewdash/internal/storage"
	"reviewdash/internal/worker"
)

type reminderStore interface {
	Create(ctx context.Context, log *model.ReminderLog) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.ReminderLog, error)
	List(ctx context.Context, documentID, reviewerID *uuid.UUID) ([]model.ReminderLog, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.ReminderStatus) error
}

type documentGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Document, error)
}

type reviewerGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Reviewer, error)
}

type ReminderHandler struct {
	reminders reminderStore
	documents documentGetter
	reviewers reviewerGetter
	settings  *storage.Store
}

func NewReminderHandler(reminders reminderStore, documents documentGetter, reviewers reviewerGetter, settings *storage.Store) *ReminderHandler {
	return &ReminderHandler{
		reminders: reminders,
		documents: documents,
		reviewers: reviewers,
		settings:  settings,
	}
}

type CreateReminderRequest struct {
	DocumentID string `json:"document_id" binding:"required,uuid"`
	ReviewerID string `json:"reviewer_id" binding:"required,uuid"`
}

type UpdateReminderRequest struct {
	Status string `json:"status" binding:"required"`
}

type ReminderResponse struct {
	ID            string `json:"id"`
	DocumentID    string `json:"document_id"`
	ReviewerID    string `json:"reviewer_id"`
	DocumentName  string `json:"document_name"`
	ReviewerName  string `json:"reviewer_name"`
	SentTimestamp string `json:"sent_timestamp"`
	Status        string `json:"status"`
}

type ReminderSettingsRequest struct {
	Frequency string `json:"frequency" binding:"required,oneof=daily weekly monthly"`
}

func toReminderResponse(log model.ReminderLog) ReminderResponse {
	return ReminderResponse{
		ID:            log.ID.String(),
		DocumentID:    log.DocumentID.String(),
		ReviewerID:    log.ReviewerID.String(),
		DocumentName:  log.Document.Title,
		ReviewerName:  log.Reviewer.Name,
		SentTimestamp: log.SentTimestamp.Format(time.RFC3339),
		Status:        string(log.Status),
	}
}

// Create records a reminder for an existing document and reviewer. The entry
// starts as Sent with the current timestamp.
func (h *ReminderHandler) Create(c *gin.Context) {
	var req CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing document_id or reviewer_id"})
		return
	}

	documentID, _ := uuid.Parse(req.DocumentID)
	reviewerID, _ := uuid.Parse(req.ReviewerID)
	ctx := c.Request.Context()

	document, err := h.documents.GetByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Document with id %s not found", req.DocumentID)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve document"})
		return
	}

	reviewer, err := h.reviewers.GetByID(ctx, reviewerID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Reviewer with id %s not found", req.ReviewerID)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reviewer"})
		return
	}

	log := &model.ReminderLog{
		ID:            uuid.New(),
		DocumentID:    document.ID,
		ReviewerID:    reviewer.ID,
		SentTimestamp: time.Now(),
		Status:        model.ReminderSent,
	}
	if err := h.reminders.Create(ctx, log); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reminder"})
		return
	}

	log.Document = *document
	log.Reviewer = *reviewer
	c.JSON(http.StatusCreated, toReminderResponse(*log))
}

// List returns reminder log entries, optionally filtered by document_id and
// reviewer_id query parameters.
func (h *ReminderHandler) List(c *gin.Context) {
	var documentID, reviewerID *uuid.UUID

	if raw := c.Query("document_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document_id"})
			return
		}
		documentID = &id
	}
	if raw := c.Query("reviewer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reviewer_id"})
			return
		}
		reviewerID = &id
	}

	logs, err := h.reminders.List(c.Request.Context(), documentID, reviewerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reminders"})
		return
	}

	resp := make([]ReminderResponse, 0, len(logs))
	for _, log := range logs {
		resp = append(resp, toReminderResponse(log))
	}
	c.JSON(http.StatusOK, gin.H{"reminders": resp})
}

// UpdateStatus moves a reminder log entry to a new delivery status.
func (h *ReminderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reminder id"})
		return
	}

	var req UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing status in request body"})
		return
	}
	if !model.ValidReminderStatus(model.ReminderStatus(req.Status)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid status: %s", req.Status)})
		return
	}

	ctx := c.Request.Context()
	if err := h.reminders.UpdateStatus(ctx, id, model.ReminderStatus(req.Status)); err != nil {
		if errors.Is(err, repository.ErrReminderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reminder"})
		return
	}

	log, err := h.reminders.GetByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reminder"})
		return
	}
	c.JSON(http.StatusOK, toReminderResponse(*log))
}

// GetSettings returns the reminder frequency setting.
func (h *ReminderHandler) GetSettings(c *gin.Context) {
	s := worker.LoadSettings(h.settings)
	c.JSON(http.StatusOK, gin.H{"frequency": string(s.Frequency)})
}

// UpdateSettings changes the reminder frequency. The worker picks the new
// value up on its next check.
func (h *ReminderHandler) UpdateSettings(c *gin.Context) {
	var req ReminderSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Frequency must be daily, weekly or monthly"})
		return
	}

	s := worker.Settings{Frequency: worker.Frequency(req.Frequency)}
	if err := worker.SaveSettings(h.settings, s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"frequency": req.Frequency,
		"message":   fmt.Sprintf("Reminder frequency set to %s.", req.Frequency),
	})
}
