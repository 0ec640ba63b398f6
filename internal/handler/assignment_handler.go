package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"reviewdash/internal/model"
	"reviewdash/internal/tracker"
)

type AssignmentHandler struct {
	tracker *tracker.Tracker
}

func NewAssignmentHandler(t *tracker.Tracker) *AssignmentHandler {
	return &AssignmentHandler{tracker: t}
}

type CreateAssignmentRequest struct {
	Title    string `json:"title" binding:"required"`
	Assignee string `json:"assignee" binding:"required"`
	Type     string `json:"type" binding:"required"`
	DueDate  string `json:"dueDate" binding:"required,datetime=2006-01-02"`
}

type ActionRequest struct {
	Action string `json:"action" binding:"required"`
}

// AssignmentResponse mirrors the stored assignment plus the status derived
// for the current day.
type AssignmentResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Assignee      string `json:"assignee"`
	Type          string `json:"type"`
	DueDate       string `json:"dueDate"`
	Status        string `json:"status"`
	DisplayStatus string `json:"displayStatus"`
}

type AssignmentListResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
	Message     string               `json:"message,omitempty"`
}

func toAssignmentResponse(a model.Assignment, now time.Time) AssignmentResponse {
	return AssignmentResponse{
		ID:            a.ID,
		Title:         a.Title,
		Assignee:      a.Assignee,
		Type:          string(a.Type),
		DueDate:       a.DueDate,
		Status:        string(a.Status),
		DisplayStatus: string(tracker.DeriveStatus(a, now)),
	}
}

// List runs the view pipeline over the collection. The empty result carries
// the dashboard's empty-state message instead of a bare list.
func (h *AssignmentHandler) List(c *gin.Context) {
	filter := tracker.Filter(c.DefaultQuery("status", string(tracker.FilterAll)))
	sortKey := tracker.SortKey(c.DefaultQuery("sort", string(tracker.SortDueDate)))
	now := time.Now()

	view := h.tracker.View(filter, sortKey, now)

	resp := AssignmentListResponse{Assignments: make([]AssignmentResponse, 0, len(view))}
	for _, a := range view {
		resp.Assignments = append(resp.Assignments, toAssignmentResponse(a, now))
	}
	if len(resp.Assignments) == 0 {
		resp.Message = tracker.EmptyViewMessage
	}

	c.JSON(http.StatusOK, resp)
}

// Create adds a new assignment; the lifecycle always begins at Pending.
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !model.ValidType(model.Type(req.Type)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown assignment type"})
		return
	}

	a, err := h.tracker.Create(req.Title, req.Assignee, model.Type(req.Type), req.DueDate)
	if err != nil {
		switch {
		case errors.Is(err, tracker.ErrEmptyTitle):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title must not be empty"})
		case errors.Is(err, tracker.ErrUnknownAssignee):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Assignee is not on the team roster"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save assignment"})
		}
		return
	}

	c.JSON(http.StatusCreated, toAssignmentResponse(a, time.Now()))
}

// Action applies one of start/complete/pend/reopen to the assignment.
func (h *AssignmentHandler) Action(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	a, err := h.tracker.Apply(c.Param("id"), tracker.Action(req.Action))
	if err != nil {
		switch {
		case errors.Is(err, tracker.ErrAssignmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
		case errors.Is(err, tracker.ErrUnknownAction):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown action"})
		case errors.Is(err, tracker.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Action not allowed from current status"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save assignment"})
		}
		return
	}

	c.JSON(http.StatusOK, toAssignmentResponse(a, time.Now()))
}

// Delete removes an assignment. The request must carry confirm=true, the
// dashboard's yes/no prompt expressed as a parameter; without it nothing
// changes.
func (h *AssignmentHandler) Delete(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Deletion requires confirm=true"})
		return
	}

	if err := h.tracker.Delete(c.Param("id")); err != nil {
		if errors.Is(err, tracker.ErrAssignmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save assignments"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Stats returns the aggregates behind the dashboard charts.
func (h *AssignmentHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.tracker.ComputeStats())
}
