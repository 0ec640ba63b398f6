package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"reviewdash/internal/model"
)

type documentLister interface {
	List(ctx context.Context) ([]model.Document, error)
	ListDueBetween(ctx context.Context, from, to time.Time) ([]model.Document, error)
}

type reviewTypeLister interface {
	List(ctx context.Context) ([]model.ReviewType, error)
}

type CalendarHandler struct {
	documents   documentLister
	reviewTypes reviewTypeLister
}

func NewCalendarHandler(documents documentLister, reviewTypes reviewTypeLister) *CalendarHandler {
	return &CalendarHandler{documents: documents, reviewTypes: reviewTypes}
}

type ReviewTypeResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type DocumentResponse struct {
	ID         string              `json:"id"`
	Title      string              `json:"title"`
	DueDate    string              `json:"due_date,omitempty"`
	ReviewType *ReviewTypeResponse `json:"review_type,omitempty"`
}

func toDocumentResponse(d model.Document) DocumentResponse {
	resp := DocumentResponse{
		ID:    d.ID.String(),
		Title: d.Title,
	}
	if d.DueDate != nil {
		resp.DueDate = d.DueDate.Format("2006-01-02")
	}
	if d.ReviewType != nil {
		resp.ReviewType = &ReviewTypeResponse{
			ID:    d.ReviewType.ID.String(),
			Name:  d.ReviewType.Name,
			Color: d.ReviewType.Color,
		}
	}
	return resp
}

// ListDocuments returns all documents enriched with their review types.
func (h *CalendarHandler) ListDocuments(c *gin.Context) {
	documents, err := h.documents.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve documents"})
		return
	}

	resp := make([]DocumentResponse, 0, len(documents))
	for _, d := range documents {
		resp = append(resp, toDocumentResponse(d))
	}
	c.JSON(http.StatusOK, gin.H{"documents": resp})
}

// ListReviewTypes returns the review type palette the calendar colors by.
func (h *CalendarHandler) ListReviewTypes(c *gin.Context) {
	types, err := h.reviewTypes.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve review types"})
		return
	}

	resp := make([]ReviewTypeResponse, 0, len(types))
	for _, t := range types {
		resp = append(resp, ReviewTypeResponse{ID: t.ID.String(), Name: t.Name, Color: t.Color})
	}
	c.JSON(http.StatusOK, gin.H{"review_types": resp})
}

// Calendar groups documents by ISO due date for calendar-cell lookup. With a
// month=YYYY-MM query only that month's documents are included.
func (h *CalendarHandler) Calendar(c *gin.Context) {
	ctx := c.Request.Context()

	var documents []model.Document
	var err error
	if month := c.Query("month"); month != "" {
		from, parseErr := time.Parse("2006-01", month)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month, expected YYYY-MM"})
			return
		}
		documents, err = h.documents.ListDueBetween(ctx, from, from.AddDate(0, 1, 0))
	} else {
		documents, err = h.documents.List(ctx)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve documents"})
		return
	}

	byDate := make(map[string][]DocumentResponse)
	for _, d := range documents {
		if d.DueDate == nil {
			continue
		}
		key := d.DueDate.Format("2006-01-02")
		byDate[key] = append(byDate[key], toDocumentResponse(d))
	}

	c.JSON(http.StatusOK, gin.H{"documents_by_date": byDate})
}
