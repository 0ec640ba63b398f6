package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"reviewdash/internal/tracker"
)

type MemberHandler struct {
	tracker *tracker.Tracker
}

func NewMemberHandler(t *tracker.Tracker) *MemberHandler {
	return &MemberHandler{tracker: t}
}

type AddMemberRequest struct {
	Name string `json:"name"`
}

// List returns the roster in insertion order.
func (h *MemberHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"members": h.tracker.Roster()})
}

// Add appends a new team member. The response messages match the ones the
// dashboard showed next to the add-member control.
func (h *MemberHandler) Add(c *gin.Context) {
	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a name for the new team member."})
		return
	}

	name, err := h.tracker.AddMember(req.Name)
	if err != nil {
		switch {
		case errors.Is(err, tracker.ErrEmptyName):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a name for the new team member."})
		case errors.Is(err, tracker.ErrMemberExists):
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("%q is already in the team list.", strings.TrimSpace(req.Name))})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save team members"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"name":    name,
		"message": fmt.Sprintf("%q has been added successfully!", name),
	})
}
