package model

import (
	"math/rand"
	"strconv"
	"time"
)

// Status is the persisted lifecycle state of an assignment. StatusOverdue is
// derived at read time and must never be written to storage.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusOverdue    Status = "Overdue"
)

// Type is the closed set of assignment categories.
type Type string

const (
	TypeMDL           Type = "MDL"
	TypeSOPReview     Type = "SOP Review"
	TypeInternalAudit Type = "Internal Audit"
	TypeDOC           Type = "DOC"
)

func ValidType(t Type) bool {
	switch t {
	case TypeMDL, TypeSOPReview, TypeInternalAudit, TypeDOC:
		return true
	}
	return false
}

// Assignment is a trackable review task. The JSON field names are the
// persisted storage layout and must stay stable.
type Assignment struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Assignee string `json:"assignee"`
	Type     Type   `json:"type"`
	DueDate  string `json:"dueDate"`
	Status   Status `json:"status"`
}

// DueDateLayout is the calendar-date form assignments carry, no time component.
const DueDateLayout = "2006-01-02"

const idSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewAssignmentID returns an opaque token of the form asg-<unix-ms>-<suffix>.
func NewAssignmentID() string {
	suffix := make([]byte, 5)
	for i := range suffix {
		suffix[i] = idSuffixAlphabet[rand.Intn(len(idSuffixAlphabet))]
	}
	return "asg-" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + string(suffix)
}
