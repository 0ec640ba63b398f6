package tracker_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"reviewdash/internal/model"
	"reviewdash/internal/tracker"
)

// noon on 2024-06-15, so 2024-06-14 and earlier are overdue
var ref = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestDeriveStatus_CompletedNeverOverdue(t *testing.T) {
	a := model.Assignment{Status: model.StatusCompleted, DueDate: "2020-01-01"}

	assert.Equal(t, model.StatusCompleted, tracker.DeriveStatus(a, ref))
}

func TestDeriveStatus_PastDueBecomesOverdue(t *testing.T) {
	for _, status := range []model.Status{model.StatusPending, model.StatusInProgress} {
		a := model.Assignment{Status: status, DueDate: "2024-06-14"}
		assert.Equal(t, model.StatusOverdue, tracker.DeriveStatus(a, ref))
	}
}

func TestDeriveStatus_DueTodayIsNotOverdue(t *testing.T) {
	a := model.Assignment{Status: model.StatusPending, DueDate: "2024-06-15"}

	assert.Equal(t, model.StatusPending, tracker.DeriveStatus(a, ref))
}

func TestDeriveStatus_FutureDueKeepsStoredStatus(t *testing.T) {
	a := model.Assignment{Status: model.StatusInProgress, DueDate: "2024-07-01"}

	assert.Equal(t, model.StatusInProgress, tracker.DeriveStatus(a, ref))
}

func TestDeriveStatus_UnparseableDueDateKeepsStoredStatus(t *testing.T) {
	a := model.Assignment{Status: model.StatusPending, DueDate: "not-a-date"}

	assert.Equal(t, model.StatusPending, tracker.DeriveStatus(a, ref))
}
