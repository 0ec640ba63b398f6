package tracker

import (
	"time"

	"reviewdash/internal/model"
)

// QuarterStat counts assignments due in one quarter of the year.
type QuarterStat struct {
	Quarter   string `json:"quarter"`
	Completed int    `json:"completed"`
	Pending   int    `json:"pending"`
}

// Stats is the data behind the dashboard charts: completion by quarter and
// the number of open assignments per roster member.
type Stats struct {
	Quarterly    []QuarterStat  `json:"quarterly"`
	OpenByMember map[string]int `json:"open_by_member"`
}

// ComputeStats aggregates a snapshot of the collection. Per-member counts
// cover roster members only; assignments of members who left the roster are
// not attributed to anyone.
func (t *Tracker) ComputeStats() Stats {
	t.mu.Lock()
	assignments := append([]model.Assignment(nil), t.assignments...)
	roster := append([]string(nil), t.roster...)
	t.mu.Unlock()

	quarters := []string{"Q1", "Q2", "Q3", "Q4"}
	completed := make(map[string]int, 4)
	total := make(map[string]int, 4)

	open := make(map[string]int, len(roster))
	for _, member := range roster {
		open[member] = 0
	}

	for _, a := range assignments {
		if due, err := time.Parse(model.DueDateLayout, a.DueDate); err == nil {
			q := quarters[(int(due.Month())-1)/3]
			total[q]++
			if a.Status == model.StatusCompleted {
				completed[q]++
			}
		}

		if a.Status != model.StatusCompleted {
			if _, ok := open[a.Assignee]; ok {
				open[a.Assignee]++
			}
		}
	}

	quarterly := make([]QuarterStat, 0, len(quarters))
	for _, q := range quarters {
		quarterly = append(quarterly, QuarterStat{
			Quarter:   q,
			Completed: completed[q],
			Pending:   total[q] - completed[q],
		})
	}

	return Stats{Quarterly: quarterly, OpenByMember: open}
}
