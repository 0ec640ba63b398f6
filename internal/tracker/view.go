package tracker

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"reviewdash/internal/model"
)

// FilterStatus selects which assignments a view shows. FilterAll passes
// everything, FilterOverdue matches by derived status, every other value
// matches the stored status exactly.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterPending    Filter = Filter(model.StatusPending)
	FilterInProgress Filter = Filter(model.StatusInProgress)
	FilterCompleted  Filter = Filter(model.StatusCompleted)
	FilterOverdue    Filter = Filter(model.StatusOverdue)
)

// SortKey orders a view. An unknown key leaves the insertion order untouched.
type SortKey string

const (
	SortDueDate     SortKey = "dueDate"
	SortDueDateDesc SortKey = "dueDateDesc"
	SortTitle       SortKey = "title"
	SortAssignee    SortKey = "assignee"
)

// EmptyViewMessage is shown in place of the list when no assignment passes
// the active filter.
const EmptyViewMessage = "No assignments match your filters. Try adjusting them or add a new assignment!"

var textCollator = collate.New(language.English)

// ComputeView filters and sorts assignments for presentation. It never
// mutates its input; stored order is insertion order and stays that way.
func ComputeView(assignments []model.Assignment, filter Filter, sortKey SortKey, now time.Time) []model.Assignment {
	view := make([]model.Assignment, 0, len(assignments))
	for _, a := range assignments {
		switch filter {
		case FilterAll, "":
			view = append(view, a)
		case FilterOverdue:
			if DeriveStatus(a, now) == model.StatusOverdue {
				view = append(view, a)
			}
		default:
			if a.Status == model.Status(filter) {
				view = append(view, a)
			}
		}
	}

	switch sortKey {
	case SortDueDate:
		sort.SliceStable(view, func(i, j int) bool {
			return dueTime(view[i]).Before(dueTime(view[j]))
		})
	case SortDueDateDesc:
		sort.SliceStable(view, func(i, j int) bool {
			return dueTime(view[j]).Before(dueTime(view[i]))
		})
	case SortTitle:
		sort.SliceStable(view, func(i, j int) bool {
			return textCollator.CompareString(view[i].Title, view[j].Title) < 0
		})
	case SortAssignee:
		sort.SliceStable(view, func(i, j int) bool {
			return textCollator.CompareString(view[i].Assignee, view[j].Assignee) < 0
		})
	}

	return view
}

func dueTime(a model.Assignment) time.Time {
	t, err := time.Parse(model.DueDateLayout, a.DueDate)
	if err != nil {
		return time.Time{}
	}
	return t
}
