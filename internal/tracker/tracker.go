package tracker

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"reviewdash/internal/logger"
	"reviewdash/internal/model"
	"reviewdash/internal/storage"
)

// DefaultTeamMembers seeds the roster when storage holds no usable member
// list.
var DefaultTeamMembers = []string{"Alice", "Bob", "Charlie", "David", "Eve"}

// Tracker owns the in-memory dashboard state: the team roster and the
// assignment collection, in insertion order. Every successful mutation is
// written through to the blob store before it returns.
type Tracker struct {
	mu          sync.Mutex
	store       *storage.Store
	roster      []string
	assignments []model.Assignment
}

func New(store *storage.Store) *Tracker {
	return &Tracker{store: store}
}

// Load reads both blobs from storage. A missing, empty, or unparseable
// roster falls back to the default five members; missing assignments fall
// back to an empty collection, but a malformed assignments blob fails the
// load.
func (t *Tracker) Load() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var roster []string
	if err := t.store.Get(storage.KeyTeamMembers, &roster); err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			logger.Warn("Unreadable team member list, falling back to defaults", zap.Error(err))
		}
		roster = nil
	}
	if len(roster) == 0 {
		roster = append([]string(nil), DefaultTeamMembers...)
	}
	t.roster = roster

	var assignments []model.Assignment
	if err := t.store.Get(storage.KeyAssignments, &assignments); err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			return fmt.Errorf("load assignments: %w", err)
		}
		assignments = nil
	}
	t.assignments = assignments

	return nil
}

// Roster returns a copy of the member list in insertion order.
func (t *Tracker) Roster() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.roster...)
}

// AddMember validates and appends a new team member. The name is trimmed;
// blank names and case-insensitive duplicates are rejected.
func (t *Tracker) AddMember(name string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	for _, member := range t.roster {
		if strings.EqualFold(member, name) {
			return "", fmt.Errorf("%w: %s", ErrMemberExists, member)
		}
	}

	t.roster = append(t.roster, name)
	if err := t.store.Set(storage.KeyTeamMembers, t.roster); err != nil {
		return "", fmt.Errorf("save team members: %w", err)
	}
	return name, nil
}

// Create appends a new assignment with a fresh id and status forced to
// Pending. The assignee must be on the roster at creation time; it is not
// re-validated afterwards.
func (t *Tracker) Create(title, assignee string, typ model.Type, dueDate string) (model.Assignment, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	title = strings.TrimSpace(title)
	if title == "" {
		return model.Assignment{}, ErrEmptyTitle
	}

	onRoster := false
	for _, member := range t.roster {
		if member == assignee {
			onRoster = true
			break
		}
	}
	if !onRoster {
		return model.Assignment{}, fmt.Errorf("%w: %s", ErrUnknownAssignee, assignee)
	}

	a := model.Assignment{
		ID:       model.NewAssignmentID(),
		Title:    title,
		Assignee: assignee,
		Type:     typ,
		DueDate:  dueDate,
		Status:   model.StatusPending,
	}
	t.assignments = append(t.assignments, a)

	if err := t.saveAssignments(); err != nil {
		return model.Assignment{}, err
	}
	return a, nil
}

// Apply moves the assignment with the given id through the lifecycle graph
// and persists the result. The state is left untouched on any error.
func (t *Tracker) Apply(id string, action Action) (model.Assignment, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.indexOf(id)
	if idx < 0 {
		return model.Assignment{}, fmt.Errorf("%w: %s", ErrAssignmentNotFound, id)
	}

	next, err := transition(t.assignments[idx].Status, action)
	if err != nil {
		return model.Assignment{}, fmt.Errorf("%s on %s assignment %s: %w",
			action, t.assignments[idx].Status, id, err)
	}

	t.assignments[idx].Status = next
	if err := t.saveAssignments(); err != nil {
		return model.Assignment{}, err
	}
	return t.assignments[idx], nil
}

// Delete removes the assignment with the given id. Confirmation is the
// caller's concern; by the time Delete runs the user has already said yes.
func (t *Tracker) Delete(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrAssignmentNotFound, id)
	}

	t.assignments = append(t.assignments[:idx], t.assignments[idx+1:]...)
	return t.saveAssignments()
}

// View runs the presentation pipeline over a snapshot of the collection.
func (t *Tracker) View(filter Filter, sortKey SortKey, now time.Time) []model.Assignment {
	t.mu.Lock()
	snapshot := append([]model.Assignment(nil), t.assignments...)
	t.mu.Unlock()

	return ComputeView(snapshot, filter, sortKey, now)
}

// Assignments returns a copy of the collection in insertion order.
func (t *Tracker) Assignments() []model.Assignment {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]model.Assignment(nil), t.assignments...)
}

func (t *Tracker) indexOf(id string) int {
	for i, a := range t.assignments {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func (t *Tracker) saveAssignments() error {
	if err := t.store.Set(storage.KeyAssignments, t.assignments); err != nil {
		return fmt.Errorf("save assignments: %w", err)
	}
	return nil
}
