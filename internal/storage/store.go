package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Keys of the persisted blobs. The two dashboard keys are the storage layout
// the browser dashboard used and must stay stable.
const (
	KeyTeamMembers      = "teamMembersList"
	KeyAssignments      = "teamAssignments"
	KeyReminderSettings = "reminderSettings"
)

var ErrKeyNotFound = errors.New("key not found")

// Store persists named JSON blobs in a single local file. It is the service's
// analogue of the dashboard's browser-local storage: independently keyed
// values, written back whole on every mutation.
type Store struct {
	mu   sync.Mutex
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Get unmarshals the blob stored under key into v. A missing file or key
// yields ErrKeyNotFound; a blob that does not parse fails loudly.
func (s *Store) Get(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blobs, err := s.read()
	if err != nil {
		return err
	}

	raw, ok := blobs[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parse blob %s: %w", key, err)
	}
	return nil
}

// Set serializes v under key and writes the whole file back synchronously.
func (s *Store) Set(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blobs, err := s.read()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serialize blob %s: %w", key, err)
	}
	blobs[key] = raw

	return s.write(blobs)
}

func (s *Store) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}
	if len(data) == 0 {
		return map[string]json.RawMessage{}, nil
	}

	var blobs map[string]json.RawMessage
	if err := json.Unmarshal(data, &blobs); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}
	return blobs, nil
}

// write replaces the store file atomically so a crash mid-write cannot leave
// a truncated file behind.
func (s *Store) write(blobs map[string]json.RawMessage) error {
	data, err := json.Marshal(blobs)
	if err != nil {
		return fmt.Errorf("serialize store file: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return filepath.Clean(s.path)
}
