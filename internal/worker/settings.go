package worker

import (
	"time"

	"reviewdash/internal/storage"
)

// Frequency is how often an overdue assignment may be reminded about.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

func ValidFrequency(f Frequency) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// Window is the minimum gap between two reminders for the same document and
// reviewer.
func (f Frequency) Window() time.Duration {
	switch f {
	case FrequencyDaily:
		return 24 * time.Hour
	case FrequencyMonthly:
		return 30 * 24 * time.Hour
	default:
		return 7 * 24 * time.Hour
	}
}

// Settings is the persisted reminder configuration blob.
type Settings struct {
	Frequency Frequency `json:"frequency"`
}

// LoadSettings reads the settings blob, defaulting to weekly when the blob is
// missing or holds an unknown frequency.
func LoadSettings(store *storage.Store) Settings {
	var s Settings
	if err := store.Get(storage.KeyReminderSettings, &s); err != nil || !ValidFrequency(s.Frequency) {
		return Settings{Frequency: FrequencyWeekly}
	}
	return s
}

// SaveSettings writes the settings blob back.
func SaveSettings(store *storage.Store, s Settings) error {
	return store.Set(storage.KeyReminderSettings, s)
}
