package domain

import (
	"encoding/json"
	"time"
)

// Preferences is a per-user settings record. Field values are copied
// verbatim from client input: the contents are not validated, and fields
// outside this set are dropped on decode.
type Preferences struct {
	Theme          json.RawMessage `json:"theme,omitempty"`
	Language       json.RawMessage `json:"language,omitempty"`
	Notifications  json.RawMessage `json:"notifications,omitempty"`
	Privacy        json.RawMessage `json:"privacy,omitempty"`
	GameSettings   json.RawMessage `json:"gameSettings,omitempty"`
	CustomSettings json.RawMessage `json:"customSettings,omitempty"`
}

// UserPreferences is the preferences view returned to API callers.
type UserPreferences struct {
	ID          string      `json:"id"`
	Preferences Preferences `json:"preferences"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
