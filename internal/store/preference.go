package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Preference holds a user's add-in settings. One row per user; the add-in
// reads them at pane load and writes them when the user changes a setting.
type Preference struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Tone      string    `json:"tone"`
	Signature string    `json:"signature"`
	Model     string    `json:"model"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PreferenceStore defines the interface for preference persistence.
type PreferenceStore interface {
	// Get retrieves the preferences for a user.
	// Returns ErrNotFound if the user has never saved preferences.
	Get(ctx context.Context, userID uuid.UUID) (*Preference, error)

	// Upsert creates or replaces the preferences for pref.UserID.
	// The store assigns ID and UpdatedAt on write.
	Upsert(ctx context.Context, pref *Preference) error
}
