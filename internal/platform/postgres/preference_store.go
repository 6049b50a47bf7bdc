package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/draftpilot/draftpilot-api/internal/store"
)

// PostgresPreferenceStore implements store.PreferenceStore using a
// PostgreSQL database as the storage backend.
type PostgresPreferenceStore struct {
	db *sql.DB
}

// NewPostgresPreferenceStore creates a new PostgreSQL implementation of the
// PreferenceStore interface. The connection is initialized and managed by
// the caller.
func NewPostgresPreferenceStore(db *sql.DB) *PostgresPreferenceStore {
	return &PostgresPreferenceStore{db: db}
}

var _ store.PreferenceStore = (*PostgresPreferenceStore)(nil)

// Get implements store.PreferenceStore.Get.
func (s *PostgresPreferenceStore) Get(ctx context.Context, userID uuid.UUID) (*store.Preference, error) {
	const query = `
		SELECT id, user_id, tone, signature, model, updated_at
		FROM preferences
		WHERE user_id = $1`

	var pref store.Preference
	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&pref.ID,
		&pref.UserID,
		&pref.Tone,
		&pref.Signature,
		&pref.Model,
		&pref.UpdatedAt,
	)
	if err != nil {
		return nil, MapError(err)
	}
	return &pref, nil
}

// Upsert implements store.PreferenceStore.Upsert.
func (s *PostgresPreferenceStore) Upsert(ctx context.Context, pref *store.Preference) error {
	if pref.ID == uuid.Nil {
		pref.ID = uuid.New()
	}
	pref.UpdatedAt = time.Now().UTC()

	const query = `
		INSERT INTO preferences (id, user_id, tone, signature, model, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET tone = EXCLUDED.tone,
		    signature = EXCLUDED.signature,
		    model = EXCLUDED.model,
		    updated_at = EXCLUDED.updated_at`

	_, err := s.db.ExecContext(ctx, query,
		pref.ID, pref.UserID, pref.Tone, pref.Signature, pref.Model, pref.UpdatedAt)
	if err != nil {
		return MapError(err)
	}
	return nil
}
