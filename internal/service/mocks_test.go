package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"github.com/draftpilot/draftpilot-api/internal/generation"
	"github.com/draftpilot/draftpilot-api/internal/store"
)

// mockGenerator records the requests it receives and returns scripted
// results.
type mockGenerator struct {
	mu sync.Mutex

	textResult string
	textErr    error
	// textResults, when set, yields a distinct result per call.
	textResults []string

	structuredResult json.RawMessage
	structuredErr    error

	textCalls       int
	structuredCalls int
	lastRequest     generation.Request
	lastStructured  generation.StructuredRequest
}

var _ generation.Generator = (*mockGenerator)(nil)

func (m *mockGenerator) GenerateText(ctx context.Context, req generation.Request) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	call := m.textCalls
	m.textCalls++
	m.lastRequest = req
	if m.textErr != nil {
		return "", m.textErr
	}
	if m.textResults != nil {
		return m.textResults[call%len(m.textResults)], nil
	}
	return m.textResult, nil
}

func (m *mockGenerator) GenerateStructured(
	ctx context.Context,
	req generation.StructuredRequest,
) (json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.structuredCalls++
	m.lastStructured = req
	if m.structuredErr != nil {
		return nil, m.structuredErr
	}
	return m.structuredResult, nil
}

// mockPreferenceStore serves a fixed preference, or store.ErrNotFound.
type mockPreferenceStore struct {
	pref *store.Preference
	err  error

	upserted *store.Preference
}

var _ store.PreferenceStore = (*mockPreferenceStore)(nil)

func (m *mockPreferenceStore) Get(ctx context.Context, userID uuid.UUID) (*store.Preference, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.pref == nil {
		return nil, store.ErrNotFound
	}
	return m.pref, nil
}

func (m *mockPreferenceStore) Upsert(ctx context.Context, pref *store.Preference) error {
	if m.err != nil {
		return m.err
	}
	m.upserted = pref
	return nil
}
