package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftpilot/draftpilot-api/internal/generation"
)

func TestGetTemplate(t *testing.T) {
	for _, action := range ActionNames() {
		tmpl, err := GetTemplate(action)
		require.NoError(t, err, action)
		assert.NotEmpty(t, tmpl, action)
		assert.Contains(t, tmpl, "{{MESSAGE}}", action)
	}

	_, err := GetTemplate("translate")
	assert.ErrorIs(t, err, ErrUnknownAction)
	for _, action := range ActionNames() {
		assert.Contains(t, err.Error(), action,
			"the unknown-action error names the valid choices")
	}

	_, err = GetTemplate("Reply")
	assert.ErrorIs(t, err, ErrUnknownAction, "action names are case-sensitive")
}

func TestActionNamesOrder(t *testing.T) {
	names := ActionNames()
	assert.Equal(t, []string{"reply", "rewrite", "summarize", "proofread"}, names)

	// Callers may mutate the returned slice without corrupting the catalog.
	names[0] = "mutated"
	assert.Equal(t, "reply", ActionNames()[0])
}

func TestTemplatePlaceholders(t *testing.T) {
	// Every marker a template declares must be one the draft flow fills in.
	known := map[string]bool{"MESSAGE": true, "TONE": true, "SIGNATURE": true}

	for _, action := range ActionNames() {
		tmpl, err := GetTemplate(action)
		require.NoError(t, err)
		for _, name := range generation.ListPlaceholders(tmpl) {
			assert.True(t, known[name], "template %q uses unknown marker %q", action, name)
		}
	}
}

func TestToneTemplatesDeclareTone(t *testing.T) {
	for _, action := range []string{ActionReply, ActionRewrite} {
		tmpl, err := GetTemplate(action)
		require.NoError(t, err)
		assert.Contains(t, tmpl, "{{TONE}}", action)
	}
}
