package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/draftpilot/draftpilot-api/internal/generation"
)

func TestToGenaiSchema(t *testing.T) {
	schema := &generation.Schema{
		Type:        "object",
		Description: "action items",
		Properties: map[string]*generation.Schema{
			"items": {
				Type:  "array",
				Items: &generation.Schema{Type: "string"},
			},
			"count": {Type: "integer"},
			"done":  {Type: "boolean"},
			"score": {Type: "number"},
		},
		Required: []string{"items"},
	}

	got := toGenaiSchema(schema)
	require.NotNil(t, got)
	assert.Equal(t, genai.TypeObject, got.Type)
	assert.Equal(t, "action items", got.Description)
	assert.Equal(t, []string{"items"}, got.Required)
	assert.Equal(t, genai.TypeArray, got.Properties["items"].Type)
	assert.Equal(t, genai.TypeString, got.Properties["items"].Items.Type)
	assert.Equal(t, genai.TypeInteger, got.Properties["count"].Type)
	assert.Equal(t, genai.TypeBoolean, got.Properties["done"].Type)
	assert.Equal(t, genai.TypeNumber, got.Properties["score"].Type)
}

func TestToGenaiSchemaNil(t *testing.T) {
	assert.Nil(t, toGenaiSchema(nil))
}

func TestToGenaiTypeUnknownFallsBackToString(t *testing.T) {
	assert.Equal(t, genai.TypeString, toGenaiType("whatever"))
}
