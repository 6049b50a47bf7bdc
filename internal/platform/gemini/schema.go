package gemini

import (
	"google.golang.org/genai"

	"github.com/draftpilot/draftpilot-api/internal/generation"
)

// toGenaiSchema translates the transport-neutral schema description into
// the SDK's representation. Unrecognized type names fall back to string.
func toGenaiSchema(s *generation.Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:        toGenaiType(s.Type),
		Description: s.Description,
		Required:    s.Required,
	}

	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenaiSchema(prop)
		}
	}
	if s.Items != nil {
		out.Items = toGenaiSchema(s.Items)
	}
	return out
}

func toGenaiType(t string) genai.Type {
	switch t {
	case "object":
		return genai.TypeObject
	case "array":
		return genai.TypeArray
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	default:
		return genai.TypeString
	}
}
