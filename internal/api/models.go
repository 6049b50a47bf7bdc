package api

// Request/response structures for the add-in endpoints.

// DraftRequest defines the payload for the draft endpoints. Optional tuning
// fields are pointers so the service can tell "unset" from an explicit zero.
type DraftRequest struct {
	Action string `json:"action" validate:"required,oneof=reply rewrite summarize proofread"`
	Text   string `json:"text"   validate:"required,min=1"`

	Tone  string `json:"tone,omitempty"  validate:"omitempty,max=64"`
	Model string `json:"model,omitempty" validate:"omitempty,max=128"`

	Temperature     *float32 `json:"temperature,omitempty"       validate:"omitempty,gte=0,lte=2"`
	MaxOutputTokens *int32   `json:"max_output_tokens,omitempty" validate:"omitempty,gt=0"`
	TopP            *float32 `json:"top_p,omitempty"             validate:"omitempty,gte=0,lte=1"`
	TopK            *int32   `json:"top_k,omitempty"             validate:"omitempty,gt=0"`
	TimeoutMs       int      `json:"timeout_ms,omitempty"        validate:"omitempty,gt=0"`
}

// DraftResponse defines the successful response for POST /api/drafts.
type DraftResponse struct {
	Text  string `json:"text"`
	Model string `json:"model"`

	// Truncated reports that the source text exceeded the prompt budget
	// and was cut, so the add-in can warn the user.
	Truncated bool `json:"truncated,omitempty"`
}

// VariationsRequest defines the payload for POST /api/drafts/variations.
type VariationsRequest struct {
	DraftRequest
	Count int `json:"count" validate:"required,min=1,max=4"`
}

// VariationsResponse defines the successful response for the variations
// endpoint.
type VariationsResponse struct {
	Variations []string `json:"variations"`
	Model      string   `json:"model"`
}

// ExtractRequest defines the payload for POST /api/extract.
type ExtractRequest struct {
	Kind string `json:"kind" validate:"required,oneof=action_items key_points"`
	Text string `json:"text" validate:"required,min=1"`
}

// PreferenceResponse defines the per-user add-in settings returned by
// GET /api/preferences. Zero values mean "use the server default".
type PreferenceResponse struct {
	Tone      string `json:"tone"`
	Signature string `json:"signature"`
	Model     string `json:"model"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// UpdatePreferenceRequest defines the payload for PUT /api/preferences.
type UpdatePreferenceRequest struct {
	Tone      string `json:"tone"      validate:"omitempty,max=64"`
	Signature string `json:"signature" validate:"omitempty,max=1024"`
	Model     string `json:"model"     validate:"omitempty,max=128"`
}
