package shared

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taggedRequest struct {
	Kind string `validate:"required,oneof=action_items key_points"`
}

type selfValidatingRequest struct {
	err error
}

func (r selfValidatingRequest) Validate() error { return r.err }

func TestDecodeJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"Kind":"key_points"}`))

	var req taggedRequest
	require.NoError(t, DecodeJSON(r, &req))
	assert.Equal(t, "key_points", req.Kind)

	r = httptest.NewRequest("POST", "/", strings.NewReader(`{"Kind":`))
	assert.Error(t, DecodeJSON(r, &req))
}

func TestValidateRequestStructTags(t *testing.T) {
	assert.NoError(t, ValidateRequest(taggedRequest{Kind: "action_items"}))
	assert.Error(t, ValidateRequest(taggedRequest{}))
	assert.Error(t, ValidateRequest(taggedRequest{Kind: "sentiment"}))
}

func TestValidateRequestPrefersValidateMethod(t *testing.T) {
	assert.NoError(t, ValidateRequest(selfValidatingRequest{}))

	wantErr := errors.New("bad request")
	assert.ErrorIs(t, ValidateRequest(selfValidatingRequest{err: wantErr}), wantErr)
}
