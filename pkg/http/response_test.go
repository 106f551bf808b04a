package http_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	pkghttp "github.com/credsink/credsink/pkg/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	pkghttp.WriteSuccess(w, "Login successful", map[string]string{"id": "abc"})

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp pkghttp.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Login successful", resp.Message)
	assert.NotNil(t, resp.Data)
}

func TestWriteSuccess_NilDataOmitted(t *testing.T) {
	w := httptest.NewRecorder()
	pkghttp.WriteSuccess(w, "All login attempts deleted", nil)

	raw := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	_, hasData := raw["data"]
	assert.False(t, hasData, "nil data should be omitted from the envelope")
}

func TestWriteList_EmptyCollection(t *testing.T) {
	w := httptest.NewRecorder()
	pkghttp.WriteList(w, 0, []string{})

	raw := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Equal(t, "0", string(raw["count"]))
	assert.Equal(t, "[]", string(raw["data"]), "count and data are always present on list responses")
}

func TestWriteFailure(t *testing.T) {
	w := httptest.NewRecorder()
	pkghttp.WriteBadRequest(w, "Email and password are required")

	assert.Equal(t, 400, w.Code)

	var resp pkghttp.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Email and password are required", resp.Message)
}

func TestWriteServerError(t *testing.T) {
	w := httptest.NewRecorder()
	pkghttp.WriteServerError(w, "Server error occurred")

	assert.Equal(t, 500, w.Code)

	var resp pkghttp.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Server error occurred", resp.Message)
}
