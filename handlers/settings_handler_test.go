package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings(t *testing.T) {
	deps := testDeps()
	handler := Settings(deps)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data SettingsResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&envelope))

	got := envelope.Data
	assert.Equal(t, "test", got.Environment)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.Equal(t, []string{"http://localhost:3000"}, got.AllowedOrigins)
	assert.Equal(t, []string{"txt", "md"}, got.AllowedFileTypes)
	assert.Equal(t, 10, got.MaxFileSizeMB)

	// Secret material is masked.
	assert.NotContains(t, got.SecretKey, "test-secret")
	assert.Equal(t, "****-key", got.SecretKey)
	assert.Equal(t, "****1234", got.OpenAIAPIKey)
}

func TestStatus(t *testing.T) {
	deps := testDeps()
	handler := Status(deps)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&envelope))

	assert.Equal(t, "0.1.0", envelope.Data["version"])
	assert.Equal(t, "test", envelope.Data["environment"])
	assert.Equal(t, "gpt-4o-mini", envelope.Data["model"])
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "****", maskSecret(""))
	assert.Equal(t, "****", maskSecret("abcd"))
	assert.Equal(t, "****6789", maskSecret("123456789"))
}
