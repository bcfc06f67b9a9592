package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/dannykellett/ai-chat-bot/app"
	"github.com/dannykellett/ai-chat-bot/config"
)

func testDeps() *app.Dependencies {
	return &app.Dependencies{
		Config: &config.Config{
			AppEnv:              "test",
			Debug:               true,
			SecretKey:           "test-secret-key",
			OpenAI:              config.OpenAIConfig{APIKey: "sk-test-1234", Model: "gpt-4o-mini"},
			DatabaseURL:         "sqlite:///./chatbot.db",
			AllowedOriginsRaw:   "http://localhost:3000",
			AllowedFileTypesRaw: "txt,md",
			MaxFileSizeMB:       10,
		},
		Logger: zap.NewNop(),
	}
}

func TestRoot(t *testing.T) {
	handler := Root(testDeps())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"AI Chatbot API","version":"0.1.0"}`, w.Body.String())
}
