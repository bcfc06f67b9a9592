package handlers

import (
	"net/http"

	"github.com/dannykellett/ai-chat-bot/app"
	"github.com/dannykellett/ai-chat-bot/utils"
)

// SettingsResponse is the redacted configuration view exposed to operators.
// Secret material is masked, never echoed.
type SettingsResponse struct {
	Environment      string   `json:"environment"`
	Debug            bool     `json:"debug"`
	Model            string   `json:"model"`
	Database         string   `json:"database"`
	AllowedOrigins   []string `json:"allowed_origins"`
	AllowedFileTypes []string `json:"allowed_file_types"`
	MaxFileSizeMB    int      `json:"max_file_size_mb"`
	SecretKey        string   `json:"secret_key"`
	OpenAIAPIKey     string   `json:"openai_api_key"`
}

// Settings returns the redacted settings handler. Routes must guard it with
// RequireAuth.
func Settings(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := deps.Config
		response := SettingsResponse{
			Environment:      cfg.AppEnv,
			Debug:            cfg.Debug,
			Model:            cfg.OpenAI.Model,
			Database:         cfg.DatabaseLogString(),
			AllowedOrigins:   cfg.AllowedOrigins(),
			AllowedFileTypes: cfg.AllowedFileTypes(),
			MaxFileSizeMB:    cfg.MaxFileSizeMB,
			SecretKey:        maskSecret(cfg.SecretKey),
			OpenAIAPIKey:     maskSecret(cfg.OpenAI.APIKey),
		}

		_ = utils.WriteOK(w, response)
	}
}

// maskSecret keeps the last four characters for identification
func maskSecret(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return "****" + s[len(s)-4:]
}
