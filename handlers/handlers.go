package handlers

import (
	"net/http"

	"github.com/dannykellett/ai-chat-bot/app"
	"github.com/dannykellett/ai-chat-bot/utils"
)

const (
	apiName    = "AI Chatbot API"
	apiVersion = "0.1.0"
)

// RootResponse is the fixed banner returned by the base path
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// Root returns the API banner handler. It consumes no input and cannot fail.
func Root(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteJSON(w, http.StatusOK, RootResponse{
			Message: apiName,
			Version: apiVersion,
		})
	}
}
