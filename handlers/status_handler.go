package handlers

import (
	"net/http"

	"github.com/dannykellett/ai-chat-bot/app"
	"github.com/dannykellett/ai-chat-bot/utils"
)

// Status returns application status information
func Status(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := map[string]interface{}{
			"version":     apiVersion,
			"environment": deps.Config.AppEnv,
			"model":       deps.Config.OpenAI.Model,
			"instance_id": deps.InstanceID.String(),
			"debug":       deps.Config.Debug,
		}

		_ = utils.WriteOK(w, response)
	}
}
