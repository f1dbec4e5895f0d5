package server

import (
	"net/http"

	"profassist/pkg/httpx/reply"
	"profassist/pkg/rest"
)

type HealthServer struct {
	school           string
	claudeConfigured bool
}

func NewHealthServer(school string, claudeConfigured bool) HealthServer {
	return HealthServer{
		school:           school,
		claudeConfigured: claudeConfigured,
	}
}

func (s HealthServer) getHealth(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, rest.Health{
		Status:           "healthy",
		School:           s.school,
		ClaudeConfigured: s.claudeConfigured,
	})

	return nil
}
