package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"profassist/pkg/logx"
	"profassist/pkg/middlewarex"
)

// NewRouter mounts the API behind the standard middleware chain. Outermost
// first: CORS, trace id, request logger, panic recovery, request and
// response logging.
func NewRouter(s Server, logFieldMaxLen int) http.Handler {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()

	r.Use(
		middlewarex.CORS,
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
	)

	s.RegisterRoutes(r)

	return r
}
