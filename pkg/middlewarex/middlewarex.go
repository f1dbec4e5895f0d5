// Package middlewarex holds the HTTP middleware chain shared by the API server.
package middlewarex

import "profassist/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
