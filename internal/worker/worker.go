// Package worker holds background loops that run beside the HTTP API.
package worker

import "profassist/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
