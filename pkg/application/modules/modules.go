// Package modules runs the long-lived parts of the process inside one errgroup.
package modules

import "profassist/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
