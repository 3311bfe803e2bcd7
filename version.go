package main

import (
	"fmt"
	"runtime/debug"
)

const (
	SERVER_NAME    = "Game-Catalog-Go"
	SERVER_VERSION = "0.3.0"
)

// Set at link stage via `-ldflags "-X main.GIT_COMMIT=$(git rev-parse --short HEAD)"`
var GIT_COMMIT string

// Server header string
var SERVER_SIGNATURE = fmt.Sprintf("%s/%s (%s)", SERVER_NAME, SERVER_VERSION, buildRevision())

// buildRevision falls back to the VCS stamp the toolchain embeds when the
// commit was not injected at link time.
func buildRevision() string {
	if GIT_COMMIT != "" {
		return GIT_COMMIT
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && len(setting.Value) >= 7 {
				return setting.Value[:7]
			}
		}
	}
	return "unknown"
}
