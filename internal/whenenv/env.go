// Package whenenv reads the environment variables that override the when
// binary's defaults.
package whenenv

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// NowEnvVar pins the reference clock to an RFC 3339 instant.
	NowEnvVar = "WHEN_NOW"

	// StoreEnvVar overrides the configured store path.
	StoreEnvVar = "WHEN_STORE"
)

// Clock returns the clock implied by the environment: time.Now, or a fixed
// instant when WHEN_NOW is set.
func Clock() (func() time.Time, error) {
	value := strings.TrimSpace(os.Getenv(NowEnvVar))
	if value == "" {
		return time.Now, nil
	}
	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", NowEnvVar, err)
	}
	now = now.Local()
	return func() time.Time { return now }, nil
}

// StorePath returns the store path override, or fallback when unset.
func StorePath(fallback string) string {
	if value := strings.TrimSpace(os.Getenv(StoreEnvVar)); value != "" {
		return value
	}
	return fallback
}
