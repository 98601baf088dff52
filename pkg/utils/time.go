package utils

import (
	"log/slog"
	"time"
)

var (
	AppLocation = time.UTC
)

// SetLocation switches the timezone "today" is computed in.
// An unknown zone keeps UTC so the server still starts.
func SetLocation(name string) {
	if name == "" {
		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("failed to load timezone, falling back to UTC", slog.String("timezone", name), slog.Any("error", err))
		AppLocation = time.UTC
		return
	}
	AppLocation = loc
}

func Now() time.Time {
	return time.Now().In(AppLocation)
}
