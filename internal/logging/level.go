package logging

import (
	"fmt"
	"log/slog"
	"strings"
)

// ParseLevel maps a config value such as "debug" or "WARN" onto a slog level.
// An empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}
