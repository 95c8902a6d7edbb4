package transport

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Small environment readers with defaults. Malformed values are logged and
// ignored rather than failing transport construction.

func envDuration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		slog.Warn("Ignoring malformed duration in environment", "key", key, "value", raw, "error", err)

		return fallback
	}

	return value
}

func envInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("Ignoring malformed integer in environment", "key", key, "value", raw, "error", err)

		return fallback
	}

	return value
}

func envBool(key string, fallback bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		slog.Warn("Ignoring malformed boolean in environment", "key", key, "value", raw, "error", err)

		return fallback
	}

	return value
}
