package configs

import (
	"os"
	"time"
)

var Envs = struct {
	LISTEN_ADDR     string
	FRONTEND_ORIGIN string
	GIN_MODE        string
	ROOM_TTL        time.Duration
}{
	LISTEN_ADDR:     getenvOr("LISTEN_ADDR", ":8080"),
	FRONTEND_ORIGIN: os.Getenv("FRONTEND_ORIGIN"),
	GIN_MODE:        os.Getenv("GIN_MODE"),
	ROOM_TTL:        parseDuration(os.Getenv("ROOM_TTL")),
}

func getenvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseDuration returns 0 for empty or malformed values. A zero ROOM_TTL means
// idle rooms are never expired.
func parseDuration(raw string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0
	}
	return d
}
