package repository

import (
	"os"
	"strconv"
	"time"

	"moto_garage/internal/domain/entities"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func centsToString(c entities.Cents) string {
	return strconv.FormatInt(int64(c), 10)
}

func mergeNames(dst, extra map[string]string) map[string]string {
	for k, v := range extra {
		dst[k] = v
	}
	return dst
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseOptionalTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
