package utils

import (
	"os"
	"strings"
)

// Getenv returns the value of the environment variable, or the fallback when
// unset or blank.
func Getenv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
