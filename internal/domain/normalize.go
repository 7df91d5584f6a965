package domain

import "strings"

// NormalizeUsername trims surrounding whitespace. Username comparison is
// exact and case-sensitive everywhere; normalization never changes case.
func NormalizeUsername(s string) string {
	return strings.TrimSpace(s)
}
