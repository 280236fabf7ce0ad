package utils

import (
	"strconv"
	"strings"
)

// ParseID parses a decimal path identifier. Surrounding whitespace is ignored;
// fractions, hex and empty strings are rejected.
func ParseID(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
