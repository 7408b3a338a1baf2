// Package utils provides tiny helpers shared across layers. Nothing here
// knows about the domain.
package utils

import "strconv"

// AtoiDefault parses s as an int, returning def when s is empty or not a
// number. Handlers use it to read page/page_size query values before
// clamping them to their allowed ranges.
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}
