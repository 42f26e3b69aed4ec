package handlers

import (
	"strconv"
	"strings"
)

func parseUint(raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// parseUintList splits a comma-separated query value, dropping blanks and
// anything non-numeric, the way the original API tolerated sloppy id lists.
func parseUintList(raw string) []uint {
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := parseUint(part)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
