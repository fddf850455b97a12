package service

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// PriceLevel converts an upstream price string to the "1".."4" level convention.
// Yelp reports price as repeated currency symbols ("$$", "€€€"); digit levels pass
// through unchanged. Anything else yields nil.
func PriceLevel(raw *string) *string {
	if raw == nil {
		return nil
	}
	value := strings.TrimSpace(*raw)
	if value == "" {
		return nil
	}
	if n, err := strconv.Atoi(value); err == nil {
		if n < 1 || n > 4 {
			return nil
		}
		return &value
	}

	first, _ := utf8.DecodeRuneInString(value)
	count := 0
	for _, r := range value {
		if r != first {
			return nil
		}
		count++
	}
	if count < 1 || count > 4 {
		return nil
	}
	level := strconv.Itoa(count)
	return &level
}

// normalizePriceLevels parses a comma separated list of levels, returning them
// de-duplicated and ascending. ok is false when any entry is not a level in 1..4.
func normalizePriceLevels(raw string) (string, bool) {
	seen := make(map[int]struct{})
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 || n > 4 {
			return "", false
		}
		seen[n] = struct{}{}
	}

	levels := make([]int, 0, len(seen))
	for n := range seen {
		levels = append(levels, n)
	}
	sort.Ints(levels)

	parts := make([]string, len(levels))
	for i, n := range levels {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ","), true
}
