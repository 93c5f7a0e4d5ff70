package editor

import (
	"strconv"
	"strings"
	"unicode"
)

// Ranges for the bounded numeric fields.
const (
	MinSkillLevel = 0
	MaxSkillLevel = 100
	MinRating     = 1
	MaxRating     = 5
)

// ParseLeadingInt reads the integer at the start of s, ignoring surrounding
// spaces and any trailing garbage ("85%" is 85). Input with no leading digits
// reads as 0.
func ParseLeadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && unicode.IsDigit(rune(s[end])) {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Overflow: saturate in the direction of the sign.
		if s[0] == '-' {
			return -int(^uint(0) >> 1)
		}
		return int(^uint(0) >> 1)
	}
	return n
}

// Clamp limits n to [lo, hi].
func Clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// SplitList turns "Go, HTMX ,, SQL" into [Go HTMX SQL].
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinList is the inverse of SplitList for rendering a list into one input.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}

// ParseBool accepts the values an HTML checkbox or select can submit.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}
