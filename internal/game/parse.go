package game

import (
	"math"
	"strings"
	"unicode"
)

// ParseGuess extracts the leading integer from s.
//
// Rules (same as a browser's parseInt without a radix):
//   - leading whitespace is skipped
//   - an optional '+' or '-' sign
//   - an optional "0x"/"0X" prefix switches to base 16
//   - the longest run of digits that follows is used, the rest is ignored
//
// ok is false when no digit follows. Values that do not fit in an int
// saturate at math.MaxInt / math.MinInt.
func ParseGuess(s string) (n int, ok bool) {
	s = strings.TrimLeftFunc(s, isJSSpace)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	// Accumulate as a negative number so math.MinInt is reachable.
	var acc int
	saturated := false
	digits := 0
	for i := 0; i < len(s); i++ {
		d := digitVal(s[i])
		if d < 0 || d >= base {
			break
		}
		digits++
		if saturated {
			continue
		}
		if acc < (math.MinInt+d)/base {
			saturated = true
			continue
		}
		acc = acc*base - d
	}
	if digits == 0 {
		return 0, false
	}

	switch {
	case saturated && neg:
		return math.MinInt, true
	case saturated:
		return math.MaxInt, true
	case neg:
		return acc, true
	case acc == math.MinInt:
		return math.MaxInt, true
	default:
		return -acc, true
	}
}

// digitVal maps an ASCII hex digit to its value, or -1.
func digitVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// isJSSpace reports whitespace as trimmed by parseInt: the BOM counts, NEL does not.
func isJSSpace(r rune) bool {
	return (unicode.IsSpace(r) && r != '\u0085') || r == '\uFEFF'
}
