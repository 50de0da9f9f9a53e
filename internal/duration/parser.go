// Package duration parses free-text durations into seconds and formats
// second counts back into the hour/minute/second notations used across tally.
package duration

import (
	"regexp"
	"strconv"
	"strings"
)

// MaxValue is the largest number accepted for a single h, m or s value.
// Larger numbers are treated as malformed so second counts cannot overflow.
const MaxValue = 1_000_000_000

var (
	hoursToken   = regexp.MustCompile(`(?i)(\d+)h`)
	minutesToken = regexp.MustCompile(`(?i)(\d+)m`)
	secondsToken = regexp.MustCompile(`(?i)(\d+)s`)

	// anyToken reports whether a string carries at least one h/m/s token.
	anyToken = regexp.MustCompile(`(?i)\d+[hms]`)
)

// Parse converts a duration string such as "01h 30m 45s", "2h", "45m 30s"
// or "30s 1h" into seconds. Each of the h, m and s tokens is optional and may
// appear in any order; only the first occurrence of each unit counts.
// Missing or malformed tokens, including values above MaxValue, contribute
// zero, so Parse never fails and never goes negative:
// Parse("") == 0 and Parse("nonsense") == 0.
func Parse(input string) int {
	return tokenValue(hoursToken, input)*3600 +
		tokenValue(minutesToken, input)*60 +
		tokenValue(secondsToken, input)
}

// HasToken reports whether input contains at least one h, m or s token.
func HasToken(input string) bool {
	return anyToken.MatchString(input)
}

// ParseLoose is the forgiving parser used for untracked-time fields and CLI
// day values. Besides the token forms understood by Parse it accepts
// "hh:mm:ss", "hh:mm" and a bare number, which is read as minutes.
// When the input carries h/m/s tokens the token sum wins.
// Blank or unreadable input yields 0 and the result is never negative.
func ParseLoose(input string) int {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0
	}

	var total int
	if HasToken(s) {
		total = Parse(s)
	} else {
		total = parseClock(s)
	}

	if total < 0 {
		return 0
	}
	return total
}

// parseClock handles the colon and single-value forms of ParseLoose.
func parseClock(s string) int {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 3:
		return leadingInt(parts[0])*3600 + leadingInt(parts[1])*60 + leadingInt(parts[2])
	case 2:
		return leadingInt(parts[0])*3600 + leadingInt(parts[1])*60
	case 1:
		lower := strings.ToLower(s)
		body := s[:len(s)-1]
		switch {
		case strings.HasSuffix(lower, "s"):
			return leadingInt(body)
		case strings.HasSuffix(lower, "m"):
			return leadingInt(body) * 60
		case strings.HasSuffix(lower, "h"):
			return leadingInt(body) * 3600
		}
		return leadingInt(s) * 60
	}
	return 0
}

func tokenValue(pattern *regexp.Regexp, input string) int {
	m := pattern.FindStringSubmatch(input)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n > MaxValue {
		return 0
	}
	return n
}

// leadingInt reads an optionally signed integer prefix of s, ignoring leading
// whitespace and anything after the digits. "12abc" is 12, "abc" is 0.
func leadingInt(s string) int {
	s = strings.TrimLeft(s, " \t\r\n")
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n > MaxValue || n < -MaxValue {
		return 0
	}
	return n
}
