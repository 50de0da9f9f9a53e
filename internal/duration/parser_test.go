package duration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"full padded", "01h 30m 45s", 5445},
		{"empty", "", 0},
		{"hours only", "2h", 7200},
		{"minutes and seconds", "45m 30s", 2730},
		{"hours and minutes", "1h 30m", 5400},
		{"no spaces", "1h30m45s", 5445},
		{"reversed order", "30s 1h", 3630},
		{"upper case", "1H 2M 3S", 3723},
		{"surrounding text", "task took 3m today", 180},
		{"no tokens", "nonsense", 0},
		{"bare number", "90", 0},
		{"overflowing digits", "99999999999999999999999h", 0},
		{"hours too large to convert", "3000000000000000h", 0},
		{"largest accepted hours", "1000000000h", 3_600_000_000_000},
		{"huge value does not hide other units", "3000000000000000h 5m", 300},
		{"first token wins", "1h 2h", 3600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.input))
		})
	}
}

func TestHasToken(t *testing.T) {
	assert.True(t, HasToken("1h"))
	assert.True(t, HasToken("x 5s y"))
	assert.False(t, HasToken("h m s"))
	assert.False(t, HasToken(""))
}

func TestParseLoose(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"blank", "   ", 0},
		{"hh:mm", "1:30", 5400},
		{"hh:mm:ss", "1:30:15", 5415},
		{"bare minutes", "45", 2700},
		{"seconds token", "30s", 30},
		{"combined tokens", "1h2m", 3720},
		{"spaced minute suffix", "5 m", 300},
		{"spaced hour suffix", "2 h", 7200},
		{"negative clamps", "-5", 0},
		{"garbage clock", "a:b", 0},
		{"huge clock hours", "3000000000000000:00", 0},
		{"huge bare minutes", "3000000000000000000", 0},
		{"too many colons", "1:2:3:4", 0},
		{"text", "abc", 0},
		{"trailing garbage", "12abc", 720},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLoose(tt.input))
		})
	}
}

func TestLeadingInt(t *testing.T) {
	assert.Equal(t, 12, leadingInt("  12abc"))
	assert.Equal(t, -3, leadingInt("-3"))
	assert.Equal(t, 0, leadingInt("-"))
	assert.Equal(t, 0, leadingInt(""))
}
