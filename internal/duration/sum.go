package duration

import (
	"math"
	"regexp"
	"strings"
)

// fullGroup matches one complete "Nh Nm Ns" duration. Lines holding several
// of them are split so each becomes its own record.
var fullGroup = regexp.MustCompile(`(?i)\d+h\s*\d+m\s*\d+s`)

// Example is the sample input offered by "load example".
const Example = "01h 30m 45s\n02h 15m 30s\n00h 45m 15s"

// Record is one parsed segment of a multi-line duration text.
type Record struct {
	Original  string `json:"original"`
	Formatted string `json:"formatted"`
	Seconds   int    `json:"seconds"`
}

// SumResult is the outcome of summing a multi-line duration text.
type SumResult struct {
	Records      []Record `json:"records"`
	TotalSeconds int      `json:"total_seconds"`
	Count        int      `json:"count"`
	Formatted    string   `json:"formatted"`
}

// AverageMinutes returns the mean record length in whole minutes, rounded
// to the nearest minute. It is 0 when there are no records.
func (r SumResult) AverageMinutes() int {
	if r.Count == 0 {
		return 0
	}
	return int(math.Round(float64(r.TotalSeconds) / float64(r.Count) / 60))
}

// Split breaks text into duration segments. Text is split on newlines and
// around every complete "Nh Nm Ns" group; segments are trimmed and kept only
// if they contain an h, m or s token.
func Split(text string) []string {
	var segments []string
	for _, line := range strings.Split(text, "\n") {
		for _, seg := range splitLine(line) {
			seg = strings.TrimSpace(seg)
			if seg != "" && HasToken(seg) {
				segments = append(segments, seg)
			}
		}
	}
	return segments
}

func splitLine(line string) []string {
	locs := fullGroup.FindAllStringIndex(line, -1)
	if len(locs) == 0 {
		return []string{line}
	}

	var out []string
	prev := 0
	for _, loc := range locs {
		if loc[0] > prev {
			out = append(out, line[prev:loc[0]])
		}
		out = append(out, line[loc[0]:loc[1]])
		prev = loc[1]
	}
	if prev < len(line) {
		out = append(out, line[prev:])
	}
	return out
}

// Sum parses every segment of text and totals them. Blank text yields a
// zero result formatted as "00h 00m 00s".
func Sum(text string) SumResult {
	result := SumResult{Records: []Record{}}
	if strings.TrimSpace(text) == "" {
		result.Formatted = FormatHMS(0)
		return result
	}

	for _, seg := range Split(text) {
		seconds := Parse(seg)
		result.TotalSeconds += seconds
		result.Records = append(result.Records, Record{
			Original:  seg,
			Formatted: FormatHMS(seconds),
			Seconds:   seconds,
		})
	}
	result.Count = len(result.Records)
	result.Formatted = FormatHMS(result.TotalSeconds)
	return result
}
