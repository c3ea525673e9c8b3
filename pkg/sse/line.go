package sse

import "strings"

// DoneSentinel is the literal data payload OpenAI-style streams send to
// mark the end of a completion stream ("data: [DONE]").
const DoneSentinel = "[DONE]"

// Data extracts the payload of an SSE data line.
//
// It reports ok == false for blank or whitespace-only lines, comment lines
// (":" prefix), and lines carrying any field other than "data" — those
// lines contain no payload for chunk decoding. Per the SSE spec, a single
// leading space after the colon is stripped from the value if present.
func Data(line string) (payload string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, ":") {
		return "", false
	}

	field, value, found := strings.Cut(trimmed, ":")
	if !found || field != "data" {
		return "", false
	}

	return strings.TrimPrefix(value, " "), true
}
