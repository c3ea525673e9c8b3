// Package sse provides the low-level primitives for consuming SSE
// (Server-Sent Events) byte streams: a chunk-fed line framer that is safe
// against arbitrary chunk boundaries, and per-line data-field extraction.
//
// This package intentionally does NOT provide SSE writer or server
// capabilities, and it does not interpret payloads — that is the job of
// the stream package.
//
// See the SSE specification:
// https://html.spec.whatwg.org/multipage/server-sent-events.html
package sse

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// LineFramer splits a stream of raw byte chunks into complete text lines.
//
// Chunks may be cut anywhere — mid-line, or even mid-way through a
// multi-byte UTF-8 sequence. The framer splits on raw bytes before any
// text decoding, so a rune whose bytes straddle two chunks stays intact
// in the carry buffer until its line completes. Decoding is best-effort:
// invalid byte sequences become U+FFFD and are never an error.
type LineFramer struct {
	// carry holds the bytes of the incomplete trailing line between pushes.
	carry []byte
}

// Push appends chunk to the carry buffer and returns all newly completed
// lines in arrival order. Line terminators are LF; a trailing CR is
// stripped. The final incomplete segment (possibly empty) is retained for
// the next Push or Flush.
func (f *LineFramer) Push(chunk []byte) []string {
	f.carry = append(f.carry, chunk...)

	var lines []string
	for {
		idx := bytes.IndexByte(f.carry, '\n')
		if idx < 0 {
			break
		}
		lines = append(lines, decodeLine(f.carry[:idx]))
		f.carry = f.carry[idx+1:]
	}

	return lines
}

// Flush returns whatever remains in the carry buffer as one final line and
// resets the framer. Callers decide whether a whitespace-only tail counts
// as a line.
func (f *LineFramer) Flush() string {
	if len(f.carry) == 0 {
		return ""
	}
	line := decodeLine(f.carry)
	f.carry = nil
	return line
}

// decodeLine converts raw line bytes to a string, replacing invalid UTF-8
// sequences with U+FFFD and stripping a trailing CR.
func decodeLine(raw []byte) string {
	line := strings.ToValidUTF8(string(raw), string(utf8.RuneError))
	return strings.TrimSuffix(line, "\r")
}
