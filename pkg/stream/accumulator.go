package stream

import "strings"

// functionCall accumulates legacy function_call fragments for one stream.
// The name is last-write-wins; arguments are append-only.
type functionCall struct {
	name string
	args strings.Builder
}

// toolCall accumulates the fragments of a single tool call. ID and name
// are last-write-wins; arguments are append-only.
type toolCall struct {
	id   string
	name string
	args strings.Builder
}

// toolCallTable maps tool-call indices to their accumulators, preserving
// insertion order. Emission at finish time iterates in the order indices
// were first seen, not numeric index order.
type toolCallTable struct {
	order   []int
	entries map[int]*toolCall
}

func newToolCallTable() *toolCallTable {
	return &toolCallTable{entries: make(map[int]*toolCall)}
}

// at returns the accumulator for index, creating a default-empty entry on
// first sight.
func (t *toolCallTable) at(index int) *toolCall {
	if entry, ok := t.entries[index]; ok {
		return entry
	}
	entry := &toolCall{}
	t.entries[index] = entry
	t.order = append(t.order, index)
	return entry
}

// each visits every accumulated tool call in insertion order.
func (t *toolCallTable) each(fn func(tc *toolCall)) {
	for _, index := range t.order {
		fn(t.entries[index])
	}
}
