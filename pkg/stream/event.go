// Package stream decodes an OpenAI-style chat-completion SSE byte stream
// into a discrete, ordered sequence of typed events: incremental content,
// fully-accumulated legacy function calls and tool calls, and a terminal
// done or error event.
//
// The Decoder is the accumulation state machine; the sse package handles
// line framing and the openai package defines the chunk wire shape.
package stream

import "github.com/quarterbyte/chatstream/pkg/openai"

// EventType discriminates the variants of Event.
type EventType string

const (
	// EventContent carries one increment of assistant text.
	EventContent EventType = "content"

	// EventFunctionCall carries a legacy function call, fully accumulated.
	EventFunctionCall EventType = "function_call"

	// EventToolCall carries one tool call, fully accumulated, emitted once
	// per index when the tool-calls finish reason is seen.
	EventToolCall EventType = "tool_call"

	// EventDone is the terminal event of a successfully decoded stream.
	EventDone EventType = "done"

	// EventError is the terminal event of a stream that failed at the
	// source level. No done event follows it.
	EventError EventType = "error"
)

// Event is one decoded stream event. Type selects which fields are set:
//
//	content       → Content
//	function_call → Name, Arguments
//	tool_call     → ID, Name, Arguments
//	done          → Usage (nil when the stream never reported usage)
//	error         → Err
type Event struct {
	Type EventType

	Content   string
	ID        string
	Name      string
	Arguments string
	Usage     *openai.Usage
	Err       error
}
