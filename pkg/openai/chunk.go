// Package openai defines the wire shape of OpenAI-style chat-completion
// streaming chunks — the JSON object carried by one SSE data line.
//
// All fields are optional on the wire; absent fields decode to zero values
// and are skipped by consumers rather than treated as errors.
package openai

// Chunk is one decoded streaming chunk ("chat.completion.chunk" object).
type Chunk struct {
	ID      string   `json:"id,omitempty"`
	Object  string   `json:"object,omitempty"`
	Created int64    `json:"created,omitempty"`
	Model   string   `json:"model,omitempty"`
	Choices []Choice `json:"choices"`

	// Usage is typically only present on the final chunk, and only when
	// the request sets stream_options.include_usage.
	Usage *Usage `json:"usage,omitempty"`
}

// Choice is one parallel completion within a chunk.
type Choice struct {
	Index        int    `json:"index"`
	Delta        Delta  `json:"delta"`
	FinishReason string `json:"finish_reason,omitempty"`
}

// Delta is the incremental portion of a choice contributed by one chunk.
type Delta struct {
	Role         string             `json:"role,omitempty"`
	Content      string             `json:"content,omitempty"`
	FunctionCall *FunctionCallDelta `json:"function_call,omitempty"`
	ToolCalls    []ToolCallDelta    `json:"tool_calls,omitempty"`
}

// FunctionCallDelta is a fragment of a legacy function call. Name arrives
// on the first fragment; Arguments accrete across fragments.
type FunctionCallDelta struct {
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments,omitempty"`
}

// ToolCallDelta is a fragment of one tool call, keyed by Index. ID, Type,
// and Function.Name arrive on the first fragment for an index;
// Function.Arguments accrete across fragments.
type ToolCallDelta struct {
	Index    int            `json:"index"`
	ID       string         `json:"id,omitempty"`
	Type     string         `json:"type,omitempty"`
	Function *FunctionDelta `json:"function,omitempty"`
}

// FunctionDelta is the function portion of a tool-call fragment.
type FunctionDelta struct {
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments,omitempty"`
}

// Usage contains token counts reported by the provider.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Finish reasons reported on a choice.
const (
	FinishReasonStop         = "stop"
	FinishReasonLength       = "length"
	FinishReasonFunctionCall = "function_call"
	FinishReasonToolCalls    = "tool_calls"
)
