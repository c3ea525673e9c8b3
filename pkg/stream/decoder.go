package stream

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/quarterbyte/chatstream/pkg/logger"
	"github.com/quarterbyte/chatstream/pkg/openai"
	"github.com/quarterbyte/chatstream/pkg/sse"
)

const defaultReadBufferSize = 32 * 1024

// Option configures a Decoder created with New.
type Option func(*Decoder)

// WithLogger sets the logger used for debug output (dropped lines, stream
// lifecycle). Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(d *Decoder) {
		if log != nil {
			d.log = log
		}
	}
}

// WithReadBufferSize overrides the size of the buffer used for reads from
// the byte source.
func WithReadBufferSize(size int) Option {
	return func(d *Decoder) {
		if size > 0 {
			d.readBuf = make([]byte, size)
		}
	}
}

// Decoder turns a chat-completion SSE byte stream into an ordered event
// sequence. Each Decoder owns its accumulation state and its source for the
// duration of one stream; it is not safe for concurrent use.
//
// The source is closed exactly once on every exit path: normal completion,
// read failure, or early abandonment via Close.
type Decoder struct {
	src io.ReadCloser
	log *slog.Logger

	framer  sse.LineFramer
	readBuf []byte

	// pending holds events decoded from the most recent reads but not yet
	// returned by Next.
	pending []Event

	usage *openai.Usage
	fn    functionCall
	tools *toolCallTable

	closeOnce sync.Once
	closeErr  error
	finished  bool
}

// New creates a Decoder over src. A nil src yields a single error event
// carrying ErrNoStream.
func New(src io.ReadCloser, opts ...Option) *Decoder {
	d := &Decoder{
		src:   src,
		log:   logger.Nop(),
		tools: newToolCallTable(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.readBuf == nil {
		d.readBuf = make([]byte, defaultReadBufferSize)
	}
	return d
}

// Next returns the next decoded event, blocking on the source as needed.
// It returns nil once the terminal event (done or error) has been
// delivered, and forever after.
func (d *Decoder) Next() *Event {
	for {
		if len(d.pending) > 0 {
			ev := d.pending[0]
			d.pending = d.pending[1:]
			if ev.Type == EventDone || ev.Type == EventError {
				d.finished = true
			}
			return &ev
		}

		if d.finished {
			return nil
		}

		if d.src == nil {
			d.pending = append(d.pending, Event{Type: EventError, Err: ErrNoStream})
			continue
		}

		d.fill()
	}
}

// Close releases the byte source and exhausts the decoder. It is the
// abandonment path for consumers that stop before the terminal event;
// calling it after normal completion is a no-op returning the original
// close error.
func (d *Decoder) Close() error {
	d.finished = true
	d.pending = nil
	return d.release()
}

// fill performs one read against the source, frames the bytes into lines,
// and queues any resulting events. On end-of-source it queues the terminal
// done event; on a read failure it queues the terminal error event. Both
// terminal paths release the source.
func (d *Decoder) fill() {
	n, err := d.src.Read(d.readBuf)
	if n > 0 {
		for _, line := range d.framer.Push(d.readBuf[:n]) {
			d.processLine(line)
		}
	}

	switch {
	case err == nil:

	case errors.Is(err, io.EOF):
		if tail := d.framer.Flush(); strings.TrimSpace(tail) != "" {
			d.processLine(tail)
		}
		d.pending = append(d.pending, Event{Type: EventDone, Usage: d.usage})
		d.release()

	default:
		d.pending = append(d.pending, Event{Type: EventError, Err: fmt.Errorf("reading stream: %w", err)})
		d.release()
	}
}

// release closes the source exactly once.
func (d *Decoder) release() error {
	if d.src == nil {
		return nil
	}
	d.closeOnce.Do(func() {
		d.closeErr = d.src.Close()
	})
	return d.closeErr
}

// processLine decodes one framed line. Lines without a data payload are
// ignored; the [DONE] sentinel becomes a synthetic finish chunk; malformed
// JSON payloads are dropped without aborting the stream.
func (d *Decoder) processLine(line string) {
	payload, ok := sse.Data(line)
	if !ok {
		return
	}

	if payload == sse.DoneSentinel {
		d.apply(&openai.Chunk{
			Choices: []openai.Choice{{FinishReason: openai.FinishReasonStop}}},
		)
		return
	}

	var chunk openai.Chunk
	if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
		d.log.Debug("dropping malformed data line", "error", err)
		return
	}

	d.apply(&chunk)
}

// apply updates accumulator state from one chunk and queues the events it
// produces, preserving per-choice arrival order.
func (d *Decoder) apply(chunk *openai.Chunk) {
	if chunk.Usage != nil {
		d.usage = chunk.Usage
	}

	for _, choice := range chunk.Choices {
		if choice.Delta.Content != "" {
			d.pending = append(d.pending, Event{Type: EventContent, Content: choice.Delta.Content})
		}

		if fc := choice.Delta.FunctionCall; fc != nil {
			if fc.Name != "" {
				d.fn.name = fc.Name
			}
			d.fn.args.WriteString(fc.Arguments)
		}

		for _, tc := range choice.Delta.ToolCalls {
			entry := d.tools.at(tc.Index)
			if tc.ID != "" {
				entry.id = tc.ID
			}
			if tc.Function != nil {
				if tc.Function.Name != "" {
					entry.name = tc.Function.Name
				}
				entry.args.WriteString(tc.Function.Arguments)
			}
		}

		// Finish-triggered emissions fire for every choice that repeats a
		// finish reason; accumulated calls are deliberately not
		// deduplicated across repeats.
		switch choice.FinishReason {
		case openai.FinishReasonFunctionCall:
			if d.fn.name != "" {
				d.pending = append(d.pending, Event{
					Type:      EventFunctionCall,
					Name:      d.fn.name,
					Arguments: d.fn.args.String(),
				})
			}

		case openai.FinishReasonToolCalls:
			d.tools.each(func(tc *toolCall) {
				d.pending = append(d.pending, Event{
					Type:      EventToolCall,
					ID:        tc.id,
					Name:      tc.name,
					Arguments: tc.args.String(),
				})
			})
		}
	}
}
