package stream

import "github.com/quarterbyte/chatstream/pkg/openai"

// Handler adapts the event sequence into named callbacks. Nil callbacks
// are skipped; events are dispatched synchronously in arrival order.
type Handler struct {
	OnContent      func(content string)
	OnFunctionCall func(name, arguments string)
	OnToolCall     func(id, name, arguments string)
	OnDone         func(usage *openai.Usage)
	OnError        func(err error)
}

// Dispatch drains the decoder, invoking the matching callback for each
// event. It returns the terminal error when the stream ends in an error
// event, nil otherwise.
func Dispatch(d *Decoder, h Handler) error {
	for ev := d.Next(); ev != nil; ev = d.Next() {
		switch ev.Type {
		case EventContent:
			if h.OnContent != nil {
				h.OnContent(ev.Content)
			}
		case EventFunctionCall:
			if h.OnFunctionCall != nil {
				h.OnFunctionCall(ev.Name, ev.Arguments)
			}
		case EventToolCall:
			if h.OnToolCall != nil {
				h.OnToolCall(ev.ID, ev.Name, ev.Arguments)
			}
		case EventDone:
			if h.OnDone != nil {
				h.OnDone(ev.Usage)
			}
		case EventError:
			if h.OnError != nil {
				h.OnError(ev.Err)
			}
			return ev.Err
		}
	}
	return nil
}
