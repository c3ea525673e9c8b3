package stream

import "strings"

// Collect drains the decoder and returns the concatenation of all content
// events. Function-call and tool-call events are skipped. If the stream
// ends in an error event, Collect returns the content gathered so far
// along with that error.
func Collect(d *Decoder) (string, error) {
	var text strings.Builder

	for ev := d.Next(); ev != nil; ev = d.Next() {
		switch ev.Type {
		case EventContent:
			text.WriteString(ev.Content)
		case EventError:
			return text.String(), ev.Err
		}
	}

	return text.String(), nil
}
