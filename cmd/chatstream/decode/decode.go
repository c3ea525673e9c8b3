// Package decodecmder provides the decode command for turning raw SSE
// transcripts into typed stream events.
package decodecmder

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/quarterbyte/chatstream/pkg/cliui"
	"github.com/quarterbyte/chatstream/pkg/config"
	"github.com/quarterbyte/chatstream/pkg/logger"
	"github.com/quarterbyte/chatstream/pkg/openai"
	"github.com/quarterbyte/chatstream/pkg/stream"
	"github.com/quarterbyte/chatstream/pkg/utils"
)

type decodeCommander struct {
	format     string
	bufferSize uint
	logFormat  string
	debug      bool

	logger *slog.Logger
	out    io.Writer
}

const decodeLongDesc string = `Decode a chat-completion SSE transcript into typed events.

Reads server-sent-events from the given file (or stdin when no file is
given), reassembles content deltas, function calls, and tool calls, and
prints one event per line.

Output formats:
  text    Human-readable, one labeled line per event (default)
  json    One JSON object per event, suitable for piping

Examples:
  chatstream decode transcript.sse
  curl -sN https://api.example.com/v1/chat/completions ... | chatstream decode
  chatstream decode --format json transcript.sse | jq .type`

const decodeShortDesc string = "Decode an SSE transcript into stream events"

func NewDecodeCmd() *cobra.Command {
	cmder := &decodeCommander{out: os.Stdout}

	fs := config.DefaultFlagSet()

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: decodeShortDesc,
		Long:  decodeLongDesc,
		Args:  cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")
			v, err := config.InitViper(configDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			// Flags beat env vars beat config file beat defaults.
			config.BindRegisteredFlags(v, cmd, fs, []string{
				config.FlagDecodeFormat,
				config.FlagBufferSize,
				config.FlagLogFormat,
			})

			cmder.format = v.GetString("decode.format")
			cmder.bufferSize = v.GetUint("decode.buffer_size")
			cmder.logFormat = v.GetString("log.format")

			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %w", err)
			}
			if !cmd.Flags().Changed("debug") {
				cmder.debug = v.GetBool("log.debug")
			}

			switch cmder.format {
			case "text", "json":
			default:
				return fmt.Errorf("unknown decode format %q (available: text, json)", cmder.format)
			}

			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return cmder.run(args)
		},
	}

	config.AddStringFlag(cmd, fs, config.FlagDecodeFormat, &cmder.format)
	config.AddUintFlag(cmd, fs, config.FlagBufferSize, &cmder.bufferSize)
	config.AddStringFlag(cmd, fs, config.FlagLogFormat, &cmder.logFormat)

	return cmd
}

func (c *decodeCommander) run(args []string) error {
	c.logger = logger.New(
		logger.WithDebug(c.debug),
		logger.WithPretty(c.logFormat == "pretty"),
		logger.WithJSON(c.logFormat == "json"),
		logger.WithWriter(os.Stderr),
	)

	src, name, err := openSource(args)
	if err != nil {
		return err
	}

	c.logger.Debug("decoding stream", "source", name, "format", c.format)

	d := stream.New(src,
		stream.WithLogger(c.logger),
		stream.WithReadBufferSize(int(c.bufferSize)),
	)
	defer d.Close()

	for ev := d.Next(); ev != nil; ev = d.Next() {
		if err := c.printEvent(ev); err != nil {
			return err
		}
		if ev.Type == stream.EventError {
			return ev.Err
		}
	}

	return nil
}

// openSource returns the transcript reader: the named file when an argument
// was given, stdin otherwise.
func openSource(args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 {
		return os.Stdin, "stdin", nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("opening transcript: %w", err)
	}
	return f, args[0], nil
}

func (c *decodeCommander) printEvent(ev *stream.Event) error {
	if c.format == "json" {
		return c.printJSON(ev)
	}
	c.printText(ev)
	return nil
}

// jsonEvent is the wire shape for --format json output. Errors are flattened
// to strings since error values do not marshal.
type jsonEvent struct {
	Type      stream.EventType `json:"type"`
	Content   string           `json:"content,omitempty"`
	ID        string           `json:"id,omitempty"`
	Name      string           `json:"name,omitempty"`
	Arguments string           `json:"arguments,omitempty"`
	Usage     *openai.Usage    `json:"usage,omitempty"`
	Error     string           `json:"error,omitempty"`
}

func (c *decodeCommander) printJSON(ev *stream.Event) error {
	je := jsonEvent{
		Type:      ev.Type,
		Content:   ev.Content,
		ID:        ev.ID,
		Name:      ev.Name,
		Arguments: ev.Arguments,
		Usage:     ev.Usage,
	}
	if ev.Err != nil {
		je.Error = ev.Err.Error()
	}

	enc := json.NewEncoder(c.out)
	return enc.Encode(je)
}

func (c *decodeCommander) printText(ev *stream.Event) {
	switch ev.Type {
	case stream.EventContent:
		fmt.Fprintf(c.out, "%s %q\n", cliui.ContentLabel, ev.Content)

	case stream.EventFunctionCall:
		fmt.Fprintf(c.out, "%s %s(%s)\n",
			cliui.FunctionLabel,
			cliui.KeyStyle.Render(ev.Name),
			utils.Truncate(ev.Arguments, 120),
		)

	case stream.EventToolCall:
		fmt.Fprintf(c.out, "%s %s %s(%s)\n",
			cliui.ToolLabel,
			cliui.DimStyle.Render(ev.ID),
			cliui.KeyStyle.Render(ev.Name),
			utils.Truncate(ev.Arguments, 120),
		)

	case stream.EventDone:
		if ev.Usage != nil {
			fmt.Fprintf(c.out, "%s %s\n",
				cliui.DoneLabel,
				cliui.DimStyle.Render(fmt.Sprintf("(prompt=%d completion=%d total=%d)",
					ev.Usage.PromptTokens, ev.Usage.CompletionTokens, ev.Usage.TotalTokens)),
			)
		} else {
			fmt.Fprintf(c.out, "%s\n", cliui.DoneLabel)
		}

	case stream.EventError:
		fmt.Fprintf(c.out, "%s %v\n", cliui.ErrorLabel, ev.Err)
	}
}
