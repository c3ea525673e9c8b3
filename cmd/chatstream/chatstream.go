// Package chatstreamcmder
package chatstreamcmder

import (
	"github.com/spf13/cobra"

	configcmder "github.com/quarterbyte/chatstream/cmd/chatstream/config"
	decodecmder "github.com/quarterbyte/chatstream/cmd/chatstream/decode"
	versioncmder "github.com/quarterbyte/chatstream/cmd/version"
)

const chatstreamLongDesc string = `Chatstream decodes chat-completion SSE streams into typed events.

Feed it a raw server-sent-events transcript and it emits content deltas,
assembled function calls, assembled tool calls, and a final usage summary:
  chatstream decode transcript.sse    Decode a captured stream
  cat stream.sse | chatstream decode  Decode from stdin`

const chatstreamShortDesc string = "Chatstream - SSE chat stream decoder"

func NewChatstreamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chatstream",
		Short: chatstreamShortDesc,
		Long:  chatstreamLongDesc,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("config-dir", "", "Override path to .chatstream/ config directory")

	// Add subcommands
	cmd.AddCommand(decodecmder.NewDecodeCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}
