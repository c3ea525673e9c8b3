package config

const (
	defaultLogFormat    = "pretty"
	defaultDecodeFormat = "text"
	defaultBufferSize   = 32 * 1024
)

// NewDefaultConfig returns a fully-populated Config with default values.
// It is the single source of truth for defaults across the TOML file,
// viper keys, and CLI flags.
func NewDefaultConfig() *Config {
	return &Config{
		Version: CurrentV,
		Log: LogConfig{
			Debug:  false,
			Format: defaultLogFormat,
		},
		Decode: DecodeConfig{
			Format:     defaultDecodeFormat,
			BufferSize: defaultBufferSize,
		},
	}
}
