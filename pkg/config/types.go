package config

import (
	"fmt"
	"strconv"
)

// Config represents the persistent chatstream configuration stored as
// config.toml in the .chatstream/ directory. The TOML layout uses sections
// for logical grouping.
type Config struct {
	Version int          `toml:"version"`
	Log     LogConfig    `toml:"log"`
	Decode  DecodeConfig `toml:"decode"`
}

// LogConfig holds logging settings shared by all commands.
type LogConfig struct {
	Debug  bool   `toml:"debug,omitempty"`
	Format string `toml:"format,omitempty"` // "text", "json", or "pretty"
}

// DecodeConfig holds settings for the decode command.
type DecodeConfig struct {
	// Format selects the event output format: "text" or "json".
	Format string `toml:"format,omitempty"`

	// BufferSize is the read buffer size in bytes used against the
	// byte source.
	BufferSize uint `toml:"buffer_size,omitempty"`
}

// configKeyInfo maps a user-facing dotted key name to a getter and setter on *Config.
type configKeyInfo struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

// configKeys is the authoritative map of all supported config keys.
// Keys use dotted notation matching the TOML section structure.
var configKeys = map[string]configKeyInfo{
	"log.debug": {
		get: func(c *Config) string { return strconv.FormatBool(c.Log.Debug) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("log.debug must be true or false: %w", err)
			}
			c.Log.Debug = b
			return nil
		},
	},
	"log.format": {
		get: func(c *Config) string { return c.Log.Format },
		set: func(c *Config, v string) error {
			switch v {
			case "text", "json", "pretty":
				c.Log.Format = v
				return nil
			default:
				return fmt.Errorf("unknown log format %q (available: text, json, pretty)", v)
			}
		},
	},
	"decode.format": {
		get: func(c *Config) string { return c.Decode.Format },
		set: func(c *Config, v string) error {
			switch v {
			case "text", "json":
				c.Decode.Format = v
				return nil
			default:
				return fmt.Errorf("unknown decode format %q (available: text, json)", v)
			}
		},
	},
	"decode.buffer_size": {
		get: func(c *Config) string { return strconv.FormatUint(uint64(c.Decode.BufferSize), 10) },
		set: func(c *Config, v string) error {
			n, err := strconv.ParseUint(v, 10, 32)
			if err != nil || n == 0 {
				return fmt.Errorf("decode.buffer_size must be a positive integer")
			}
			c.Decode.BufferSize = uint(n)
			return nil
		},
	},
}
