package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Config represents the complete harness configuration
type Config struct {
	Decoder DecoderConfig `mapstructure:"decoder"`
	Scan    ScanConfig    `mapstructure:"scan"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DecoderConfig selects the varint form used by decode and scan
type DecoderConfig struct {
	Width int `mapstructure:"width"` // Longest encoding in bytes, 2..9 (default: 9)
}

// ScanConfig controls the scan command
type ScanConfig struct {
	Limit int `mapstructure:"limit"` // Maximum values printed, 0 for no limit
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // console or json
	Output string `mapstructure:"output"` // stderr, stdout or a file path
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Decoder.Width < 2 || c.Decoder.Width > 9 {
		return fmt.Errorf("invalid decoder width: %d (must be 2-9)", c.Decoder.Width)
	}
	if c.Scan.Limit < 0 {
		return fmt.Errorf("invalid scan limit: %d", c.Scan.Limit)
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging level %q: %w", c.Logging.Level, err)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid logging format: %s", c.Logging.Format)
	}
	return nil
}
