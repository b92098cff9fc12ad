package config

import (
	"strings"

	"github.com/spf13/pflag"
)

var envKeyReplacer = strings.NewReplacer(".", "_")

// flagKeys maps flag names registered by RegisterFlags to config keys.
var flagKeys = map[string]string{
	"width":      "decoder.width",
	"limit":      "scan.limit",
	"log-level":  "logging.level",
	"log-format": "logging.format",
	"log-output": "logging.output",
}

// RegisterFlags adds the harness flags to fs. Defaults match DefaultConfig.
func RegisterFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()
	fs.String("config", "", "path to a config file")
	fs.Int("width", d.Decoder.Width, "longest varint encoding in bytes (2-9)")
	fs.Int("limit", d.Scan.Limit, "maximum values printed by scan (0 = no limit)")
	fs.String("log-level", d.Logging.Level, "log level (debug, info, warn, error)")
	fs.String("log-format", d.Logging.Format, "log format (console, json)")
	fs.String("log-output", d.Logging.Output, "log output (stderr, stdout or file path)")
}
