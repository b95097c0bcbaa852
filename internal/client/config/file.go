package config

import (
	"github.com/dmitrijs2005/securevault/internal/flagx"
	"github.com/dmitrijs2005/securevault/internal/timex"
)

// FileConfig is the DTO used for reading JSON or YAML configuration files.
// Intervals use timex.Duration, so both "3s" and integer nanoseconds are
// accepted. Empty fields leave the current Config value untouched.
type FileConfig struct {
	ServerEndpointAddr  string          `json:"server_endpoint_addr" yaml:"server_endpoint_addr"`
	OnlineCheckInterval timex.Duration  `json:"online_check_interval" yaml:"online_check_interval"`
	RequestTimeout      timex.Duration  `json:"request_timeout" yaml:"request_timeout"`
	ClipboardClearDelay *timex.Duration `json:"clipboard_clear_delay" yaml:"clipboard_clear_delay"`
	LogLevel            string          `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with values from the file named by -c/-config.
// It panics if the file cannot be read or decoded; with no flag it is a no-op.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	var fc FileConfig
	if err := flagx.DecodeConfigFile(path, &fc); err != nil {
		panic(err)
	}

	if fc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = fc.ServerEndpointAddr
	}
	if fc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.ClipboardClearDelay != nil {
		cfg.ClipboardClearDelay = fc.ClipboardClearDelay.Duration
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
}
