// Package config loads runtime configuration for the SecureVault CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-i int      online status check interval (seconds)
//	-t int      request timeout (seconds)
//	-k int      clipboard clear delay (seconds, 0 disables)
//	-l string   stderr log level: debug, info, warn (default) or error
//
// # File schema
//
// Intervals use timex.Duration, so values can be either strings like "3s"
// or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "request_timeout": "10s",
//	  "clipboard_clear_delay": "30s",
//	  "log_level": "warn"
//	}
//
// Files ending in .yaml or .yml are decoded as YAML with the same keys.
package config
