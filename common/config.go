package common

import (
	"fmt"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Defaults
// --------------------------------------------------------------------------

const (
	// DefaultMaxIdleSeconds is the default idle window after which an unused
	// connection is no longer considered valid for reuse.
	DefaultMaxIdleSeconds = 14

	// DefaultConnectTimeoutMillis bounds a connect attempt when the caller
	// requests no timeout. A caller asking for "no timeout" must not be
	// allowed to block its thread indefinitely - retry logic above the
	// transport layer is expected to re-attempt.
	DefaultConnectTimeoutMillis = 2000
)

// --------------------------------------------------------------------------
// Client configuration structs
// --------------------------------------------------------------------------

// SocketConf holds generic socket buffer settings
type SocketConf struct {
	WriteBufferSize int // Socket write buffer size in bytes (0 = OS default)
	ReadBufferSize  int // Socket read buffer size in bytes (0 = OS default)
}

// TCPConf holds TCP specific settings
type TCPConf struct {
	TCPNoDelay      bool // Whether to disable Nagle's algorithm
	TCPKeepAliveSec int  // Keep-alive interval in seconds (0 = disabled)
}

// ClientConfig holds all configuration parameters for the transport core.
type ClientConfig struct {
	// Endpoint is the target address in host:port form
	Endpoint string

	// ConnectTimeoutMillis bounds the connect attempt. Values <= 0 are
	// substituted with DefaultConnectTimeoutMillis (see there).
	ConnectTimeoutMillis int

	// TimeoutMillis is the per-operation read/write deadline (0 = none)
	TimeoutMillis int

	// MaxIdleSeconds is the idle window for connection validity
	// (0 = DefaultMaxIdleSeconds)
	MaxIdleSeconds int

	// Socket tuning
	SocketConf SocketConf
	TCPConf    TCPConf

	// Logging configuration
	LogLevel string
}

// DefaultClientConfig returns a ClientConfig with the documented defaults
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		ConnectTimeoutMillis: DefaultConnectTimeoutMillis,
		MaxIdleSeconds:       DefaultMaxIdleSeconds,
		TCPConf: TCPConf{
			TCPNoDelay: true,
		},
		LogLevel: "info",
	}
}

// String returns a formatted string representation of the configuration
func (c *ClientConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	// General client settings
	addSection("Client Configuration")
	addField("Endpoint", c.Endpoint)
	addField("Connect Timeout", fmt.Sprintf("%d ms", c.ConnectTimeoutMillis))
	addField("Operation Timeout", fmt.Sprintf("%d ms", c.TimeoutMillis))
	addField("Max Socket Idle", fmt.Sprintf("%d sec", c.MaxIdleSeconds))

	// Socket settings
	addSection("Socket")
	addField("Write Buffer", strconv.Itoa(c.SocketConf.WriteBufferSize))
	addField("Read Buffer", strconv.Itoa(c.SocketConf.ReadBufferSize))
	addField("TCP NoDelay", fmt.Sprintf("%t", c.TCPConf.TCPNoDelay))
	addField("TCP KeepAlive", fmt.Sprintf("%d sec", c.TCPConf.TCPKeepAliveSec))

	// Logging configuration
	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}
