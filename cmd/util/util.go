package util

import (
	"strings"

	"github.com/himanchali/kvwire/common"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupClientFlags adds the common connection flags to a command
func SetupClientFlags(cmd *cobra.Command) {
	key := "endpoint"
	cmd.PersistentFlags().String(key, "localhost:3000", WrapString("The host:port address of the key-value server"))

	key = "connect-timeout"
	cmd.PersistentFlags().Int(key, 0, WrapString("The connect timeout in milliseconds. 0 still bounds the connect attempt with an internal default"))

	key = "timeout"
	cmd.PersistentFlags().Int(key, 0, WrapString("The read/write deadline in milliseconds for operations on the connection (0 = none)"))

	key = "max-idle"
	cmd.PersistentFlags().Int(key, common.DefaultMaxIdleSeconds, WrapString("The idle window in seconds after which an unused connection is discarded instead of reused"))

	key = "write-buffer"
	cmd.PersistentFlags().Int(key, 0, WrapString("The socket write buffer size in KB (0 = OS default)"))

	key = "read-buffer"
	cmd.PersistentFlags().Int(key, 0, WrapString("The socket read buffer size in KB (0 = OS default)"))

	key = "tcp-keepalive"
	cmd.PersistentFlags().Int(key, 0, WrapString("The TCP keepalive interval in seconds (0 = disabled)"))

	key = "log-level"
	cmd.PersistentFlags().String(key, "info", WrapString("The log level (debug, info, warn, error)"))
}

// InitClientConfig initializes configuration from environment variables
func InitClientConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("kvwire")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// GetClientConfig reads the client configuration from viper
func GetClientConfig() common.ClientConfig {
	conf := common.DefaultClientConfig()
	conf.Endpoint = viper.GetString("endpoint")
	conf.ConnectTimeoutMillis = viper.GetInt("connect-timeout")
	conf.TimeoutMillis = viper.GetInt("timeout")
	conf.MaxIdleSeconds = viper.GetInt("max-idle")
	conf.SocketConf = common.SocketConf{
		WriteBufferSize: viper.GetInt("write-buffer") * 1024,
		ReadBufferSize:  viper.GetInt("read-buffer") * 1024,
	}
	conf.TCPConf.TCPKeepAliveSec = viper.GetInt("tcp-keepalive")
	conf.LogLevel = viper.GetString("log-level")

	return conf
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}
