package check

import (
	"fmt"
	"time"

	"github.com/himanchali/kvwire/cmd/util"
	"github.com/himanchali/kvwire/common"
	"github.com/himanchali/kvwire/transport"
	"github.com/spf13/cobra"
)

var (
	// CheckCmd dials the configured endpoint and reports whether a
	// connection can be established and validated
	CheckCmd = &cobra.Command{
		Use:   "check",
		Short: "Dial the server endpoint and verify the connection",
		Long: util.WrapString(`Opens a TCP connection to the configured endpoint with the configured
connect timeout and idle window, reports whether the connection is valid, and closes it again.
Useful to verify reachability and socket settings without issuing any commands.`),
		RunE: runCheck,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add the common connection flags
	util.SetupClientFlags(CheckCmd)
}

// runCheck dials the endpoint, reports validity and closes the connection
func runCheck(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	config := util.GetClientConfig()
	if err := common.InitLoggers(config.LogLevel); err != nil {
		return err
	}

	fmt.Print(config.String())

	start := time.Now()
	conn, err := transport.DialConfig(config)
	if err != nil {
		return fmt.Errorf("check failed: %v", err)
	}
	defer conn.Close()

	fmt.Printf("\nconnected to %s in %v\n", config.Endpoint, time.Since(start))
	fmt.Printf("connection valid: %t\n", conn.IsValid())
	return nil
}
