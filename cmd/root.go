package cmd

import (
	"fmt"
	"os"

	"github.com/himanchali/kvwire/cmd/check"
	"github.com/spf13/cobra"
)

const (
	Version = "0.3.1"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "kvwire",
		Short: "key-value client transport diagnostics",
		Long: fmt.Sprintf(`kvwire (v%s)

The transport core of a binary-protocol key-value database client,
with diagnostic commands for connection checking.`, Version),
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of kvwire",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("kvwire v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(check.CheckCmd)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
