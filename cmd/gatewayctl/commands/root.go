package commands

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gatewayctl",
	Short: "gatewayctl - operator tooling for the receipt and ledger gateways",
	Long: `gatewayctl mints service tokens for the ledger gateway, generates offline
accounts, queries balances through the configured provider and prices
ledger operations with the same gas table the gateway uses.

Configuration is read the same way as the gateways: .env, CONFIG_FILE
and the process environment.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}
