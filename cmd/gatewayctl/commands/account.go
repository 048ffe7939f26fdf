package commands

import (
	"context"
	"fmt"
	"os"

	"receiptchain/internal/chain"
	"receiptchain/pkg/config"
	"receiptchain/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

// accountCmd groups offline key generation and balance lookup
var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Generate accounts and query balances",
}

var accountNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate a new secp256k1 account offline",
	Long: `Generate a new account without contacting any provider. The address and
public key are printed; the private key is written to --output (mode 0600)
or printed when --output is empty.`,
	RunE: runAccountNew,
}

var accountBalanceCmd = &cobra.Command{
	Use:   "balance <address>",
	Short: "Query an address balance through WEB3_PROVIDER_URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountBalance,
}

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.AddCommand(accountNewCmd)
	accountCmd.AddCommand(accountBalanceCmd)

	accountNewCmd.Flags().StringP("output", "o", "", "File to write the private key to")
	accountNewCmd.Flags().BoolP("force", "f", false, "Overwrite an existing key file")
}

func runAccountNew(cmd *cobra.Command, args []string) error {
	outputFile, _ := cmd.Flags().GetString("output")
	force, _ := cmd.Flags().GetBool("force")

	if outputFile != "" && !force {
		if _, err := os.Stat(outputFile); err == nil {
			return fmt.Errorf("key file %q already exists, use --force to overwrite", outputFile)
		}
	}

	acct, err := chain.NewAccount()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Address:    %s\n", acct.Address)
	fmt.Fprintf(out, "Public key: %s\n", acct.PublicKey)

	if outputFile == "" {
		fmt.Fprintf(out, "Private key: %s\n", acct.PrivateKey)
		return nil
	}

	if err := os.WriteFile(outputFile, []byte(acct.PrivateKey+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write private key: %w", err)
	}
	fmt.Fprintf(out, "Private key saved to: %s\n", outputFile)
	return nil
}

func runAccountBalance(cmd *cobra.Command, args []string) error {
	if !common.IsHexAddress(args[0]) {
		return fmt.Errorf("invalid address %q", args[0])
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Chain.ProviderURL == "" {
		return fmt.Errorf("WEB3_PROVIDER_URL is not set")
	}

	appLogger, err := logger.New("gatewayctl", "warn")
	if err != nil {
		return err
	}
	defer func() { _ = appLogger.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := chain.DialRPC(ctx, &cfg.Chain, appLogger)
	if err != nil {
		return err
	}
	defer client.Close()

	wei, err := client.BalanceAt(ctx, common.HexToAddress(args[0]))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s wei (%s ETH)\n", wei.String(), chain.FormatEther(wei))
	return nil
}
