package commands

import (
	"encoding/json"
	"fmt"

	"receiptchain/internal/service"

	"github.com/spf13/cobra"
)

// gasCmd prices an operation using the gateway's gas table
var gasCmd = &cobra.Command{
	Use:   "gas [operation]",
	Short: "Estimate gas for a ledger operation",
	Long: `Estimate gas for createBill, addTransaction, recordPayment, verifyPayment
or settleBill. Unknown operations use the default estimate.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGas,
}

func init() {
	rootCmd.AddCommand(gasCmd)

	gasCmd.Flags().Bool("json", false, "Print the estimate as JSON")
}

func runGas(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	var operation string
	if len(args) == 1 {
		operation = args[0]
	}

	estimate, err := service.EstimateGas(operation)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(estimate)
	}

	fmt.Fprintf(out, "Operation:  %s\n", estimate.Operation)
	fmt.Fprintf(out, "Gas:        %d\n", estimate.EstimatedGas)
	fmt.Fprintf(out, "Gas price:  %d wei\n", estimate.GasPrice)
	fmt.Fprintf(out, "Cost:       %d wei (%s ETH)\n", estimate.EstimatedCostWei, estimate.EstimatedCostEth)
	return nil
}
