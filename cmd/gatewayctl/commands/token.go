package commands

import (
	"fmt"
	"time"

	"receiptchain/pkg/auth"
	"receiptchain/pkg/config"

	"github.com/spf13/cobra"
)

// tokenCmd mints a bearer token accepted by the ledger gateway
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a JWT for calling the ledger gateway",
	Long: `Mint an HS256 token signed with JWT_SECRET_KEY. The ledger gateway
requires it on every route except /health when JWT_SECRET_KEY is set.`,
	RunE: runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringP("subject", "s", "", "Token subject (service or operator name)")
	tokenCmd.Flags().String("scope", "ledger", "Token scope")
	tokenCmd.Flags().Duration("ttl", 0, "Token lifetime (default JWT_EXPIRATION)")
	tokenCmd.Flags().String("secret", "", "Signing secret (default JWT_SECRET_KEY)")
	_ = tokenCmd.MarkFlagRequired("subject")
}

func runToken(cmd *cobra.Command, args []string) error {
	subject, _ := cmd.Flags().GetString("subject")
	scope, _ := cmd.Flags().GetString("scope")
	ttl, _ := cmd.Flags().GetDuration("ttl")
	secret, _ := cmd.Flags().GetString("secret")

	if secret == "" || ttl == 0 {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if secret == "" {
			secret = cfg.JWT.SecretKey
		}
		if ttl == 0 {
			ttl = cfg.JWT.Expiration
		}
	}
	if secret == "" {
		return fmt.Errorf("no signing secret: set JWT_SECRET_KEY or pass --secret")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	token, err := auth.NewJWTManager(secret, ttl).GenerateToken(subject, scope)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
