package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"receiptchain/pkg/auth"

	"github.com/ethereum/go-ethereum/crypto"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGasJSON(t *testing.T) {
	out, err := run(t, "gas", "recordPayment", "--json")
	if err != nil {
		t.Fatalf("gas: %v", err)
	}
	var est struct {
		Operation        string `json:"operation"`
		EstimatedGas     uint64 `json:"estimatedGas"`
		EstimatedCostEth string `json:"estimatedCostEth"`
	}
	if err := json.Unmarshal([]byte(out), &est); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if est.Operation != "recordPayment" || est.EstimatedGas != 100000 || est.EstimatedCostEth != "0.002" {
		t.Fatalf("unexpected estimate %+v", est)
	}
}

func TestTokenIsAcceptedByManager(t *testing.T) {
	out, err := run(t, "token", "--subject", "billing-worker", "--secret", "s3cret", "--ttl", "1h")
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	claims, err := auth.NewJWTManager("s3cret", time.Hour).ValidateToken(strings.TrimSpace(out))
	if err != nil {
		t.Fatalf("minted token rejected: %v", err)
	}
	if claims.Subject != "billing-worker" || claims.Scope != "ledger" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestAccountNewWritesKeyFile(t *testing.T) {
	keyFile := filepath.Join(t.TempDir(), "operator.key")

	out, err := run(t, "account", "new", "--output", keyFile)
	if err != nil {
		t.Fatalf("account new: %v", err)
	}
	if strings.Contains(out, "Private key: ") {
		t.Fatal("private key printed despite --output")
	}

	data, err := os.ReadFile(keyFile)
	if err != nil {
		t.Fatalf("read key file: %v", err)
	}
	info, _ := os.Stat(keyFile)
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600, got %v", info.Mode().Perm())
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(string(data)), "0x"))
	if err != nil {
		t.Fatalf("key file does not hold a private key: %v", err)
	}
	if !strings.Contains(out, crypto.PubkeyToAddress(key.PublicKey).Hex()) {
		t.Fatalf("printed address does not match key file:\n%s", out)
	}

	if _, err := run(t, "account", "new", "--output", keyFile); err == nil {
		t.Fatal("expected refusal to overwrite existing key file")
	}
}
