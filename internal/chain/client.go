package chain

import (
	"context"
	"errors"
	"math/big"

	"receiptchain/internal/models"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrNotConnected = errors.New("web3 not connected")
	// ErrUnavailable marks a provider that was reachable but dropped or
	// refused a request.
	ErrUnavailable = errors.New("web3 provider unavailable")
)

type Operation string

const (
	OpCreateBill     Operation = "createBill"
	OpAddTransaction Operation = "addTransaction"
	OpRecordPayment  Operation = "recordPayment"
	OpVerifyPayment  Operation = "verifyPayment"
	OpSettleBill     Operation = "settleBill"
	OpDeployContract Operation = "deployContract"
)

// Call is a contract write. Payload is hashed in its JSON form.
type Call struct {
	Operation Operation
	Payload   any
}

// Client is the ledger's view of the chain.
type Client interface {
	Connected(ctx context.Context) bool
	NewAccount() (*models.Account, error)
	BalanceAt(ctx context.Context, addr common.Address) (*big.Int, error)
	Submit(ctx context.Context, call Call) (*models.Receipt, error)
	Deploy(ctx context.Context, contractType string) (*models.ContractDeployment, error)
	// ProviderURL is safe to expose: credentials and path are redacted.
	ProviderURL() string
	OperatorAddress() string
	Close()
}
