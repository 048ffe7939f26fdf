package chain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net"
	"net/url"
	"time"

	"receiptchain/internal/models"
	"receiptchain/pkg/config"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// RPCClient reads balances from a JSON-RPC provider. Writes are simulated
// until contract bindings are deployed.
type RPCClient struct {
	eth      *ethclient.Client
	url      string
	timeout  time.Duration
	sim      simulator
	operator common.Address
	logger   *zap.Logger
}

func DialRPC(ctx context.Context, cfg *config.ChainConfig, logger *zap.Logger) (*RPCClient, error) {
	operator, err := OperatorAddress(cfg.OperatorPrivateKey)
	if err != nil {
		return nil, err
	}

	eth, err := ethclient.DialContext(ctx, cfg.ProviderURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial web3 provider: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	c := &RPCClient{
		eth:      eth,
		url:      cfg.ProviderURL,
		timeout:  timeout,
		sim:      newSimulator(operator).withContracts(cfg.BillContractAddress, cfg.PaymentContractAddress),
		operator: operator,
		logger:   logger,
	}

	if c.Connected(ctx) {
		logger.Info("Connected to web3 provider", zap.String("provider_url", c.ProviderURL()))
	} else {
		logger.Warn("Web3 provider unreachable, continuing disconnected", zap.String("provider_url", c.ProviderURL()))
	}
	return c, nil
}

func (c *RPCClient) Connected(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.eth.ChainID(ctx)
	return err == nil
}

func (c *RPCClient) NewAccount() (*models.Account, error) {
	return NewAccount()
}

// BalanceAt probes the provider and reads the balance under one timeout.
func (c *RPCClient) BalanceAt(ctx context.Context, addr common.Address) (*big.Int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if _, err := c.eth.ChainID(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("probe provider: %w", err)
		}
		return nil, fmt.Errorf("%w: %v", ErrNotConnected, err)
	}

	balance, err := c.eth.BalanceAt(ctx, addr, nil)
	if err != nil {
		return nil, classify(err)
	}
	return balance, nil
}

// classify separates transport failures from JSON-RPC errors. Timeouts keep
// context.DeadlineExceeded in the chain.
func classify(err error) error {
	var (
		urlErr *url.Error
		netErr net.Error
	)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("get balance: %w", err)
	case errors.As(err, &urlErr), errors.As(err, &netErr),
		errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		return fmt.Errorf("get balance: %w", err)
	}
}

func (c *RPCClient) Submit(ctx context.Context, call Call) (*models.Receipt, error) {
	return c.sim.submit(ctx, call)
}

func (c *RPCClient) Deploy(ctx context.Context, contractType string) (*models.ContractDeployment, error) {
	return c.sim.deploy(ctx, contractType)
}

func (c *RPCClient) ProviderURL() string {
	return RedactURL(c.url)
}

func (c *RPCClient) OperatorAddress() string {
	if c.operator == (common.Address{}) {
		return ""
	}
	return c.operator.Hex()
}

func (c *RPCClient) Close() {
	c.eth.Close()
}

// New picks the RPC client when a provider URL is configured and the offline
// stub otherwise.
func New(ctx context.Context, cfg *config.ChainConfig, logger *zap.Logger) (Client, error) {
	if cfg.ProviderURL == "" {
		operator, err := OperatorAddress(cfg.OperatorPrivateKey)
		if err != nil {
			return nil, err
		}
		logger.Warn("WEB3_PROVIDER_URL not set, using offline chain stub")
		stub := NewStubClient(operator, false)
		stub.sim = stub.sim.withContracts(cfg.BillContractAddress, cfg.PaymentContractAddress)
		return stub, nil
	}
	return DialRPC(ctx, cfg, logger)
}
