package chain

import (
	"context"
	"math/big"
	"sync"

	"receiptchain/internal/models"

	"github.com/ethereum/go-ethereum/common"
)

// StubClient is the offline chain used when no provider is configured.
type StubClient struct {
	sim       simulator
	connected bool

	mu       sync.RWMutex
	balances map[common.Address]*big.Int
}

func NewStubClient(operator common.Address, connected bool) *StubClient {
	return &StubClient{
		sim:       newSimulator(operator),
		connected: connected,
		balances:  make(map[common.Address]*big.Int),
	}
}

func (s *StubClient) SetBalance(addr common.Address, wei *big.Int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[addr] = new(big.Int).Set(wei)
}

func (s *StubClient) Connected(ctx context.Context) bool {
	return s.connected
}

func (s *StubClient) NewAccount() (*models.Account, error) {
	return NewAccount()
}

func (s *StubClient) BalanceAt(ctx context.Context, addr common.Address) (*big.Int, error) {
	if !s.connected {
		return nil, ErrNotConnected
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.balances[addr]; ok {
		return new(big.Int).Set(b), nil
	}
	return new(big.Int), nil
}

func (s *StubClient) Submit(ctx context.Context, call Call) (*models.Receipt, error) {
	return s.sim.submit(ctx, call)
}

func (s *StubClient) Deploy(ctx context.Context, contractType string) (*models.ContractDeployment, error) {
	return s.sim.deploy(ctx, contractType)
}

func (s *StubClient) ProviderURL() string {
	return ""
}

func (s *StubClient) OperatorAddress() string {
	if s.sim.deployer == (common.Address{}) {
		return ""
	}
	return s.sim.deployer.Hex()
}

func (s *StubClient) Close() {}
