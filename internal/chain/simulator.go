package chain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"receiptchain/internal/models"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/sha3"
)

// simulator produces deterministic receipts for contract writes. The same
// call always yields the same transaction hash.
type simulator struct {
	deployer  common.Address
	contracts map[Operation]string
	now       func() time.Time
}

func newSimulator(deployer common.Address) simulator {
	return simulator{deployer: deployer, now: time.Now}
}

// withContracts routes bill writes to bill and payment writes to payment.
// Empty addresses leave the receipt's "to" unset.
func (s simulator) withContracts(bill, payment string) simulator {
	s.contracts = make(map[Operation]string)
	if bill != "" {
		addr := common.HexToAddress(bill).Hex()
		s.contracts[OpCreateBill] = addr
		s.contracts[OpAddTransaction] = addr
		s.contracts[OpSettleBill] = addr
	}
	if payment != "" {
		addr := common.HexToAddress(payment).Hex()
		s.contracts[OpRecordPayment] = addr
		s.contracts[OpVerifyPayment] = addr
	}
	return s
}

func keccak(parts ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for i, p := range parts {
		if i > 0 {
			h.Write([]byte{'|'})
		}
		h.Write(p)
	}
	return h.Sum(nil)
}

func (s simulator) submit(ctx context.Context, call Call) (*models.Receipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(call.Payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", call.Operation, err)
	}

	return &models.Receipt{
		TransactionHash: hexutil.Encode(keccak([]byte(call.Operation), payload)),
		BlockNumber:     blockFor(call.Operation),
		GasUsed:         GasFor(string(call.Operation)),
		To:              s.contracts[call.Operation],
	}, nil
}

func (s simulator) deploy(ctx context.Context, contractType string) (*models.ContractDeployment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	deployer := s.deployer.Bytes()
	addr := common.BytesToAddress(keccak([]byte(contractType), deployer)[12:])

	return &models.ContractDeployment{
		ContractType:    contractType,
		ContractAddress: addr.Hex(),
		DeployedAt:      s.now().Unix(),
		Receipt: &models.Receipt{
			TransactionHash: hexutil.Encode(keccak([]byte(OpDeployContract), []byte(contractType), deployer)),
			BlockNumber:     blockFor(OpDeployContract),
			GasUsed:         DeployGas,
		},
	}, nil
}
