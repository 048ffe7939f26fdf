package service

import (
	"receiptchain/internal/chain"
	"receiptchain/internal/models"
	"receiptchain/pkg/apperr"

	"github.com/holiman/uint256"
)

// EstimateGas prices an operation from the fixed gas table. It performs no
// I/O; an empty operation is treated as createBill.
func EstimateGas(operation string) (*models.GasEstimate, error) {
	if operation == "" {
		operation = chain.DefaultGasOp
	}

	gas := chain.GasFor(operation)
	cost, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(gas), uint256.NewInt(chain.GasPriceWei))
	if overflow || !cost.IsUint64() {
		return nil, apperr.Internal(apperr.CodeInternal, "Gas cost overflow", nil)
	}

	return &models.GasEstimate{
		Operation:        operation,
		EstimatedGas:     gas,
		GasPrice:         chain.GasPriceWei,
		EstimatedCostWei: cost.Uint64(),
		EstimatedCostEth: chain.FormatEther(cost.ToBig()),
	}, nil
}
