package chain

const (
	DefaultGas   uint64 = 100000
	DeployGas    uint64 = 2000000
	GasPriceWei  uint64 = 20000000000 // 20 gwei
	DefaultGasOp        = string(OpCreateBill)
)

var gasTable = map[string]uint64{
	string(OpCreateBill):     150000,
	string(OpAddTransaction): 120000,
	string(OpRecordPayment):  100000,
	string(OpVerifyPayment):  50000,
	string(OpSettleBill):     80000,
}

// GasFor returns the fixed gas figure for op, or DefaultGas for unknown ops.
func GasFor(op string) uint64 {
	if g, ok := gasTable[op]; ok {
		return g
	}
	return DefaultGas
}

var blockNumbers = map[Operation]uint64{
	OpCreateBill:     12345,
	OpAddTransaction: 12346,
	OpRecordPayment:  12347,
	OpDeployContract: 12348,
}

func blockFor(op Operation) uint64 {
	if n, ok := blockNumbers[op]; ok {
		return n
	}
	return blockNumbers[OpCreateBill]
}
