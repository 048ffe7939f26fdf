package service

import "testing"

func TestEstimateGas(t *testing.T) {
	tests := []struct {
		operation string
		wantOp    string
		wantGas   uint64
		wantWei   uint64
		wantEth   string
	}{
		{"createBill", "createBill", 150000, 3000000000000000, "0.003"},
		{"verifyPayment", "verifyPayment", 50000, 1000000000000000, "0.001"},
		{"unknownOp", "unknownOp", 100000, 2000000000000000, "0.002"},
		{"", "createBill", 150000, 3000000000000000, "0.003"},
	}

	for _, tt := range tests {
		t.Run(tt.wantOp, func(t *testing.T) {
			est, err := EstimateGas(tt.operation)
			if err != nil {
				t.Fatalf("estimate: %v", err)
			}
			if est.Operation != tt.wantOp || est.EstimatedGas != tt.wantGas {
				t.Fatalf("unexpected estimate %+v", est)
			}
			if est.GasPrice != 20000000000 || est.EstimatedCostWei != tt.wantWei || est.EstimatedCostEth != tt.wantEth {
				t.Fatalf("unexpected cost %+v", est)
			}
		})
	}
}

func TestEstimateGasIsPure(t *testing.T) {
	a, _ := EstimateGas("settleBill")
	b, _ := EstimateGas("settleBill")
	if *a != *b {
		t.Fatalf("estimates differ: %+v %+v", a, b)
	}
}
