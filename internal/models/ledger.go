package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusFailed    PaymentStatus = "Failed"
)

// Receipt is what the chain returns for a submitted call.
type Receipt struct {
	TransactionHash string `json:"transactionHash"`
	BlockNumber     uint64 `json:"blockNumber"`
	GasUsed         uint64 `json:"gasUsed"`
	To              string `json:"to,omitempty"`
}

type Bill struct {
	BillID        string      `json:"billId"`
	BillName      string      `json:"billName"`
	Description   string      `json:"description"`
	Currency      string      `json:"currency"`
	Creator       string      `json:"creator"`
	TotalAmount   json.Number `json:"totalAmount"`
	SettledAmount json.Number `json:"settledAmount"`
	IsSettled     bool        `json:"isSettled"`
	CreatedAt     int64       `json:"createdAt"`
	Members       []string    `json:"members,omitempty"`
	*Receipt
}

type Transaction struct {
	TransactionID   string      `json:"transactionId"`
	BillID          string      `json:"billId"`
	Payer           string      `json:"payer"`
	Amount          json.Number `json:"amount"`
	Description     string      `json:"description"`
	TransactionType string      `json:"transactionType"`
	Timestamp       int64       `json:"timestamp"`
	IsSettled       bool        `json:"isSettled"`
	Beneficiaries   []string    `json:"beneficiaries"`
	*Receipt
}

type Payment struct {
	PaymentID     string        `json:"paymentId"`
	TransactionID string        `json:"transactionId"`
	Payer         string        `json:"payer"`
	Receiver      string        `json:"receiver"`
	Amount        json.Number   `json:"amount"`
	Currency      string        `json:"currency"`
	PaymentMethod string        `json:"paymentMethod"`
	PaymentDate   int64         `json:"paymentDate"`
	CreatedAt     int64         `json:"createdAt"`
	Status        PaymentStatus `json:"status"`
	Notes         string        `json:"notes"`
	ImageHash     string        `json:"imageHash"`
	IsVerified    bool          `json:"isVerified"`
	VerifiedBy    string        `json:"verifiedBy,omitempty"`
	VerifiedAt    int64         `json:"verifiedAt,omitempty"`
	*Receipt
}

type ContractDeployment struct {
	ContractType    string `json:"contractType"`
	ContractAddress string `json:"contractAddress"`
	DeployedAt      int64  `json:"deployedAt"`
	*Receipt
}

// Account holds freshly generated key material. It must never be logged.
type Account struct {
	Address    string `json:"address"`
	PrivateKey string `json:"private_key"`
	PublicKey  string `json:"public_key"`
}

type Balance struct {
	Address    string `json:"address"`
	BalanceWei string `json:"balance_wei"`
	BalanceEth string `json:"balance_eth"`
}

type GasEstimate struct {
	Operation        string `json:"operation"`
	EstimatedGas     uint64 `json:"estimatedGas"`
	GasPrice         uint64 `json:"gasPrice"`
	EstimatedCostWei uint64 `json:"estimatedCostWei"`
	EstimatedCostEth string `json:"estimatedCostEth"`
}

// JournalEntry is an audit row for a successful ledger write.
type JournalEntry struct {
	ID              uuid.UUID       `db:"id"`
	Operation       string          `db:"operation"`
	ReferenceID     string          `db:"reference_id"`
	TransactionHash string          `db:"transaction_hash"`
	BlockNumber     uint64          `db:"block_number"`
	GasUsed         uint64          `db:"gas_used"`
	Payload         json.RawMessage `db:"payload"`
	CreatedAt       time.Time       `db:"created_at"`
}
