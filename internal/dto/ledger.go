package dto

import (
	"bytes"
	"encoding/json"
	"errors"

	"receiptchain/pkg/apperr"
)

var (
	CreateBillFields     = []string{"billId", "billName", "description", "currency"}
	AddTransactionFields = []string{"transactionId", "billId", "amount", "description", "transactionType"}
	RecordPaymentFields  = []string{"paymentId", "receiver", "amount", "currency", "paymentMethod"}
)

type CreateBillRequest struct {
	BillID      string `json:"billId"`
	BillName    string `json:"billName"`
	Description string `json:"description"`
	Currency    string `json:"currency"`
	Creator     string `json:"creator"`
}

type AddTransactionRequest struct {
	TransactionID   string      `json:"transactionId"`
	BillID          string      `json:"billId"`
	Payer           string      `json:"payer"`
	Amount          json.Number `json:"amount"`
	Description     string      `json:"description"`
	TransactionType string      `json:"transactionType"`
	Beneficiaries   []string    `json:"beneficiaries"`
}

type RecordPaymentRequest struct {
	PaymentID     string      `json:"paymentId"`
	TransactionID string      `json:"transactionId"`
	Payer         string      `json:"payer"`
	Receiver      string      `json:"receiver"`
	Amount        json.Number `json:"amount"`
	Currency      string      `json:"currency"`
	PaymentMethod string      `json:"paymentMethod"`
	PaymentDate   *int64      `json:"paymentDate"`
	Notes         string      `json:"notes"`
	ImageHash     string      `json:"imageHash"`
}

type DeployContractRequest struct {
	ContractType string `json:"contractType"`
}

type EstimateGasRequest struct {
	Operation string `json:"operation"`
}

type LedgerHealthResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	Web3Connected   bool   `json:"web3_connected"`
	ProviderURL     string `json:"provider_url"`
	OperatorAddress string `json:"operator_address,omitempty"`
}

func invalidField(name string) error {
	return apperr.InvalidInput(apperr.CodeValidationFailed, "Invalid value for field: "+name)
}

// DecodeRequired checks that body is a JSON object holding every field in
// required (in order) and then decodes it into dst. A required field set to
// null is rejected.
func DecodeRequired(body []byte, required []string, dst any) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return apperr.InvalidInput(apperr.CodeValidationFailed, "Invalid request body")
	}

	for _, name := range required {
		raw, ok := fields[name]
		if !ok {
			return apperr.MissingField(name)
		}
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return invalidField(name)
		}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return invalidField(typeErr.Field)
		}
		return apperr.InvalidInput(apperr.CodeValidationFailed, "Invalid request body")
	}
	return nil
}

// DecodeOptional is DecodeRequired without required fields. An empty body is
// treated as an empty object.
func DecodeOptional(body []byte, dst any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	return DecodeRequired(body, nil, dst)
}
