package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"
	"unicode"

	"receiptchain/internal/chain"
	"receiptchain/internal/dto"
	"receiptchain/internal/models"
	"receiptchain/pkg/apperr"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	zeroAddress = common.Address{}.Hex()
	ones        = common.HexToAddress("0x1111111111111111111111111111111111111111").Hex()
	twos        = common.HexToAddress("0x2222222222222222222222222222222222222222").Hex()
)

// Journal records successful ledger writes. It is optional.
type Journal interface {
	Append(ctx context.Context, entry *models.JournalEntry) error
}

type LedgerService struct {
	chain   chain.Client
	journal Journal
	logger  *zap.Logger
	now     func() time.Time
}

func NewLedgerService(client chain.Client, journal Journal, logger *zap.Logger) *LedgerService {
	return &LedgerService{
		chain:   client,
		journal: journal,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *LedgerService) Health(ctx context.Context) *dto.LedgerHealthResponse {
	return &dto.LedgerHealthResponse{
		Success:         true,
		Message:         "Web3 service is running",
		Web3Connected:   s.chain.Connected(ctx),
		ProviderURL:     s.chain.ProviderURL(),
		OperatorAddress: s.chain.OperatorAddress(),
	}
}

func (s *LedgerService) CreateAccount() (*models.Account, error) {
	acct, err := s.chain.NewAccount()
	if err != nil {
		return nil, apperr.Internal(apperr.CodeInternal, "Failed to create account", err)
	}
	s.logger.Info("Account created", zap.String("address", acct.Address))
	return acct, nil
}

func (s *LedgerService) GetBalance(ctx context.Context, address string) (*models.Balance, error) {
	if !common.IsHexAddress(address) {
		return nil, apperr.InvalidInput(apperr.CodeInvalidAddress, "Invalid address")
	}
	addr := common.HexToAddress(address)

	// Provider errors can carry the provider URL; callers only see fixed messages.
	wei, err := s.chain.BalanceAt(ctx, addr)
	if err != nil {
		s.logger.Warn("Balance lookup failed", zap.String("address", addr.Hex()), zap.Error(err))
	}
	switch {
	case errors.Is(err, chain.ErrNotConnected):
		return nil, apperr.DependencyUnavailable("Web3 not connected", err)
	case errors.Is(err, context.DeadlineExceeded):
		return nil, apperr.DependencyUnavailable("Web3 request timed out", err)
	case errors.Is(err, chain.ErrUnavailable):
		return nil, apperr.DependencyUnavailable("Web3 request failed", err)
	case err != nil:
		return nil, apperr.Internal(apperr.CodeWeb3RequestFailed, "Balance lookup failed", err)
	}

	return &models.Balance{
		Address:    address,
		BalanceWei: wei.String(),
		BalanceEth: chain.FormatEther(wei),
	}, nil
}

func (s *LedgerService) CreateBill(ctx context.Context, req *dto.CreateBillRequest) (*models.Bill, error) {
	receipt, err := s.submit(ctx, chain.OpCreateBill, req)
	if err != nil {
		return nil, err
	}

	bill := &models.Bill{
		BillID:        req.BillID,
		BillName:      req.BillName,
		Description:   req.Description,
		Currency:      req.Currency,
		Creator:       orDefault(req.Creator, zeroAddress),
		TotalAmount:   "0",
		SettledAmount: "0",
		IsSettled:     false,
		CreatedAt:     s.now().Unix(),
		Receipt:       receipt,
	}

	s.record(ctx, chain.OpCreateBill, bill.BillID, receipt, bill)
	return bill, nil
}

// GetBill never touches storage: bills are synthesized from the identifier.
func (s *LedgerService) GetBill(billID string) *models.Bill {
	return &models.Bill{
		BillID:        billID,
		BillName:      "Bill " + billID,
		Description:   "Sample bill description",
		Currency:      "CNY",
		Creator:       ones,
		TotalAmount:   "1000",
		SettledAmount: "500",
		IsSettled:     false,
		CreatedAt:     s.now().Unix(),
		Members:       []string{ones, twos},
	}
}

func (s *LedgerService) AddTransaction(ctx context.Context, req *dto.AddTransactionRequest) (*models.Transaction, error) {
	receipt, err := s.submit(ctx, chain.OpAddTransaction, req)
	if err != nil {
		return nil, err
	}

	beneficiaries := req.Beneficiaries
	if beneficiaries == nil {
		beneficiaries = []string{}
	}

	tx := &models.Transaction{
		TransactionID:   req.TransactionID,
		BillID:          req.BillID,
		Payer:           orDefault(req.Payer, zeroAddress),
		Amount:          req.Amount,
		Description:     req.Description,
		TransactionType: req.TransactionType,
		Timestamp:       s.now().Unix(),
		IsSettled:       false,
		Beneficiaries:   beneficiaries,
		Receipt:         receipt,
	}

	s.record(ctx, chain.OpAddTransaction, tx.TransactionID, receipt, tx)
	return tx, nil
}

func (s *LedgerService) RecordPayment(ctx context.Context, req *dto.RecordPaymentRequest) (*models.Payment, error) {
	receipt, err := s.submit(ctx, chain.OpRecordPayment, req)
	if err != nil {
		return nil, err
	}

	now := s.now().Unix()
	paymentDate := now
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}

	payment := &models.Payment{
		PaymentID:     req.PaymentID,
		TransactionID: req.TransactionID,
		Payer:         orDefault(req.Payer, zeroAddress),
		Receiver:      req.Receiver,
		Amount:        req.Amount,
		Currency:      req.Currency,
		PaymentMethod: req.PaymentMethod,
		PaymentDate:   paymentDate,
		CreatedAt:     now,
		Status:        models.PaymentStatusCompleted,
		Notes:         req.Notes,
		ImageHash:     req.ImageHash,
		IsVerified:    false,
		Receipt:       receipt,
	}

	s.record(ctx, chain.OpRecordPayment, payment.PaymentID, receipt, payment)
	return payment, nil
}

// GetPayment never touches storage: payments are synthesized from the identifier.
func (s *LedgerService) GetPayment(paymentID string) *models.Payment {
	now := s.now().Unix()
	return &models.Payment{
		PaymentID:     paymentID,
		TransactionID: "tx_001",
		Payer:         ones,
		Receiver:      twos,
		Amount:        "100",
		Currency:      "CNY",
		PaymentMethod: "WeChat Pay",
		PaymentDate:   now,
		CreatedAt:     now,
		Status:        models.PaymentStatusCompleted,
		Notes:         "Payment for lunch",
		ImageHash:     "hash123",
		IsVerified:    true,
		VerifiedBy:    twos,
		VerifiedAt:    now,
	}
}

// DeployContract returns the deployment together with its success message.
func (s *LedgerService) DeployContract(ctx context.Context, req *dto.DeployContractRequest) (*models.ContractDeployment, string, error) {
	contractType := req.ContractType
	if contractType == "" {
		contractType = "bill"
	}

	deployment, err := s.chain.Deploy(ctx, contractType)
	if err != nil {
		s.logger.Error("Contract deployment failed", zap.String("contract_type", contractType), zap.Error(err))
		return nil, "", apperr.Internal(apperr.CodeWeb3RequestFailed, "Contract deployment failed", err)
	}

	s.record(ctx, chain.OpDeployContract, deployment.ContractAddress, deployment.Receipt, deployment)
	return deployment, titleCase(contractType) + " contract deployed successfully", nil
}

func (s *LedgerService) submit(ctx context.Context, op chain.Operation, payload any) (*models.Receipt, error) {
	receipt, err := s.chain.Submit(ctx, chain.Call{Operation: op, Payload: payload})
	if err != nil {
		s.logger.Error("Chain submission failed", zap.String("operation", string(op)), zap.Error(err))
		return nil, apperr.Internal(apperr.CodeWeb3RequestFailed, "Chain submission failed", err)
	}
	return receipt, nil
}

// record appends to the journal when one is configured. Failures are logged.
func (s *LedgerService) record(ctx context.Context, op chain.Operation, referenceID string, receipt *models.Receipt, record any) {
	s.logger.Info("Ledger write completed",
		zap.String("operation", string(op)),
		zap.String("reference_id", referenceID),
		zap.String("transaction_hash", receipt.TransactionHash),
	)

	if s.journal == nil {
		return
	}

	payload, err := json.Marshal(record)
	if err != nil {
		s.logger.Warn("Failed to encode journal payload", zap.Error(err))
		return
	}

	entry := &models.JournalEntry{
		ID:              uuid.New(),
		Operation:       string(op),
		ReferenceID:     referenceID,
		TransactionHash: receipt.TransactionHash,
		BlockNumber:     receipt.BlockNumber,
		GasUsed:         receipt.GasUsed,
		Payload:         payload,
		CreatedAt:       s.now().UTC(),
	}
	if err := s.journal.Append(ctx, entry); err != nil {
		s.logger.Warn("Failed to append ledger journal", zap.String("operation", string(op)), zap.Error(err))
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// titleCase upper-cases the first letter of every word and lower-cases the
// rest, where any non-letter separates words.
func titleCase(s string) string {
	out := []rune(s)
	prevLetter := false
	for i, r := range out {
		if unicode.IsLetter(r) {
			if prevLetter {
				out[i] = unicode.ToLower(r)
			} else {
				out[i] = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
	}
	return string(out)
}
