package handlers

import (
	"receiptchain/internal/dto"
	"receiptchain/internal/service"
	"receiptchain/pkg/apperr"
	"receiptchain/pkg/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const invalidRequestData = "Invalid request data"

type LedgerHandler struct {
	ledgerService *service.LedgerService
	logger        *zap.Logger
}

func NewLedgerHandler(ledgerService *service.LedgerService, logger *zap.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// failWrite reports validation errors as "Invalid request data" and anything
// else with the operation's failure message.
func failWrite(c *fiber.Ctx, err error, failure string) error {
	if apperr.IsKind(err, apperr.KindInvalidInput) {
		return response.Fail(c, err, invalidRequestData)
	}
	return response.Fail(c, err, failure)
}

// Health godoc
// @Summary Ledger health check
// @Tags system
// @Produce json
// @Success 200 {object} dto.LedgerHealthResponse
// @Router /health [get]
func (h *LedgerHandler) Health(c *fiber.Ctx) error {
	return c.JSON(h.ledgerService.Health(c.UserContext()))
}

// CreateAccount godoc
// @Summary Create an account
// @Description Generates a new secp256k1 key pair. The private key is returned once and never stored.
// @Tags account
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Envelope{data=models.Account}
// @Failure 401 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /account/create [post]
func (h *LedgerHandler) CreateAccount(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "no-store")

	acct, err := h.ledgerService.CreateAccount()
	if err != nil {
		return response.Fail(c, err, "Failed to create account")
	}
	return response.OK(c, acct, "Account created successfully")
}

// GetBalance godoc
// @Summary Get account balance
// @Tags account
// @Produce json
// @Security Bearer
// @Param address path string true "Hex address"
// @Success 200 {object} response.Envelope{data=models.Balance}
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /account/balance/{address} [get]
func (h *LedgerHandler) GetBalance(c *fiber.Ctx) error {
	balance, err := h.ledgerService.GetBalance(c.UserContext(), c.Params("address"))
	if apperr.IsKind(err, apperr.KindDependencyUnavailable) {
		return response.Fail(c, err, "Cannot connect to blockchain")
	}
	if err != nil {
		return response.Fail(c, err, "Failed to get balance")
	}
	return response.OK(c, balance, "Balance retrieved successfully")
}

// CreateBill godoc
// @Summary Create a bill
// @Tags bill
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.CreateBillRequest true "Bill"
// @Success 200 {object} response.Envelope{data=models.Bill}
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /bill/create [post]
func (h *LedgerHandler) CreateBill(c *fiber.Ctx) error {
	var req dto.CreateBillRequest
	if err := dto.DecodeRequired(c.Body(), dto.CreateBillFields, &req); err != nil {
		return failWrite(c, err, "")
	}

	bill, err := h.ledgerService.CreateBill(c.UserContext(), &req)
	if err != nil {
		return failWrite(c, err, "Failed to create bill")
	}
	return response.OK(c, bill, "Bill created successfully on blockchain")
}

// GetBill godoc
// @Summary Get a bill
// @Tags bill
// @Produce json
// @Security Bearer
// @Param billId path string true "Bill ID"
// @Success 200 {object} response.Envelope{data=models.Bill}
// @Router /bill/{billId} [get]
func (h *LedgerHandler) GetBill(c *fiber.Ctx) error {
	return response.OK(c, h.ledgerService.GetBill(c.Params("billId")), "Bill retrieved successfully")
}

// AddTransaction godoc
// @Summary Add a transaction to a bill
// @Tags transaction
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.AddTransactionRequest true "Transaction"
// @Success 200 {object} response.Envelope{data=models.Transaction}
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /transaction/add [post]
func (h *LedgerHandler) AddTransaction(c *fiber.Ctx) error {
	var req dto.AddTransactionRequest
	if err := dto.DecodeRequired(c.Body(), dto.AddTransactionFields, &req); err != nil {
		return failWrite(c, err, "")
	}

	tx, err := h.ledgerService.AddTransaction(c.UserContext(), &req)
	if err != nil {
		return failWrite(c, err, "Failed to add transaction")
	}
	return response.OK(c, tx, "Transaction added successfully to blockchain")
}

// RecordPayment godoc
// @Summary Record a payment
// @Tags payment
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.RecordPaymentRequest true "Payment"
// @Success 200 {object} response.Envelope{data=models.Payment}
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /payment/record [post]
func (h *LedgerHandler) RecordPayment(c *fiber.Ctx) error {
	var req dto.RecordPaymentRequest
	if err := dto.DecodeRequired(c.Body(), dto.RecordPaymentFields, &req); err != nil {
		return failWrite(c, err, "")
	}

	payment, err := h.ledgerService.RecordPayment(c.UserContext(), &req)
	if err != nil {
		return failWrite(c, err, "Failed to record payment")
	}
	return response.OK(c, payment, "Payment recorded successfully on blockchain")
}

// GetPayment godoc
// @Summary Get a payment record
// @Tags payment
// @Produce json
// @Security Bearer
// @Param paymentId path string true "Payment ID"
// @Success 200 {object} response.Envelope{data=models.Payment}
// @Router /payment/{paymentId} [get]
func (h *LedgerHandler) GetPayment(c *fiber.Ctx) error {
	return response.OK(c, h.ledgerService.GetPayment(c.Params("paymentId")), "Payment record retrieved successfully")
}

// DeployContract godoc
// @Summary Deploy a contract
// @Description For development: simulates deploying a bill or payment contract.
// @Tags contract
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.DeployContractRequest false "Contract type (default bill)"
// @Success 200 {object} response.Envelope{data=models.ContractDeployment}
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /contract/deploy [post]
func (h *LedgerHandler) DeployContract(c *fiber.Ctx) error {
	var req dto.DeployContractRequest
	if err := dto.DecodeOptional(c.Body(), &req); err != nil {
		return failWrite(c, err, "")
	}

	deployment, message, err := h.ledgerService.DeployContract(c.UserContext(), &req)
	if err != nil {
		return failWrite(c, err, "Failed to deploy contract")
	}
	return response.OK(c, deployment, message)
}

// EstimateGas godoc
// @Summary Estimate gas for an operation
// @Tags gas
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.EstimateGasRequest false "Operation (default createBill)"
// @Success 200 {object} response.Envelope{data=models.GasEstimate}
// @Failure 400 {object} response.Envelope
// @Router /gas/estimate [post]
func (h *LedgerHandler) EstimateGas(c *fiber.Ctx) error {
	var req dto.EstimateGasRequest
	if err := dto.DecodeOptional(c.Body(), &req); err != nil {
		return failWrite(c, err, "")
	}

	estimate, err := service.EstimateGas(req.Operation)
	if err != nil {
		return failWrite(c, err, "Failed to estimate gas")
	}
	return response.OK(c, estimate, "Gas estimation completed")
}
