package ledger

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"receiptchain/internal/api/handlers"
	"receiptchain/internal/chain"
	"receiptchain/internal/service"
	"receiptchain/pkg/auth"
	"receiptchain/pkg/config"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type envelope struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
	Error   string         `json:"error"`
	Message string         `json:"message"`
	Code    string         `json:"code"`
}

func newTestApp(t *testing.T, jwtManager *auth.JWTManager) *fiber.App {
	t.Helper()
	logger := zap.NewNop()
	ledgerService := service.NewLedgerService(chain.NewStubClient(common.Address{}, false), nil, logger)
	handler := handlers.NewLedgerHandler(ledgerService, logger)
	return SetupRouter(handler, jwtManager, config.ServerConfig{BodyLimit: 1024 * 1024}, logger)
}

func do(t *testing.T, app *fiber.App, method, path, body, token string) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode: %v", method, path, err)
	}
	return resp, env
}

func TestCreateBillMissingField(t *testing.T) {
	app := newTestApp(t, nil)

	resp, env := do(t, app, http.MethodPost, "/bill/create", `{"billName":"x"}`, "")
	if resp.StatusCode != http.StatusBadRequest || env.Success {
		t.Fatalf("expected 400, got %d %+v", resp.StatusCode, env)
	}
	if env.Error != "Missing required field: billId" || env.Message != "Invalid request data" {
		t.Fatalf("unexpected error %q / %q", env.Error, env.Message)
	}
}

func TestRequiredFieldOrder(t *testing.T) {
	app := newTestApp(t, nil)

	tests := []struct {
		path string
		body string
		want string
	}{
		{"/bill/create", `{"billId":"1","billName":"x","currency":"CNY"}`, "description"},
		{"/transaction/add", `{"transactionId":"t","billId":"b","description":"d"}`, "amount"},
		{"/transaction/add", `{}`, "transactionId"},
		{"/payment/record", `{"paymentId":"p","receiver":"r","amount":1,"currency":"CNY"}`, "paymentMethod"},
	}
	for _, tt := range tests {
		resp, env := do(t, app, http.MethodPost, tt.path, tt.body, "")
		if resp.StatusCode != http.StatusBadRequest || env.Error != "Missing required field: "+tt.want {
			t.Errorf("%s %s: got %d %q", tt.path, tt.body, resp.StatusCode, env.Error)
		}
	}
}

func TestInvalidBody(t *testing.T) {
	app := newTestApp(t, nil)

	resp, env := do(t, app, http.MethodPost, "/bill/create", `not json`, "")
	if resp.StatusCode != http.StatusBadRequest || env.Error != "Invalid request body" {
		t.Fatalf("unexpected response %d %+v", resp.StatusCode, env)
	}

	resp, env = do(t, app, http.MethodPost, "/bill/create", `{"billId":7,"billName":"x","description":"d","currency":"CNY"}`, "")
	if resp.StatusCode != http.StatusBadRequest || env.Error != "Invalid value for field: billId" {
		t.Fatalf("unexpected response %d %+v", resp.StatusCode, env)
	}
}

func TestNullAmountIsRejected(t *testing.T) {
	app := newTestApp(t, nil)

	resp, env := do(t, app, http.MethodPost, "/transaction/add",
		`{"transactionId":"t1","billId":"b1","amount":null,"description":"Taxi","transactionType":"expense"}`, "")
	if resp.StatusCode != http.StatusBadRequest || env.Error != "Invalid value for field: amount" {
		t.Fatalf("unexpected response %d %+v", resp.StatusCode, env)
	}

	resp, env = do(t, app, http.MethodPost, "/payment/record",
		`{"paymentId":"p","receiver":"r","amount":null,"currency":"CNY","paymentMethod":"WeChat Pay"}`, "")
	if resp.StatusCode != http.StatusBadRequest || env.Error != "Invalid value for field: amount" {
		t.Fatalf("unexpected response %d %+v", resp.StatusCode, env)
	}
}

func TestCreateBill(t *testing.T) {
	app := newTestApp(t, nil)

	resp, env := do(t, app, http.MethodPost, "/bill/create",
		`{"billId":"b1","billName":"Dinner","description":"Team dinner","currency":"CNY"}`, "")
	if resp.StatusCode != http.StatusOK || !env.Success {
		t.Fatalf("unexpected response %d %+v", resp.StatusCode, env)
	}
	if env.Message != "Bill created successfully on blockchain" {
		t.Fatalf("unexpected message %q", env.Message)
	}
	if env.Data["blockNumber"] != float64(12345) || env.Data["gasUsed"] != float64(150000) {
		t.Fatalf("unexpected receipt %v", env.Data)
	}
	if env.Data["creator"] != "0x0000000000000000000000000000000000000000" {
		t.Fatalf("unexpected creator %v", env.Data["creator"])
	}
	if hash, _ := env.Data["transactionHash"].(string); len(hash) != 66 {
		t.Fatalf("unexpected hash %q", hash)
	}
}

func TestAddTransactionEchoesAmount(t *testing.T) {
	app := newTestApp(t, nil)

	resp, env := do(t, app, http.MethodPost, "/transaction/add",
		`{"transactionId":"t1","billId":"b1","amount":25.5,"description":"Taxi","transactionType":"expense"}`, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d %+v", resp.StatusCode, env)
	}
	if env.Data["amount"] != 25.5 || env.Data["blockNumber"] != float64(12346) {
		t.Fatalf("unexpected transaction %v", env.Data)
	}
	if b, ok := env.Data["beneficiaries"].([]any); !ok || len(b) != 0 {
		t.Fatalf("expected empty beneficiaries, got %v", env.Data["beneficiaries"])
	}
}

func TestReadsAreSynthesized(t *testing.T) {
	app := newTestApp(t, nil)

	_, bill := do(t, app, http.MethodGet, "/bill/abc", "", "")
	if bill.Data["billName"] != "Bill abc" || bill.Message != "Bill retrieved successfully" {
		t.Fatalf("unexpected bill %+v", bill)
	}
	if _, ok := bill.Data["transactionHash"]; ok {
		t.Fatal("read path should not include a receipt")
	}

	_, payment := do(t, app, http.MethodGet, "/payment/p1", "", "")
	if payment.Data["paymentId"] != "p1" || payment.Data["status"] != "Completed" || payment.Data["isVerified"] != true {
		t.Fatalf("unexpected payment %+v", payment)
	}
}

func TestGasEstimate(t *testing.T) {
	app := newTestApp(t, nil)

	_, env := do(t, app, http.MethodPost, "/gas/estimate", `{"operation":"unknownOp"}`, "")
	if env.Data["estimatedGas"] != float64(100000) || env.Message != "Gas estimation completed" {
		t.Fatalf("unexpected estimate %+v", env)
	}

	_, env = do(t, app, http.MethodPost, "/gas/estimate", "", "")
	if env.Data["operation"] != "createBill" || env.Data["estimatedCostEth"] != "0.003" {
		t.Fatalf("unexpected default estimate %+v", env)
	}
}

func TestDeployContract(t *testing.T) {
	app := newTestApp(t, nil)

	_, env := do(t, app, http.MethodPost, "/contract/deploy", `{"contractType":"payment"}`, "")
	if env.Message != "Payment contract deployed successfully" || env.Data["gasUsed"] != float64(2000000) {
		t.Fatalf("unexpected deploy %+v", env)
	}
}

func TestBalanceDisconnected(t *testing.T) {
	app := newTestApp(t, nil)

	resp, env := do(t, app, http.MethodGet, "/account/balance/0x1111111111111111111111111111111111111111", "", "")
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	if env.Error != "Web3 not connected" || env.Message != "Cannot connect to blockchain" || env.Code != "WEB3_8001" {
		t.Fatalf("unexpected error %+v", env)
	}

	resp, env = do(t, app, http.MethodGet, "/account/balance/nothex", "", "")
	if resp.StatusCode != http.StatusBadRequest || env.Code != "WEB3_8004" {
		t.Fatalf("expected invalid address, got %d %+v", resp.StatusCode, env)
	}
}

func TestCreateAccountIsNotCached(t *testing.T) {
	app := newTestApp(t, nil)

	resp, env := do(t, app, http.MethodPost, "/account/create", "", "")
	if resp.StatusCode != http.StatusOK || env.Message != "Account created successfully" {
		t.Fatalf("unexpected response %d %+v", resp.StatusCode, env)
	}
	if resp.Header.Get("Cache-Control") != "no-store" {
		t.Fatalf("expected no-store, got %q", resp.Header.Get("Cache-Control"))
	}
	if addr, _ := env.Data["address"].(string); !common.IsHexAddress(addr) {
		t.Fatalf("invalid address %q", addr)
	}
}

func TestHealth(t *testing.T) {
	app := newTestApp(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	var health map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&health)
	if health["success"] != true || health["web3_connected"] != false || health["message"] != "Web3 service is running" {
		t.Fatalf("unexpected health %v", health)
	}
}

func TestAuthRequiredWhenConfigured(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	app := newTestApp(t, jwtManager)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health should stay open, got %d", resp.StatusCode)
	}

	resp2, env := do(t, app, http.MethodGet, "/bill/b1", "", "")
	if resp2.StatusCode != http.StatusUnauthorized || env.Code != "AUTH_1004" {
		t.Fatalf("expected 401, got %d %+v", resp2.StatusCode, env)
	}

	resp2, env = do(t, app, http.MethodGet, "/bill/b1", "", "garbage")
	if resp2.StatusCode != http.StatusUnauthorized || env.Error != "Invalid or expired token" {
		t.Fatalf("expected invalid token, got %d %+v", resp2.StatusCode, env)
	}

	token, err := jwtManager.GenerateToken("billing-worker", "ledger")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	resp2, env = do(t, app, http.MethodGet, "/bill/b1", "", token)
	if resp2.StatusCode != http.StatusOK || !env.Success {
		t.Fatalf("expected success with token, got %d %+v", resp2.StatusCode, env)
	}
}

func TestUnknownRouteIsNotFoundWithAuth(t *testing.T) {
	app := newTestApp(t, auth.NewJWTManager("test-secret", time.Hour))

	resp, env := do(t, app, http.MethodGet, "/nope", "", "")
	if resp.StatusCode != http.StatusNotFound || env.Code != "SYS_10005" {
		t.Fatalf("expected 404 envelope, got %d %+v", resp.StatusCode, env)
	}
}

func TestBalanceProviderFailureHidesURL(t *testing.T) {
	node := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Method == "eth_chainId" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":` + string(req.ID) + `,"result":"0x539"}`))
			return
		}
		if hj, ok := w.(http.Hijacker); ok {
			if conn, _, err := hj.Hijack(); err == nil {
				conn.Close()
			}
		}
	}))
	defer node.Close()

	logger := zap.NewNop()
	client, err := chain.DialRPC(context.Background(), &config.ChainConfig{
		ProviderURL:    node.URL + "/v3/SECRETAPIKEY",
		RequestTimeout: 2 * time.Second,
	}, logger)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer client.Close()

	handler := handlers.NewLedgerHandler(service.NewLedgerService(client, nil, logger), logger)
	app := SetupRouter(handler, nil, config.ServerConfig{BodyLimit: 1024 * 1024}, logger)

	req := httptest.NewRequest(http.MethodGet, "/account/balance/0x1111111111111111111111111111111111111111", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if strings.Contains(string(body), "SECRETAPIKEY") || strings.Contains(string(body), node.URL) {
		t.Fatalf("provider url leaked: %s", body)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError || env.Code != "WEB3_8001" || env.Error != "Web3 request failed" {
		t.Fatalf("unexpected response %d %+v", resp.StatusCode, env)
	}
}
