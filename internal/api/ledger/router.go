package ledger

import (
	"receiptchain/docs/ledger"
	"receiptchain/internal/api/handlers"
	"receiptchain/pkg/auth"
	"receiptchain/pkg/config"
	"receiptchain/pkg/middleware"
	"receiptchain/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// SetupRouter builds the ledger app. A nil jwtManager leaves every route open.
func SetupRouter(
	ledgerHandler *handlers.LedgerHandler,
	jwtManager *auth.JWTManager,
	serverCfg config.ServerConfig,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "ledger-gateway",
		BodyLimit:    serverCfg.BodyLimit,
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		ErrorHandler: response.ErrorHandler(appLogger),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", ledgerHandler.Health)

	// Auth is attached per group so unmatched paths still get the 404 envelope
	var guard []fiber.Handler
	if jwtManager != nil {
		guard = append(guard, middleware.AuthMiddleware(jwtManager, appLogger))
	} else {
		appLogger.Warn("JWT_SECRET_KEY not set, ledger routes are unauthenticated")
	}

	account := app.Group("/account", guard...)
	account.Post("/create", ledgerHandler.CreateAccount)
	account.Get("/balance/:address", ledgerHandler.GetBalance)

	bill := app.Group("/bill", guard...)
	bill.Post("/create", ledgerHandler.CreateBill)
	bill.Get("/:billId", ledgerHandler.GetBill)

	app.Group("/transaction", guard...).Post("/add", ledgerHandler.AddTransaction)

	payment := app.Group("/payment", guard...)
	payment.Post("/record", ledgerHandler.RecordPayment)
	payment.Get("/:paymentId", ledgerHandler.GetPayment)

	app.Group("/contract", guard...).Post("/deploy", ledgerHandler.DeployContract)
	app.Group("/gas", guard...).Post("/estimate", ledgerHandler.EstimateGas)

	return app
}
