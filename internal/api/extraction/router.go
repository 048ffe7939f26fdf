package extraction

import (
	"receiptchain/docs/extraction"
	"receiptchain/internal/api/handlers"
	"receiptchain/pkg/config"
	"receiptchain/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	recHandler *handlers.RecognitionHandler,
	serverCfg config.ServerConfig,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "extraction-gateway",
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
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(logger.New())

	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", recHandler.Health)
	app.Get("/config", recHandler.Config)

	recognize := app.Group("/recognize")
	recognize.Post("/receipt", recHandler.RecognizeReceipt)
	recognize.Post("/payment", recHandler.RecognizePayment)
	recognize.Post("/document", recHandler.RecognizeDocument)

	recognition := app.Group("/recognition")
	recognition.Get("/statistics", recHandler.Statistics)
	recognition.Get("/:id", recHandler.GetRecognition)

	return app
}
