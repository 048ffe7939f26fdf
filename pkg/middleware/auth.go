package middleware

import (
	"strings"

	"receiptchain/pkg/apperr"
	"receiptchain/pkg/auth"
	"receiptchain/pkg/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func AuthMiddleware(jwtManager *auth.JWTManager, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(fiber.HeaderAuthorization)
		if token == "" {
			logger.Warn("Missing authorization token", zap.String("path", c.Path()))
			return response.Fail(c, apperr.Unauthorized("Authorization token required"), "")
		}

		token = strings.TrimPrefix(token, "Bearer ")

		claims, err := jwtManager.ValidateToken(token)
		if err != nil {
			logger.Warn("Invalid token", zap.String("path", c.Path()), zap.Error(err))
			return response.Fail(c, apperr.Unauthorized("Invalid or expired token"), "")
		}

		c.Locals("subject", claims.Subject)
		c.Locals("scope", claims.Scope)

		return c.Next()
	}
}
