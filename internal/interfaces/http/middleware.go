package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/canastillas-api/pkg/logger"
)

// CORS añade Access-Control-Allow-Origin: * a toda respuesta y contesta los
// preflight OPTIONS con 200. No se usa el middleware cors de fiber porque ese
// responde 204 al preflight y el frontend del dashboard trata cualquier código
// distinto de 200 como fallo.
func CORS() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Access-Control-Allow-Origin", "*")
		if c.Method() == fiber.MethodOptions {
			c.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Set("Access-Control-Allow-Headers", "Content-Type")
			return c.SendStatus(fiber.StatusOK)
		}
		return c.Next()
	}
}

// RequestLogger registra cada petición con un request_id (se respeta el
// X-Request-ID entrante si viene, si no se genera uno).
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		reqID := c.Get(fiber.HeaderXRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, reqID)

		err := c.Next()

		log.Info().
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(inicio)).
			Msg("request")
		return err
	}
}
