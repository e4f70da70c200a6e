package middleware

import (
	"fmt"
	"kerjabantu-service/src/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
)

const slowRequest = time.Second

// NewLogger logs every request with its status and latency. Requests slower
// than a second go to the slow log.
func NewLogger(logger log.Log) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		latency := time.Since(start)

		message := fmt.Sprintf("%s %s %d %s", ctx.Method(), ctx.Path(), ctx.Response().StatusCode(), latency)
		meta := GetSessionID(ctx)
		if latency > slowRequest {
			logger.Slow("http", message, "request", meta)
		} else {
			logger.Info("http", message, "request", meta)
		}
		return err
	}
}
