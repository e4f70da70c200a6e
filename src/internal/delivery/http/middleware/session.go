package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	SessionHeader    = "X-Session-ID"
	sessionLocalsKey = "sessionID"
	maxSessionIDLen  = 128
)

// NewSession reads the session id header, issuing a fresh id when the client
// sent none. The id is echoed back on every response.
func NewSession() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id := ctx.Get(SessionHeader)
		if id == "" || len(id) > maxSessionIDLen {
			id = uuid.NewString()
		}
		ctx.Locals(sessionLocalsKey, id)
		ctx.Set(SessionHeader, id)
		return ctx.Next()
	}
}

func GetSessionID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(sessionLocalsKey).(string)
	return id
}
