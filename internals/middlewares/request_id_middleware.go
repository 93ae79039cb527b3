package middlewares

import (
	"context"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	LocalRequestID  = "reqid"
)

// RequestID: Request-ID + timing + timeout guard untuk user context.
// Timeout harus cukup untuk satu call ke API + satu refresh + retry.
func RequestID(timeout time.Duration, logger kitlog.Logger) fiber.Handler {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(HeaderRequestID, id)
		c.Locals(LocalRequestID, id)

		start := time.Now()
		ctx := c.UserContext()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		c.SetUserContext(ctx)

		err := c.Next()
		level.Debug(logger).Log("reqid", id, "method", c.Method(), "path", c.OriginalURL(),
			"status", c.Response().StatusCode(), "dur", time.Since(start))
		return err
	}
}
