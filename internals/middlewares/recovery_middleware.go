package middlewares

import (
	"fmt"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware menangkap panic dan mengembalikan error 500
func RecoveryMiddleware(logger kitlog.Logger) fiber.Handler {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			level.Error(logger).Log("msg", "panic", "path", c.Path(), "reqid", c.Locals(LocalRequestID), "err", fmt.Sprint(e))
		},
	})
}
