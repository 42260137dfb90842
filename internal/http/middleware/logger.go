package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hashicorp/go-hclog"
	"go.opentelemetry.io/otel/trace"
)

// ErrorLocalKey holds an internal error message that handlers answered with a generic 500.
const ErrorLocalKey = "error"

// Logger logs each HTTP request as one structured line with
// request_id, method, path, status and latency (milliseconds, float).
// The authenticated user id and trace id are added when present.
func Logger(log hclog.Logger) fiber.Handler {
	log = log.Named("http")

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		status := c.Response().StatusCode()
		latency := float64(time.Since(start).Microseconds()) / 1000

		fields := []any{
			"request_id", rid,
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", latency,
		}
		if uid, ok := c.Locals(UserIDLocalKey).(string); ok && uid != "" {
			fields = append(fields, "user_id", uid)
		}
		if sc := trace.SpanContextFromContext(c.UserContext()); sc.IsValid() {
			fields = append(fields, "trace_id", sc.TraceID().String())
		}
		if msg, ok := c.Locals(ErrorLocalKey).(string); ok && msg != "" {
			fields = append(fields, "error", msg)
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			log.Error("request", fields...)
		case status >= fiber.StatusBadRequest:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}

		return err
	}
}
