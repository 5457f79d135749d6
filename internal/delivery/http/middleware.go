package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/orbitwatch/backend/internal/logging"
	"github.com/orbitwatch/backend/internal/observability"
)

const requestIDKey = "requestid"

// RequestContext attaches a request-scoped logger and a server span to the
// user context so that services log and trace under the request id.
func RequestContext(log logging.Logger) fiber.Handler {
	tracer := otel.Tracer("github.com/orbitwatch/backend/internal/delivery/http")

	return func(c *fiber.Ctx) error {
		rid, _ := c.Locals(requestIDKey).(string)

		ctx, span := tracer.Start(c.UserContext(), c.Method()+" "+c.Path(), trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()
		span.SetAttributes(
			attribute.String("http.method", c.Method()),
			attribute.String("http.target", c.OriginalURL()),
			attribute.String("request.id", rid),
		)

		ctx = logging.ContextWithLogger(ctx, log.With(logging.String("request_id", rid)))
		c.SetUserContext(ctx)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = StatusFor(err)
		}
		span.SetName(c.Method() + " " + routeOf(c, err))
		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= fiber.StatusInternalServerError {
			span.SetStatus(codes.Error, fmt.Sprintf("status %d", status))
		}
		return err
	}
}

// Metrics records request counts and latency per matched route
func Metrics(m *observability.Collector) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = StatusFor(err)
		}
		m.ObserveHTTP(routeOf(c, err), c.Method(), status, time.Since(start))
		return err
	}
}

// routeOf returns the matched route template, or "" when nothing matched
func routeOf(c *fiber.Ctx, err error) string {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code == fiber.StatusNotFound {
		return ""
	}
	return c.Route().Path
}
