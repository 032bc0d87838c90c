package middleware

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Tracing returns the otelgin middleware followed by a handler that tags
// the span with the request ID. Spans go to the global tracer provider.
// Returns nil when disabled so it can be spread into router.Use.
func Tracing(serviceName string, enabled bool) []gin.HandlerFunc {
	if !enabled {
		return nil
	}
	return []gin.HandlerFunc{otelgin.Middleware(serviceName), annotateSpan}
}

func annotateSpan(c *gin.Context) {
	span := trace.SpanFromContext(c.Request.Context())
	if id := c.GetString(RequestIDKey); id != "" && span.IsRecording() {
		span.SetAttributes(attribute.String("request_id", id))
	}
	c.Next()
}
