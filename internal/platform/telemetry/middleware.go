package telemetry

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotevault/internal/platform/logging"
)

const instrumentationName = "github.com/jsamuelsen/quotevault/internal/platform/telemetry"

type serverMetrics struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
	active   metric.Int64UpDownCounter
}

func newServerMetrics() (*serverMetrics, error) {
	meter := otel.Meter(instrumentationName)

	duration, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	total, err := meter.Int64Counter("http.server.request.total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	active, err := meter.Int64UpDownCounter("http.server.active_requests",
		metric.WithDescription("Number of in-flight HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	return &serverMetrics{duration: duration, total: total, active: active}, nil
}

// Middleware returns the otelgin tracing middleware followed by request
// metrics. The trace ID is echoed in X-Trace-ID and added to the context logger.
func Middleware(serviceName string) []gin.HandlerFunc {
	m, err := newServerMetrics()
	if err != nil {
		otel.Handle(err)
	}

	return []gin.HandlerFunc{otelgin.Middleware(serviceName), m.handle}
}

func (m *serverMetrics) handle(c *gin.Context) {
	if m == nil {
		c.Next()
		return
	}

	start := time.Now()
	ctx := c.Request.Context()
	route := attribute.String("http.route", c.FullPath())
	method := attribute.String("http.method", c.Request.Method)

	m.active.Add(ctx, 1, metric.WithAttributes(method, route))
	defer m.active.Add(ctx, -1, metric.WithAttributes(method, route))

	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.HasTraceID() {
		c.Header("X-Trace-ID", sc.TraceID().String())
		c.Request = c.Request.WithContext(logging.WithTraceID(ctx, sc.TraceID().String()))
	}

	c.Next()

	attrs := metric.WithAttributes(method, route, attribute.Int("http.status_code", c.Writer.Status()))
	m.duration.Record(ctx, time.Since(start).Seconds(), attrs)
	m.total.Add(ctx, 1, attrs)
}
