package middleware

import (
	"context"
	"log/slog"
	"time"

	"proximity/config"
	deliverycontext "proximity/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// slowRequestThreshold marks requests that are logged outside debug mode
const slowRequestThreshold = 2 * time.Second

// LoggerMiddleware writes one line per request. In debug mode every request is
// logged; otherwise only server errors and slow requests, which is where a
// stalled webhook or push shows up.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		// Render the error here so the logged status is the one sent
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		if m.debug || c.Response().Status >= 500 || time.Since(start) >= slowRequestThreshold {
			m.logRequest(c, start, err)
		}

		return nil
	}
}

// logRequest logs request details
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	// Calculate latency
	latency := time.Since(start)

	// Prepare log fields
	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
		slog.String("time", start.Format(time.RFC3339)),
	}

	if operator := deliverycontext.GetOperator(c); operator != "" {
		fields = append(fields, slog.String("operator", operator))
	}

	// If there are query parameters, log them too
	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	// If there's an error, log error details
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	// Choose log level based on status code
	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	// Log the request
	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).LogAttrs(context.Background(), logLevel, "HTTP Request", fields...)
}
