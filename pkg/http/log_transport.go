package http

import (
	"net/http"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type bodySizeContextKey struct{}

type logTransport struct {
	transport http.RoundTripper
}

// RoundTrip logs method, URL, payload size, status and latency. Headers and
// bodies are not logged since they may carry API keys and user text.
func (t *logTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	start := time.Now()

	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()),
	}
	if size, ok := ctx.Value(bodySizeContextKey{}).(int); ok {
		fields = append(fields, zap.Int("payload_bytes", size))
	}

	resp, err := t.transport.RoundTrip(req)

	fields = append(fields, zap.Duration("duration", time.Since(start)))
	if err != nil {
		ctxzap.Debug(ctx, "HTTP outbound request failed", append(fields, zap.Error(err))...)
		return nil, err
	}

	ctxzap.Debug(ctx, "HTTP outbound request", append(fields, zap.Int("status", resp.StatusCode))...)
	return resp, nil
}

// WithRequestLogging wraps the HTTP transport with request logging.
func WithRequestLogging() HttpOpts {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &logTransport{
			transport: rt,
		}
	})
}
