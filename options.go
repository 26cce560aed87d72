package wsdot

import (
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/trace"

	"github.com/RobJacobson/wsdot-api-client/config"
	"github.com/RobJacobson/wsdot-api-client/fetch"
)

// Option defines optional settings for the client.
//
// WithAccessCode and WithBaseURL override the values read from the
// environment. WithStrategy bypasses environment-based transport
// selection entirely, which is how tests pin the client to a fake
// server.
type Option func(*options) error

type options struct {
	cfg        config.Config
	httpClient *http.Client
	logger     *slog.Logger
	tracer     trace.Tracer
	strategy   fetch.Strategy
	userAgent  string
}

// WithConfig replaces the environment-sourced configuration wholesale.
func WithConfig(cfg config.Config) Option {
	return func(o *options) error {
		o.cfg = cfg
		return nil
	}
}

// WithAccessCode sets the API access code.
func WithAccessCode(code string) Option {
	return func(o *options) error {
		if code == "" {
			return errors.New("access code must not be empty")
		}
		o.cfg.APIKey = code
		return nil
	}
}

// WithBaseURL points the client at a different host, typically a test
// double.
func WithBaseURL(baseURL string) Option {
	return func(o *options) error {
		if baseURL == "" {
			return errors.New("base URL must not be empty")
		}
		o.cfg.BaseURL = baseURL
		return nil
	}
}

// WithHTTPClient replaces the default http client and transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) error {
		if hc == nil {
			return errors.New("client must not be nil")
		}
		o.httpClient = hc
		return nil
	}
}

// WithLogger injects a custom logger into the client.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		o.logger = logger
		return nil
	}
}

// WithTracer wraps each fetch in a span from the given tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		if tracer == nil {
			return errors.New("tracer must not be nil")
		}
		o.tracer = tracer
		return nil
	}
}

// WithUserAgent adds a persistent `User-Agent` header to all
// outgoing requests on the client.
func WithUserAgent(header string) Option {
	return func(o *options) error {
		o.userAgent = header
		return nil
	}
}

// WithStrategy pins all services to the given fetch strategy.
func WithStrategy(s fetch.Strategy) Option {
	return func(o *options) error {
		if s == nil {
			return errors.New("strategy must not be nil")
		}
		o.strategy = s
		return nil
	}
}
