// Package fetch selects and implements the transport used for every
// API request. Two interchangeable strategies exist: a native HTTP GET
// that returns the raw JSON body, and a JSONP-style GET that unwraps a
// callback-wrapped payload.
//
// Browsers cannot issue cross-origin requests to the WSDOT hosts
// because the APIs send no CORS headers; JSONP sidesteps that through
// script-tag loading semantics. Every other runtime prefers the
// simpler, more debuggable native path. Selection is driven by
// environment classification (see [Classify]) with an explicit
// override for exercising the JSONP path inside a test runner.
package fetch

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// LogMode controls how chatty a single fetch is. It is passed through
// the strategy untouched by the endpoint layer.
type LogMode int

const (
	// LogQuiet suppresses per-request logging.
	LogQuiet LogMode = iota
	// LogVerbose logs the URL, status, byte count, and elapsed time
	// of each request at info level.
	LogVerbose
)

// Strategy performs one GET against a fully built URL and returns the
// response payload as raw JSON bytes. Implementations add no retries,
// no recovery, and impose no timeouts beyond the injected client's.
type Strategy func(ctx context.Context, rawURL string, mode LogMode) ([]byte, error)

// envForceJSONP forces JSONP selection when set to the literal "true",
// regardless of classification. Test harnesses use it to exercise the
// JSONP code path from a non-browser runtime.
const envForceJSONP = "WSDOT_FORCE_JSONP"

// defaultUserAgent identifies the SDK on outgoing requests.
const defaultUserAgent = "wsdot-api-client/1.0"

// Option defines optional settings for building a strategy.
//
// WithHTTPClient injects a custom *http.Client (and with it, timeout
// policy). WithLogger injects a custom logger. WithTracer enables span
// creation around each fetch. WithProbe substitutes the ambient
// environment probe, letting tests simulate each classification
// deterministically. WithUserAgent overrides the User-Agent header.
type Option func(*options) error

type options struct {
	client    *http.Client
	logger    *slog.Logger
	tracer    trace.Tracer
	probe     Probe
	userAgent string
}

func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) error {
		if hc == nil {
			return errors.New("client must not be nil")
		}
		o.client = hc
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		if tracer == nil {
			return errors.New("tracer must not be nil")
		}
		o.tracer = tracer
		return nil
	}
}

func WithProbe(p Probe) Option {
	return func(o *options) error {
		if p == nil {
			return errors.New("probe must not be nil")
		}
		o.probe = p
		return nil
	}
}

func WithUserAgent(header string) Option {
	return func(o *options) error {
		o.userAgent = header
		return nil
	}
}

func applyOptions(optFns []Option) (options, error) {
	opts := options{
		client:    http.DefaultClient,
		logger:    slog.Default(),
		tracer:    noop.NewTracerProvider().Tracer("no-op tracer"),
		probe:     OSProbe{},
		userAgent: defaultUserAgent,
	}

	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return options{}, err
		}
	}

	return opts, nil
}

// Build selects a strategy for the ambient environment.
//
// The WSDOT_FORCE_JSONP=true override wins unconditionally. Otherwise
// web classification maps to JSONP; test, server, and anything
// unrecognized map to native. The result carries no state and may be
// memoized by the caller.
func Build(optFns ...Option) (Strategy, error) {
	opts, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}

	if v, ok := opts.probe.LookupEnv(envForceJSONP); ok && v == "true" {
		return jsonpStrategy(opts), nil
	}

	switch Classify(opts.probe) {
	case EnvWeb:
		return jsonpStrategy(opts), nil
	default:
		return nativeStrategy(opts), nil
	}
}

// Native builds the direct-request strategy explicitly, bypassing
// environment classification.
func Native(optFns ...Option) (Strategy, error) {
	opts, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}

	return nativeStrategy(opts), nil
}

// JSONP builds the callback-unwrapping strategy explicitly, bypassing
// environment classification.
func JSONP(optFns ...Option) (Strategy, error) {
	opts, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}

	return jsonpStrategy(opts), nil
}
