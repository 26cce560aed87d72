// Package endpoint turns declarative (template, parameter, response)
// triples into typed request functions. A [Factory] binds one fetch
// strategy and one API path; [Define] and [DefineWithParams] produce
// the per-endpoint funcs the API packages expose.
package endpoint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/RobJacobson/wsdot-api-client/config"
	"github.com/RobJacobson/wsdot-api-client/fetch"
)

// Factory binds an API path and a single fetch strategy, selected once
// at construction. Safe for concurrent use; it holds no mutable state.
type Factory struct {
	cfg      config.Config
	apiPath  string
	strategy fetch.Strategy
}

// Option defines optional settings for building a Factory.
//
// WithStrategy bypasses environment-based selection entirely.
// WithFetchOptions forwards options to [fetch.Build] (http client,
// logger, tracer, probe).
type Option func(*factoryOpts) error

type factoryOpts struct {
	strategy  fetch.Strategy
	fetchOpts []fetch.Option
}

func WithStrategy(s fetch.Strategy) Option {
	return func(o *factoryOpts) error {
		if s == nil {
			return errors.New("strategy must not be nil")
		}
		o.strategy = s
		return nil
	}
}

func WithFetchOptions(opts ...fetch.Option) Option {
	return func(o *factoryOpts) error {
		o.fetchOpts = append(o.fetchOpts, opts...)
		return nil
	}
}

// NewFactory validates the config and selects the fetch strategy once,
// binding both with apiPath into every endpoint func defined from it.
func NewFactory(cfg config.Config, apiPath string, optFns ...Option) (*Factory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	var opts factoryOpts
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying factory option: %w", err)
		}
	}

	strategy := opts.strategy
	if strategy == nil {
		var err error
		strategy, err = fetch.Build(opts.fetchOpts...)
		if err != nil {
			return nil, fmt.Errorf("selecting fetch strategy: %w", err)
		}
	}

	return &Factory{
		cfg:      cfg,
		apiPath:  apiPath,
		strategy: strategy,
	}, nil
}

// CallOption defines per-invocation settings for an endpoint func.
//
// WithLogMode passes a log mode through to the fetch strategy.
type CallOption func(*callOpts)

type callOpts struct {
	mode fetch.LogMode
}

func WithLogMode(mode fetch.LogMode) CallOption {
	return func(o *callOpts) {
		o.mode = mode
	}
}

// Define produces a typed request func for an endpoint template with
// no placeholders. The caller supplies only a context and optional
// call options.
func Define[T any](f *Factory, template string) func(context.Context, ...CallOption) (T, error) {
	run := DefineWithParams[T](f, template)

	return func(ctx context.Context, optFns ...CallOption) (T, error) {
		return run(ctx, nil, optFns...)
	}
}

// DefineWithParams produces a typed request func for a parameterized
// endpoint template. Each call interpolates the params, builds the
// full URL, delegates to the bound strategy, and decodes the JSON
// response into T. Interpolation and transport failures propagate to
// the caller unchanged; no retry or recovery happens here.
func DefineWithParams[T any](f *Factory, template string) func(context.Context, Params, ...CallOption) (T, error) {
	return func(ctx context.Context, params Params, optFns ...CallOption) (T, error) {
		var zero T

		var opts callOpts
		for _, opt := range optFns {
			opt(&opts)
		}

		path, err := Interpolate(template, params)
		if err != nil {
			return zero, err
		}

		body, err := f.strategy(ctx, BuildURL(f.cfg, f.apiPath, path), opts.mode)
		if err != nil {
			return zero, err
		}

		var result T
		if err := json.Unmarshal(body, &result); err != nil {
			return zero, fmt.Errorf("decoding body: %w", err)
		}

		return result, nil
	}
}
