// Package wsdot is a typed client for the Washington State DOT
// traveler APIs and the Washington State Ferries (WSF) APIs.
//
// # Building a Client
//
// Use [NewClient] with functional options. The access code comes from
// the WSDOT_ACCESS_CODE environment variable unless set explicitly:
//
//	c, err := wsdot.NewClient(
//		wsdot.WithAccessCode("your-access-code"),
//	)
//
// # Calling Endpoints
//
// Each API family hangs off the client as a typed service:
//
//	routes, err := c.Schedule.Routes(ctx, time.Now())
//	locations, err := c.Vessels.VesselLocations(ctx)
//	cameras, err := c.Traffic.Cameras(ctx)
//
// # Transports
//
// Requests normally go over a plain HTTP GET. Inside a browser
// runtime (js/wasm) the client switches to a JSONP-style callback
// request, because the upstream services do not send CORS headers.
// Setting WSDOT_FORCE_JSONP=true forces the JSONP path everywhere,
// which is how the JSONP code is exercised in tests.
package wsdot

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/RobJacobson/wsdot-api-client/config"
	"github.com/RobJacobson/wsdot-api-client/endpoint"
	"github.com/RobJacobson/wsdot-api-client/fetch"
	"github.com/RobJacobson/wsdot-api-client/schedule"
	"github.com/RobJacobson/wsdot-api-client/traffic"
	"github.com/RobJacobson/wsdot-api-client/vessels"
)

// Client bundles one typed service per API family. All services share
// the same configuration and fetch strategy. Safe for concurrent use.
type Client struct {
	Schedule *schedule.API
	Vessels  *vessels.API
	Traffic  *traffic.API
}

// NewClient builds a Client from environment configuration plus the
// provided options.
func NewClient(optFns ...Option) (*Client, error) {
	opts := options{cfg: config.FromEnv()}
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying client option: %w", err)
		}
	}

	if opts.httpClient == nil {
		opts.httpClient = defaultHTTPClient()
	}

	endpointOpts := []endpoint.Option{
		endpoint.WithFetchOptions(opts.fetchOpts()...),
	}
	if opts.strategy != nil {
		endpointOpts = append(endpointOpts, endpoint.WithStrategy(opts.strategy))
	}

	sched, err := schedule.New(opts.cfg, endpointOpts...)
	if err != nil {
		return nil, fmt.Errorf("building schedule service: %w", err)
	}
	vess, err := vessels.New(opts.cfg, endpointOpts...)
	if err != nil {
		return nil, fmt.Errorf("building vessels service: %w", err)
	}
	traf, err := traffic.New(opts.cfg, endpointOpts...)
	if err != nil {
		return nil, fmt.Errorf("building traffic service: %w", err)
	}

	return &Client{
		Schedule: sched,
		Vessels:  vess,
		Traffic:  traf,
	}, nil
}

// defaultHTTPClient sets a default *http.Client and *http.Transport,
// which can be replaced via WithHTTPClient.
func defaultHTTPClient() *http.Client {
	baseTransport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: 5 * time.Second,
		}).DialContext,
		MaxIdleConns: 5,
	}

	return &http.Client{
		Transport: baseTransport,
		Timeout:   10 * time.Second,
	}
}

// fetchOpts translates the applied client options into fetch options.
func (o options) fetchOpts() []fetch.Option {
	fo := []fetch.Option{fetch.WithHTTPClient(o.httpClient)}
	if o.logger != nil {
		fo = append(fo, fetch.WithLogger(o.logger))
	}
	if o.tracer != nil {
		fo = append(fo, fetch.WithTracer(o.tracer))
	}
	if o.userAgent != "" {
		fo = append(fo, fetch.WithUserAgent(o.userAgent))
	}
	return fo
}
