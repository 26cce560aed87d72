package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// nativeStrategy issues a direct GET and returns the body bytes.
func nativeStrategy(opts options) Strategy {
	return func(ctx context.Context, rawURL string, mode LogMode) ([]byte, error) {
		ctx, span := opts.tracer.Start(ctx, "fetch.native",
			trace.WithAttributes(attribute.String("url", rawURL)))
		defer span.End()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, fmt.Errorf("instantiating request: %w", err)
		}

		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", opts.userAgent)
		req.Header.Set("X-Request-ID", uuid.NewString())

		start := time.Now()
		body, status, err := execute(opts.client, req)
		if err != nil {
			return nil, err
		}

		span.SetAttributes(attribute.Int("status", status))
		if mode == LogVerbose {
			opts.logger.InfoContext(ctx, "fetch",
				"strategy", "native",
				"url", rawURL,
				"status", status,
				"bytes", len(body),
				"elapsed", time.Since(start))
		}

		return body, nil
	}
}

// execute runs the request, validates the status code, and reads the
// full body. Shared by both strategies.
func execute(hc *http.Client, req *http.Request) ([]byte, int, error) {
	resp, err := hc.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("exec http do: %w", err)
	}

	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrBodySize))
		if err != nil {
			b = []byte("unable to read body")
		}

		return nil, resp.StatusCode, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       string(b),
			Err:        ErrUnexpectedStatusCode,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reading response body: %w", err)
	}

	return body, resp.StatusCode, nil
}
