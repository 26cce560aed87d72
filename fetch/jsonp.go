package fetch

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// jsonpStrategy issues a GET with a unique callback query parameter
// and strips the `callback(...)` wrapper from the response, returning
// the inner JSON. This is the wire format a browser consumes through
// an injected script tag; performing the same exchange over a plain
// GET lets non-browser runtimes (and the test-runner override)
// exercise JSONP endpoints without a DOM.
func jsonpStrategy(opts options) Strategy {
	return func(ctx context.Context, rawURL string, mode LogMode) ([]byte, error) {
		callback := callbackName()

		sep := "?"
		if strings.Contains(rawURL, "?") {
			sep = "&"
		}
		fullURL := rawURL + sep + "callback=" + callback

		ctx, span := opts.tracer.Start(ctx, "fetch.jsonp",
			trace.WithAttributes(
				attribute.String("url", rawURL),
				attribute.String("callback", callback)))
		defer span.End()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("instantiating request: %w", err)
		}

		req.Header.Set("Accept", "text/javascript, application/json")
		req.Header.Set("User-Agent", opts.userAgent)

		start := time.Now()
		body, status, err := execute(opts.client, req)
		if err != nil {
			return nil, err
		}

		payload, err := unwrapCallback(body, callback)
		if err != nil {
			return nil, err
		}

		span.SetAttributes(attribute.Int("status", status))
		if mode == LogVerbose {
			opts.logger.InfoContext(ctx, "fetch",
				"strategy", "jsonp",
				"url", rawURL,
				"callback", callback,
				"status", status,
				"bytes", len(payload),
				"elapsed", time.Since(start))
		}

		return payload, nil
	}
}

// callbackName generates a unique, identifier-safe callback name so
// concurrent requests never collide on the server side.
func callbackName() string {
	return "wsdot_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// unwrapCallback strips `name(` and `)` (plus an optional trailing
// semicolon) from the response body, returning the inner JSON.
func unwrapCallback(body []byte, name string) ([]byte, error) {
	s := strings.TrimSpace(string(body))
	s = strings.TrimSuffix(s, ";")

	inner, found := strings.CutPrefix(s, name+"(")
	if found {
		inner, found = strings.CutSuffix(inner, ")")
	}
	if !found {
		preview := s
		if len(preview) > maxErrBodySize {
			preview = preview[:maxErrBodySize]
		}

		return nil, &CallbackError{
			Callback: name,
			Body:     preview,
			Err:      ErrCallbackMismatch,
		}
	}

	return []byte(inner), nil
}
