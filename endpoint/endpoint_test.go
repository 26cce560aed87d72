package endpoint_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/RobJacobson/wsdot-api-client/config"
	"github.com/RobJacobson/wsdot-api-client/endpoint"
	"github.com/RobJacobson/wsdot-api-client/fetch"
)

type routeResp struct {
	RouteID     int    `json:"RouteID"`
	Description string `json:"Description"`
}

// newTestFactory spins an httptest server and a factory pointed at it
// over the native strategy.
func newTestFactory(t *testing.T, apiPath string, handler http.HandlerFunc) *endpoint.Factory {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	strategy, err := fetch.Native()
	if err != nil {
		t.Fatalf("Native() error: %v", err)
	}

	cfg := config.Config{BaseURL: ts.URL, APIKey: "test-key"}
	f, err := endpoint.NewFactory(cfg, apiPath, endpoint.WithStrategy(strategy))
	if err != nil {
		t.Fatalf("NewFactory() error: %v", err)
	}

	return f
}

func TestDefine_NoParams(t *testing.T) {
	f := newTestFactory(t, "/ferries/api/schedule/rest", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ferries/api/schedule/rest/cacheflushdate" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.Query().Get("apiaccesscode") != "test-key" {
			t.Errorf("access code missing from query: %q", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`"/Date(1713744000000-0700)/"`))
	})

	cacheFlushDate := endpoint.Define[string](f, "/cacheflushdate")

	got, err := cacheFlushDate(context.Background())
	if err != nil {
		t.Fatalf("endpoint error: %v", err)
	}
	if got != "/Date(1713744000000-0700)/" {
		t.Errorf("got %q", got)
	}
}

func TestDefineWithParams_InterpolatesAndDecodes(t *testing.T) {
	f := newTestFactory(t, "/ferries/api/schedule/rest", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ferries/api/schedule/rest/routes/2024-01-15" {
			t.Errorf("path = %q, want interpolated trip date", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"RouteID":5,"Description":"Seattle / Bainbridge Island"}]`))
	})

	routes := endpoint.DefineWithParams[[]routeResp](f, "/routes/{TripDate}")

	got, err := routes(context.Background(), endpoint.Params{
		"TripDate": time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local),
	})
	if err != nil {
		t.Fatalf("endpoint error: %v", err)
	}

	want := []routeResp{{RouteID: 5, Description: "Seattle / Bainbridge Island"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestDefineWithParams_MismatchFailsBeforeNetwork(t *testing.T) {
	var hit bool
	f := newTestFactory(t, "/ferries/api/schedule/rest", func(w http.ResponseWriter, r *http.Request) {
		hit = true
		_, _ = w.Write([]byte(`[]`))
	})

	routes := endpoint.DefineWithParams[[]routeResp](f, "/routes/{TripDate}")

	_, err := routes(context.Background(), endpoint.Params{"RouteID": 5})
	if !errors.Is(err, endpoint.ErrTemplateMismatch) {
		t.Fatalf("error = %v, want ErrTemplateMismatch", err)
	}
	if hit {
		t.Error("request reached the network despite template mismatch")
	}
}

func TestDefineWithParams_TransportErrorPropagates(t *testing.T) {
	f := newTestFactory(t, "/ferries/api/vessels/rest", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	})

	locations := endpoint.Define[[]routeResp](f, "/vessellocations")

	_, err := locations(context.Background())
	if !errors.Is(err, fetch.ErrUnexpectedStatusCode) {
		t.Fatalf("error = %v, want ErrUnexpectedStatusCode unchanged", err)
	}
}

func TestDefineWithParams_MalformedJSON(t *testing.T) {
	f := newTestFactory(t, "/ferries/api/vessels/rest", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	locations := endpoint.Define[[]routeResp](f, "/vessellocations")

	if _, err := locations(context.Background()); err == nil {
		t.Error("expected decode error for malformed JSON")
	}
}

func TestNewFactory_InvalidConfig(t *testing.T) {
	_, err := endpoint.NewFactory(config.Config{BaseURL: "https://www.wsdot.wa.gov"}, "/ferries/api/schedule/rest")
	if err == nil {
		t.Error("expected error for config without access code")
	}
}

func TestDefine_LogModePassesThrough(t *testing.T) {
	var gotMode fetch.LogMode
	stub := func(ctx context.Context, rawURL string, mode fetch.LogMode) ([]byte, error) {
		gotMode = mode
		return []byte(`{}`), nil
	}

	cfg := config.Config{BaseURL: "https://example.test", APIKey: "k"}
	f, err := endpoint.NewFactory(cfg, "/ferries/api/schedule/rest", endpoint.WithStrategy(stub))
	if err != nil {
		t.Fatalf("NewFactory() error: %v", err)
	}

	ep := endpoint.Define[map[string]any](f, "/alerts")
	if _, err := ep(context.Background(), endpoint.WithLogMode(fetch.LogVerbose)); err != nil {
		t.Fatalf("endpoint error: %v", err)
	}
	if gotMode != fetch.LogVerbose {
		t.Errorf("mode = %v, want LogVerbose passed through untouched", gotMode)
	}
}
