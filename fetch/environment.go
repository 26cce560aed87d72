package fetch

import (
	"os"
	"strings"
)

// Environment classifies the runtime context. The classification is
// derived from ambient signals on every call, never stored.
type Environment int

const (
	// EnvServer is any non-browser runtime without test markers.
	EnvServer Environment = iota
	// EnvWeb is a real browser: window and document globals present.
	EnvWeb
	// EnvTest is a test runner, including headless DOM runners
	// (jsdom, happy-dom) that expose browser-like globals.
	EnvTest
)

func (e Environment) String() string {
	switch e {
	case EnvWeb:
		return "web"
	case EnvTest:
		return "test"
	default:
		return "server"
	}
}

const (
	// envTestMarker classifies as test when set to the literal "test".
	envTestMarker = "GO_ENV"
	// envWorkerID classifies as test when present with any value,
	// including empty. Parallel test harnesses set a worker ID per
	// process.
	envWorkerID = "TEST_WORKER_ID"
)

// Probe answers questions about the ambient environment. Sniffing
// process variables and browser globals is inherently impure, so the
// queries sit behind this interface and tests substitute their own.
type Probe interface {
	// LookupEnv reports a process environment variable and whether
	// it is set at all.
	LookupEnv(key string) (string, bool)

	// HasBrowserGlobals reports whether both a window-like and a
	// document-like global exist.
	HasBrowserGlobals() bool

	// UserAgent returns the browser user-agent string, or "" when
	// no browser globals exist.
	UserAgent() string
}

// OSProbe is the production Probe. Environment variables come from the
// process; browser globals resolve through build-tagged helpers that
// consult syscall/js under js/wasm and report absent everywhere else.
type OSProbe struct{}

func (OSProbe) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

func (OSProbe) HasBrowserGlobals() bool { return hasBrowserGlobals() }
func (OSProbe) UserAgent() string       { return browserUserAgent() }

// Classify derives the environment from the probe. Test signals are
// checked first so headless DOM test runners classify as test, not
// web. Pure with respect to the probe; no side effects.
func Classify(p Probe) Environment {
	if v, ok := p.LookupEnv(envTestMarker); ok && v == "test" {
		return EnvTest
	}
	if _, ok := p.LookupEnv(envWorkerID); ok {
		return EnvTest
	}

	if p.HasBrowserGlobals() {
		ua := strings.ToLower(p.UserAgent())
		if strings.Contains(ua, "jsdom") || strings.Contains(ua, "happy-dom") {
			return EnvTest
		}
		return EnvWeb
	}

	return EnvServer
}
