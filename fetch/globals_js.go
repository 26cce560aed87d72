//go:build js && wasm

package fetch

import "syscall/js"

// hasBrowserGlobals reports whether both window and document exist.
// Node-style wasm hosts expose neither; headless DOM runners expose
// both.
func hasBrowserGlobals() bool {
	window := js.Global().Get("window")
	document := js.Global().Get("document")
	return window.Truthy() && document.Truthy()
}

// browserUserAgent returns navigator.userAgent, or "" when absent.
func browserUserAgent() string {
	navigator := js.Global().Get("navigator")
	if !navigator.Truthy() {
		return ""
	}

	ua := navigator.Get("userAgent")
	if !ua.Truthy() {
		return ""
	}

	return ua.String()
}
