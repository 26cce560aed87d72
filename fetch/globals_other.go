//go:build !(js && wasm)

package fetch

// Browser globals never exist outside a js/wasm build.

func hasBrowserGlobals() bool { return false }

func browserUserAgent() string { return "" }
