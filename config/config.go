// Package config supplies the two ambient inputs every endpoint needs:
// the API host and the access credential. Both are sourced from process
// environment variables and validated before any request is built.
package config

import (
	"os"
)

const (
	envBaseURL    = "WSDOT_BASE_URL"
	envAccessCode = "WSDOT_ACCESS_CODE"

	// DefaultBaseURL is the production WSDOT host. Both API families
	// (Traffic and Ferries) are served from it.
	DefaultBaseURL = "https://www.wsdot.wa.gov"
)

// Config carries the base URL and API key consumed by the URL builder.
type Config struct {
	// BaseURL is the scheme+host prefix of every request,
	// without a trailing slash.
	BaseURL string `json:"baseUrl" validate:"required,url"`

	// APIKey is the WSDOT access code, passed as a query parameter
	// named per API family (apiaccesscode or AccessCode).
	APIKey string `json:"apiKey" validate:"required"`
}

// FromEnv builds a Config from WSDOT_BASE_URL and WSDOT_ACCESS_CODE.
// BaseURL falls back to the production host; the access code has no
// default and must be validated by the caller.
func FromEnv() Config {
	return Config{
		BaseURL: envOrDefault(envBaseURL, DefaultBaseURL),
		APIKey:  os.Getenv(envAccessCode),
	}
}

func envOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}
