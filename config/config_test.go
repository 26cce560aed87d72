package config_test

import (
	"errors"
	"testing"

	"github.com/RobJacobson/wsdot-api-client/config"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("WSDOT_BASE_URL", "")
	t.Setenv("WSDOT_ACCESS_CODE", "test-key-123")

	cfg := config.FromEnv()

	if cfg.BaseURL != config.DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, config.DefaultBaseURL)
	}
	if cfg.APIKey != "test-key-123" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "test-key-123")
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("WSDOT_BASE_URL", "http://localhost:8080")
	t.Setenv("WSDOT_ACCESS_CODE", "abc")

	cfg := config.FromEnv()

	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q, want override", cfg.BaseURL)
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := config.Config{BaseURL: "https://www.wsdot.wa.gov", APIKey: "key"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidate_MissingAPIKey(t *testing.T) {
	cfg := config.Config{BaseURL: "https://www.wsdot.wa.gov"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing access code")
	}

	var fe config.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %T", err)
	}

	fields := fe.Fields()
	if fields["apiKey"] != "This field is required" {
		t.Errorf("apiKey error = %q, want required message", fields["apiKey"])
	}
}

func TestValidate_BadBaseURL(t *testing.T) {
	cfg := config.Config{BaseURL: "not a url", APIKey: "key"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for malformed base URL")
	}

	var fe config.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %T", err)
	}
	if _, ok := fe.Fields()["baseUrl"]; !ok {
		t.Errorf("expected baseUrl field error, got %v", fe.Fields())
	}
}
