package internal

import (
	"strings"
	"testing"
)

func TestDefaultConfigIsValidWithVaultPath(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Vault.Path = t.TempDir()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestFSBackendRequiresVaultPath(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Vault.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Error("fs backend without vault path should fail validation")
	}
}

func TestCLIBackendSkipsVaultValidation(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.App.Backend = BackendCLI
	cfg.Vault.Path = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("cli backend should not require vault path: %v", err)
	}
}

func TestBackendEnum(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Vault.Path = "/tmp/vault"
	cfg.App.Backend = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown backend accepted")
	}
}

func TestTransportEnum(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Vault.Path = "/tmp/vault"
	cfg.App.Transport = "smoke-signals"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown transport accepted")
	}
}

func TestHTTPPortRange(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Vault.Path = "/tmp/vault"
	cfg.App.Transport = TransportHTTP
	cfg.App.HTTP.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Error("port 0 accepted for http transport")
	}

	// Stdio transport does not care about the port.
	cfg.App.Transport = TransportStdio
	if err := cfg.Validate(); err != nil {
		t.Errorf("stdio transport should ignore port: %v", err)
	}
}

func TestCLITimeoutRange(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Vault.Path = "/tmp/vault"
	cfg.CLI.TimeoutSeconds = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero timeout accepted")
	}
	cfg.CLI.TimeoutSeconds = 1000
	if err := cfg.Validate(); err == nil {
		t.Error("oversized timeout accepted")
	}
}

func TestAuthTokenMode(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Vault.Path = "/tmp/vault"
	cfg.Auth.Mode = AuthModeToken
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "token is empty") {
		t.Errorf("err = %v", err)
	}

	cfg.Auth.Token = "secret"
	if err := cfg.Validate(); err != nil {
		t.Errorf("token mode with token: %v", err)
	}
	if !cfg.Auth.AuthEnabled() {
		t.Error("AuthEnabled = false")
	}
}

func TestAuthEmptyModeNormalized(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Vault.Path = "/tmp/vault"
	cfg.Auth.Mode = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Auth.Mode != AuthModeDisabled {
		t.Errorf("mode = %q", cfg.Auth.Mode)
	}
	if cfg.Auth.AuthEnabled() {
		t.Error("disabled mode reports enabled")
	}
}

func TestAddress(t *testing.T) {
	c := HTTPConfig{Port: 9090}
	if c.Address() != ":9090" {
		t.Errorf("address = %q", c.Address())
	}
}
