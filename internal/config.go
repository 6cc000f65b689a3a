package internal

import (
	"fmt"
	"log/slog"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Backends.
const (
	BackendFS  = "fs"
	BackendCLI = "cli"
)

// Transports.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Auth modes.
const (
	AuthModeDisabled = "disabled"
	AuthModeToken    = "token"
)

// Config represents the application configuration.
type Config struct {
	App   ApplicationConfig `yaml:"app"`
	Vault VaultConfig       `yaml:"vault"`
	CLI   CLIConfig         `yaml:"cli"`
	Auth  AuthConfig        `yaml:"auth"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if c.App.Backend == BackendFS {
		if err := c.Vault.Validate(); err != nil {
			return err
		}
	}
	if err := c.CLI.Validate(); err != nil {
		return err
	}
	return c.Auth.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel  slog.Level `yaml:"log_level"`
	Backend   string     `yaml:"backend"`
	Transport string     `yaml:"transport"`
	HTTP      HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Backend, validation.Required, validation.In(BackendFS, BackendCLI)),
		validation.Field(&c.Transport, validation.Required, validation.In(TransportStdio, TransportHTTP)),
	); err != nil {
		return err
	}
	if c.Transport == TransportHTTP {
		return c.HTTP.Validate()
	}
	return nil
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// VaultConfig holds the filesystem backend settings. Path is required for
// the fs backend and a missing or invalid directory is fatal at startup.
type VaultConfig struct {
	Path        string `yaml:"path"`
	Frontmatter bool   `yaml:"frontmatter"`
	DailyFolder string `yaml:"daily_folder"`
}

// Validate validates the vault configuration.
func (c *VaultConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// CLIConfig holds the external-binary backend settings.
type CLIConfig struct {
	Bin            string `yaml:"bin"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Validate validates the CLI configuration.
func (c *CLIConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Bin, validation.Required),
		validation.Field(&c.TimeoutSeconds, validation.Required, validation.Min(1), validation.Max(600)),
	)
}

// AuthConfig holds authentication configuration for the HTTP transport.
//
// Mode controls how authentication is enforced:
//   - "disabled" (default): no authentication required, suitable for local dev.
//   - "token": Bearer token authentication; Token must be non-empty.
type AuthConfig struct {
	Mode  string `yaml:"mode"`
	Token string `yaml:"token"`
}

// Validate validates the auth configuration.
func (c *AuthConfig) Validate() error {
	// Normalise empty mode to "disabled" for backward compatibility.
	if c.Mode == "" {
		c.Mode = AuthModeDisabled
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In(AuthModeDisabled, AuthModeToken)),
	); err != nil {
		return err
	}
	if c.Mode == AuthModeToken && c.Token == "" {
		return fmt.Errorf("auth: mode is %q but token is empty", AuthModeToken)
	}
	return nil
}

// AuthEnabled returns true when authentication is active.
func (c *AuthConfig) AuthEnabled() bool {
	return c.Mode == AuthModeToken
}

// NewDefaultConfig returns a new Config with sensible default values. The
// vault path falls back to the OBSIDIAN_VAULT_PATH environment variable.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel:  slog.LevelInfo,
			Backend:   BackendFS,
			Transport: TransportStdio,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Vault: VaultConfig{
			Path:        os.Getenv("OBSIDIAN_VAULT_PATH"),
			Frontmatter: true,
		},
		CLI: CLIConfig{
			Bin:            "obsidian",
			TimeoutSeconds: 30,
		},
		Auth: AuthConfig{
			Mode: AuthModeDisabled,
		},
	}
}
