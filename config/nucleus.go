package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Environment selects which Nucleus deployment the client talks to
type Environment int

const (
	Sandbox Environment = iota
	Production
)

const (
	SandboxBaseURL    = "https://sandbox.usenucleus.io"
	ProductionBaseURL = "https://api.usenucleus.io"

	DefaultTimeout = 30 * time.Second
)

// BaseURL returns the provider URL for the environment
func (e Environment) BaseURL() string {
	switch e {
	case Production:
		return ProductionBaseURL
	case Sandbox:
		return SandboxBaseURL
	}
	panic("invalid nucleus environment")
}

func (e Environment) String() string {
	switch e {
	case Production:
		return "production"
	case Sandbox:
		return "sandbox"
	}
	return fmt.Sprintf("Environment(%d)", int(e))
}

// UnmarshalText parses NUCLEUS_ENVIRONMENT values
func (e *Environment) UnmarshalText(text []byte) error {
	val := strings.ToLower(strings.TrimSpace(string(text)))

	switch val {
	case "sandbox", "":
		*e = Sandbox
	case "production", "prod":
		*e = Production
	default:
		return fmt.Errorf("invalid NUCLEUS_ENVIRONMENT: %q (allowed: sandbox, production)", val)
	}
	return nil
}

// NucleusConfiguration defines the Nucleus API client settings.
// A configuration is built once and must not be mutated after a client is created from it.
type NucleusConfiguration struct {
	APIKey      string
	Environment Environment
	BaseURL     string
	Timeout     time.Duration
}

// ResolvedBaseURL returns the override when set, otherwise the environment URL
func (c NucleusConfiguration) ResolvedBaseURL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	return c.Environment.BaseURL()
}

// Validate reports configuration that cannot produce a working client
func (c NucleusConfiguration) Validate() error {
	if c.APIKey == "" {
		return errors.New("nucleus: API key is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("nucleus: timeout must be positive, got %s", c.Timeout)
	}
	if c.Environment != Sandbox && c.Environment != Production {
		return fmt.Errorf("nucleus: unknown environment %d", int(c.Environment))
	}
	return nil
}

// NucleusConfig reads the Nucleus client configuration from viper
func NucleusConfig() (*NucleusConfiguration, error) {
	viper.SetDefault("NUCLEUS_ENVIRONMENT", "sandbox")
	viper.SetDefault("NUCLEUS_TIMEOUT", int(DefaultTimeout/time.Second))

	var env Environment
	if err := env.UnmarshalText([]byte(viper.GetString("NUCLEUS_ENVIRONMENT"))); err != nil {
		return nil, err
	}

	return &NucleusConfiguration{
		APIKey:      viper.GetString("NUCLEUS_API_KEY"),
		Environment: env,
		BaseURL:     viper.GetString("NUCLEUS_BASE_URL"),
		Timeout:     time.Duration(viper.GetInt("NUCLEUS_TIMEOUT")) * time.Second,
	}, nil
}
