package config

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/kbukum/idprovider/claims"
	"github.com/kbukum/idprovider/logger"
	"github.com/kbukum/idprovider/provider"
	"github.com/kbukum/idprovider/validation"
)

// Config is the idpctl configuration.
type Config struct {
	Name        string        `yaml:"name" mapstructure:"name"`
	Environment string        `yaml:"environment" mapstructure:"environment"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`

	// RedirectURL is the engine callback used when rendering the oauth2 config.
	RedirectURL string         `yaml:"redirect_url" mapstructure:"redirect_url" validate:"omitempty,http_url"`
	MonoCloud   ProviderConfig `yaml:"monocloud" mapstructure:"monocloud"`
}

// ProviderConfig is the file/env form of provider.Options.
type ProviderConfig struct {
	ClientID     string             `yaml:"client_id" mapstructure:"client_id" json:"client_id"`
	ClientSecret string             `yaml:"client_secret" mapstructure:"client_secret" json:"-"`
	Issuer       string             `yaml:"issuer" mapstructure:"issuer" json:"issuer" validate:"omitempty,http_url"`
	Endpoints    provider.Endpoints `yaml:"endpoints" mapstructure:"endpoints" json:"endpoints"`
	Scopes       []string           `yaml:"scopes" mapstructure:"scopes" json:"scopes"`

	// ClaimsFile points to a JSON claim-shape extension.
	ClaimsFile string         `yaml:"claims_file" mapstructure:"claims_file" json:"claims_file" validate:"omitempty,file"`
	Extra      map[string]any `yaml:"extra" mapstructure:"extra" json:"extra"`
}

// ApplyDefaults applies default values.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "idpctl"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Debug && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the configuration. Provider credentials are left to
// provider.Options.Validate so that commands not talking to the provider
// work without them.
func (c *Config) Validate() error {
	validEnvs := []string{"development", "staging", "production"}
	if !slices.Contains(validEnvs, c.Environment) {
		return fmt.Errorf("config.environment must be one of %v (got: %s)", validEnvs, c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := validation.Validate(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ProviderOptions converts a ProviderConfig into provider options for
// profile type P, loading the claim-shape extension when configured.
func ProviderOptions[P any](c ProviderConfig) (provider.Options[P], error) {
	opts := provider.Options[P]{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Issuer:       c.Issuer,
		Endpoints:    c.Endpoints,
		Scopes:       slices.Clone(c.Scopes),
		Extra:        c.Extra,
	}
	if c.ClaimsFile != "" {
		shape, err := LoadShape(c.ClaimsFile)
		if err != nil {
			return opts, err
		}
		opts.Claims = shape
	}
	return opts, nil
}

// LoadShape reads a JSON claim shape from path and validates it.
func LoadShape(path string) (*claims.Shape, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read claim shape %s: %w", path, err)
	}
	var shape claims.Shape
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, fmt.Errorf("decode claim shape %s: %w", path, err)
	}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("claim shape %s: %w", path, err)
	}
	return &shape, nil
}
