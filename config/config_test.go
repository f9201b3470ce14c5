package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/kbukum/idprovider/claims"
)

func TestConfigApplyDefaults(t *testing.T) {
	t.Run("empty config", func(t *testing.T) {
		var cfg Config
		cfg.ApplyDefaults()
		if cfg.Name != "idpctl" {
			t.Errorf("expected name 'idpctl', got %q", cfg.Name)
		}
		if cfg.Environment != "development" {
			t.Errorf("expected 'development', got %q", cfg.Environment)
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("expected log level 'info', got %q", cfg.Logging.Level)
		}
	})

	t.Run("debug raises log level", func(t *testing.T) {
		cfg := Config{Debug: true}
		cfg.ApplyDefaults()
		if cfg.Logging.Level != "debug" {
			t.Errorf("expected log level 'debug', got %q", cfg.Logging.Level)
		}
	})

	t.Run("explicit level wins over debug", func(t *testing.T) {
		cfg := Config{Debug: true}
		cfg.Logging.Level = "warn"
		cfg.ApplyDefaults()
		if cfg.Logging.Level != "warn" {
			t.Errorf("expected log level 'warn', got %q", cfg.Logging.Level)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		var cfg Config
		cfg.ApplyDefaults()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"issuer url", func(c *Config) { c.MonoCloud.Issuer = "https://tenant.monocloud.example" }, ""},
		{"bad environment", func(c *Config) { c.Environment = "qa" }, "config.environment must be one of"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "config.logging"},
		{"bad issuer", func(c *Config) { c.MonoCloud.Issuer = "tenant.monocloud.example" }, "monocloud.issuer: must be a valid URL"},
		{"bad redirect", func(c *Config) { c.RedirectURL = "callback" }, "redirect_url: must be a valid URL"},
		{"missing claims file", func(c *Config) { c.MonoCloud.ClaimsFile = "/nonexistent/claims.json" }, "monocloud.claims_file: must be an existing file"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %q", tc.wantErr, err.Error())
			}
		})
	}
}

func TestLoadConfigWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "idpctl.yml")

	yamlContent := `
environment: staging
logging:
  level: warn
  format: json
monocloud:
  client_id: from-file
  issuer: https://tenant.monocloud.example
  scopes: [openid, profile]
  endpoints:
    token: https://tenant.monocloud.example/connect/token
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	var cfg Config
	err := LoadConfig("idpctl", &cfg, WithConfigFile(configPath), WithEnvPrefixes("IDPCTL_TEST_UNUSED"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Environment != "staging" {
		t.Errorf("expected environment 'staging', got %q", cfg.Environment)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected json logging, got %q", cfg.Logging.Format)
	}
	if cfg.MonoCloud.ClientID != "from-file" {
		t.Errorf("expected client id from file, got %q", cfg.MonoCloud.ClientID)
	}
	if !slices.Equal(cfg.MonoCloud.Scopes, []string{"openid", "profile"}) {
		t.Errorf("unexpected scopes %v", cfg.MonoCloud.Scopes)
	}
	if cfg.MonoCloud.Endpoints.Token != "https://tenant.monocloud.example/connect/token" {
		t.Errorf("unexpected token endpoint %q", cfg.MonoCloud.Endpoints.Token)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "idpctl.yml")
	if err := os.WriteFile(configPath, []byte("monocloud:\n  client_id: from-file\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("MONOCLOUD_CLIENT_ID", "from-env")
	t.Setenv("MONOCLOUD_ENDPOINTS_USERINFO", "https://override.example/userinfo")

	var cfg Config
	if err := LoadConfig("idpctl", &cfg, WithConfigFile(configPath), WithEnvPrefixes("MONOCLOUD")); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.MonoCloud.ClientID != "from-env" {
		t.Errorf("expected env to override file, got %q", cfg.MonoCloud.ClientID)
	}
	if cfg.MonoCloud.Endpoints.UserInfo != "https://override.example/userinfo" {
		t.Errorf("expected nested env binding, got %q", cfg.MonoCloud.Endpoints.UserInfo)
	}
}

func TestLoadConfigEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("MONOCLOUD_ISSUER=https://dotenv.monocloud.example\n"), 0o644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	t.Setenv("MONOCLOUD_ISSUER", "")
	os.Unsetenv("MONOCLOUD_ISSUER")

	var cfg Config
	err := LoadConfig("idpctl", &cfg,
		WithConfigFile(filepath.Join(dir, "missing.yml")),
		WithEnvFile(envPath),
		WithEnvPrefixes("MONOCLOUD"),
	)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.MonoCloud.Issuer != "https://dotenv.monocloud.example" {
		t.Errorf("expected issuer from .env, got %q", cfg.MonoCloud.Issuer)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	var cfg Config
	err := LoadConfig("nonexistent", &cfg, WithConfigFile("/nonexistent/path.yml"), WithEnvPrefixes("IDPCTL_TEST_UNUSED"))
	if err != nil {
		t.Fatalf("expected LoadConfig to succeed with missing file, got %v", err)
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "idpctl.yml")
	if err := os.WriteFile(configPath, []byte("monocloud: [unclosed\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	var cfg Config
	if err := LoadConfig("idpctl", &cfg, WithConfigFile(configPath)); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

type mockFS struct {
	files     map[string]bool
	configDir string
}

func (m *mockFS) Exists(path string) bool        { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error      { return nil }
func (m *mockFS) UserConfigDir() (string, error) { return m.configDir, nil }

func TestResolverWithMockFS(t *testing.T) {
	tests := []struct {
		name       string
		files      map[string]bool
		wantConfig string
		wantEnv    string
	}{
		{
			name:       "app file in working dir",
			files:      map[string]bool{"./idpctl.yml": true, "./config.yml": true, ".env": true},
			wantConfig: "./idpctl.yml",
			wantEnv:    ".env",
		},
		{
			name:       "config dir",
			files:      map[string]bool{"./config/idpctl.yml": true, ".env.idpctl": true, ".env": true},
			wantConfig: "./config/idpctl.yml",
			wantEnv:    ".env.idpctl",
		},
		{
			name:       "user config dir",
			files:      map[string]bool{filepath.Join("/home/u/.config", "idpctl", "config.yml"): true},
			wantConfig: filepath.Join("/home/u/.config", "idpctl", "config.yml"),
		},
		{
			name: "nothing found",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resolver := &Resolver{FileSystem: &mockFS{files: tc.files, configDir: "/home/u/.config"}}
			files := resolver.ResolveFiles("idpctl", LoaderConfig{})
			if files.ConfigFile != tc.wantConfig {
				t.Errorf("config file = %q, want %q", files.ConfigFile, tc.wantConfig)
			}
			if files.EnvFile != tc.wantEnv {
				t.Errorf("env file = %q, want %q", files.EnvFile, tc.wantEnv)
			}
		})
	}
}

func TestResolverExplicitPaths(t *testing.T) {
	resolver := &Resolver{FileSystem: &mockFS{files: map[string]bool{"./idpctl.yml": true}}}
	files := resolver.ResolveFiles("idpctl", LoaderConfig{ConfigFile: "/etc/idpctl.yml", EnvFile: "/etc/idpctl.env"})
	if files.ConfigFile != "/etc/idpctl.yml" || files.EnvFile != "/etc/idpctl.env" {
		t.Errorf("explicit paths must win, got %+v", files)
	}
}

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	fs := &mockFS{}
	for _, opt := range []LoaderOption{
		WithFileSystem(fs),
		WithConfigFile("/path/to/config.yml"),
		WithEnvFile("/path/to/.env"),
		WithEnvPrefixes("MONOCLOUD", "LOGGING"),
	} {
		opt(&lc)
	}
	if lc.FileSystem != fs {
		t.Error("expected FileSystem to be set")
	}
	if lc.ConfigFile != "/path/to/config.yml" || lc.EnvFile != "/path/to/.env" {
		t.Errorf("unexpected file paths %+v", lc)
	}
	if !slices.Equal(lc.EnvPrefixes, []string{"MONOCLOUD", "LOGGING"}) {
		t.Errorf("unexpected prefixes %v", lc.EnvPrefixes)
	}
}

func TestGenerateEnvKeyVariants(t *testing.T) {
	got := generateEnvKeyVariants("MONOCLOUD_CLIENT_ID")
	for _, want := range []string{"monocloud_client_id", "monocloud.client_id", "monocloud.client.id"} {
		if !slices.Contains(got, want) {
			t.Errorf("expected variant %q in %v", want, got)
		}
	}
	if got := generateEnvKeyVariants("DEBUG"); !slices.Equal(got, []string{"debug"}) {
		t.Errorf("single word should map to itself, got %v", got)
	}
}

func TestBindEnvVarsPrefixes(t *testing.T) {
	v := viper.New()
	bindEnvVars(v, []string{
		"MONOCLOUD_ISSUER=https://tenant.monocloud.example",
		"HOME=/root",
		"MALFORMED",
	}, []string{"monocloud"})

	if got := v.GetString("monocloud.issuer"); got != "https://tenant.monocloud.example" {
		t.Errorf("expected bound issuer, got %q", got)
	}
	if v.IsSet("home") {
		t.Error("variables outside the prefixes must not be bound")
	}
}

func TestProviderOptions(t *testing.T) {
	dir := t.TempDir()
	shapePath := filepath.Join(dir, "claims.json")
	shapeJSON := `{"fields":[{"name":"tenant_id","type":"string","required":true}],"open":"any"}`
	if err := os.WriteFile(shapePath, []byte(shapeJSON), 0o644); err != nil {
		t.Fatalf("failed to write shape: %v", err)
	}

	pc := ProviderConfig{
		ClientID:     "cid",
		ClientSecret: "secret",
		Issuer:       "https://tenant.monocloud.example",
		Scopes:       []string{"openid"},
		ClaimsFile:   shapePath,
		Extra:        map[string]any{"prompt": "login"},
	}
	opts, err := ProviderOptions[map[string]any](pc)
	if err != nil {
		t.Fatalf("ProviderOptions failed: %v", err)
	}
	if opts.ClientID != "cid" || opts.ClientSecret != "secret" || opts.Issuer != pc.Issuer {
		t.Errorf("unexpected options %+v", opts)
	}
	if opts.Claims == nil || opts.Claims.TypeOf("tenant_id") != claims.String {
		t.Fatalf("expected claim extension from file, got %v", opts.Claims)
	}
	if open, ok := opts.Claims.Open(); !ok || open != claims.Any {
		t.Errorf("expected open rule any, got %s", open)
	}

	opts.Scopes[0] = "mutated"
	if pc.Scopes[0] != "openid" {
		t.Error("ProviderOptions must not alias the config scopes")
	}
}

func TestLoadShapeErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	dup := filepath.Join(dir, "dup.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dup, []byte(`{"fields":[{"name":"a","type":"string"},{"name":"a","type":"number"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{filepath.Join(dir, "missing.json"), bad, dup} {
		if _, err := LoadShape(path); err == nil {
			t.Errorf("LoadShape(%s): expected error", filepath.Base(path))
		}
	}
}
