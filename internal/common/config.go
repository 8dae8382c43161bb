package common

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	API     APIConfig     `toml:"api"`
	Storage StorageConfig `toml:"storage"`
	Export  ExportConfig  `toml:"export"`
	Logging LoggingConfig `toml:"logging"`
}

// APIConfig contains Bolagsverket "Vardefulla datamangder" API settings.
// Credentials are issued at https://portal.api.bolagsverket.se.
type APIConfig struct {
	BaseURL        string        `toml:"base_url"`        // API gateway base URL
	TokenURL       string        `toml:"token_url"`       // OAuth2 token endpoint
	ClientID       string        `toml:"client_id"`       // OAuth2 client id
	ClientSecret   string        `toml:"client_secret"`   // OAuth2 client secret
	Scope          string        `toml:"scope"`           // OAuth2 scopes (space separated)
	RequestTimeout time.Duration `toml:"request_timeout"` // HTTP request timeout
}

// StorageConfig contains the filing cache configuration
type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path    string        `toml:"path"`    // Database directory path; empty disables the cache
	FileTTL time.Duration `toml:"file_ttl"` // How long cached filings are kept
}

type ExportConfig struct {
	OutputDir string `toml:"output_dir"` // Directory exported files are written to
}

type LoggingConfig struct {
	Level  string   `toml:"level"`  // "debug", "info", "warn", "error"
	Output []string `toml:"output"` // "stdout", "file"
}

// NewDefaultConfig creates a configuration with default values.
// Only user-facing settings are exposed in bolagskollen.toml.
func NewDefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		API: APIConfig{
			BaseURL:        "https://gw.api.bolagsverket.se/vardefulla-datamangder/v1",
			TokenURL:       "https://portal.api.bolagsverket.se/oauth2/token",
			Scope:          "vardefulla-datamangder:read vardefulla-datamangder:ping",
			RequestTimeout: 30 * time.Second,
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path:    "", // Cache disabled unless a path is configured
				FileTTL: 24 * time.Hour,
			},
		},
		Export: ExportConfig{
			OutputDir: home + "/Downloads/bolagskollen",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout"},
		},
	}
}

// LoadFromFile loads configuration with priority: defaults -> file -> env
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files; later files override
// earlier ones, environment variables override all files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if id := os.Getenv("BOLAGSVERKET_CLIENT_ID"); id != "" {
		config.API.ClientID = id
	}
	if secret := os.Getenv("BOLAGSVERKET_CLIENT_SECRET"); secret != "" {
		config.API.ClientSecret = secret
	}
	if baseURL := os.Getenv("BOLAGSKOLLEN_API_BASE_URL"); baseURL != "" {
		config.API.BaseURL = baseURL
	}
	if tokenURL := os.Getenv("BOLAGSKOLLEN_API_TOKEN_URL"); tokenURL != "" {
		config.API.TokenURL = tokenURL
	}
	if timeout := os.Getenv("BOLAGSKOLLEN_API_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			config.API.RequestTimeout = d
		}
	}
	if badgerPath := os.Getenv("BOLAGSKOLLEN_BADGER_PATH"); badgerPath != "" {
		config.Storage.Badger.Path = badgerPath
	}
	if ttl := os.Getenv("BOLAGSKOLLEN_FILE_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			config.Storage.Badger.FileTTL = d
		}
	}
	if outputDir := os.Getenv("BOLAGSKOLLEN_OUTPUT_DIR"); outputDir != "" {
		config.Export.OutputDir = outputDir
	}
	if level := os.Getenv("BOLAGSKOLLEN_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// Validate checks that credentials are present before any API call is made
func (c *Config) Validate() error {
	if c.API.ClientID == "" || c.API.ClientSecret == "" {
		return fmt.Errorf("missing API credentials: set BOLAGSVERKET_CLIENT_ID and BOLAGSVERKET_CLIENT_SECRET or configure [api] client_id/client_secret")
	}
	return nil
}
