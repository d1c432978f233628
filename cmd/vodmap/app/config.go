package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/vodmap/internal/config"
	"github.com/agentstation/vodmap/pkg/constants"
	"github.com/agentstation/vodmap/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Discovery configuration
	CatalogPath  string
	Group        string
	Query        string
	PerPage      int
	MaxPages     int
	SearchAPIURL string
	GitHubToken  string
	NoDelay      bool

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.vodmap.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	// Set up Viper for environment variables
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	setDefaults()

	// The token keeps its conventional variable name
	if err := viper.BindEnv(config.TokenKey, constants.EnvToken); err != nil {
		return nil, errors.NewConfigError("env", "failed to bind "+constants.EnvToken, err)
	}

	// Try to read config file if it exists
	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Search for config in standard locations
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".vodmap")
	}

	// Read config file; only an explicitly named file has to exist
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, errors.NewConfigError("file", "failed to read config file", err)
		}
	}

	cfg := &Config{
		// Global flags (may be overridden by cobra flags later)
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),
		Format:  viper.GetString("format"),

		// Config file
		ConfigFile: viper.ConfigFileUsed(),

		// Discovery configuration
		CatalogPath:  viper.GetString("catalog_path"),
		Group:        viper.GetString("group"),
		Query:        viper.GetString("query"),
		PerPage:      viper.GetInt("per_page"),
		MaxPages:     viper.GetInt("max_pages"),
		SearchAPIURL: viper.GetString("search_api_url"),
		GitHubToken:  config.Token(),
		NoDelay:      viper.GetBool("no_delay"),

		// Logging configuration
		LogLevel:  viper.GetString("log_level"),
		LogFormat: viper.GetString("log_format"),
		LogOutput: viper.GetString("log_output"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers the default for every discovery and logging key.
func setDefaults() {
	viper.SetDefault("catalog_path", constants.DefaultCatalogPath)
	viper.SetDefault("group", constants.DefaultGroup)
	viper.SetDefault("query", constants.SearchQuery)
	viper.SetDefault("per_page", constants.DefaultPageSize)
	viper.SetDefault("max_pages", 0)
	viper.SetDefault("search_api_url", constants.SearchAPIURL)
	viper.SetDefault("no_delay", false)
	viper.SetDefault("log_format", "auto")
	viper.SetDefault("log_output", "stderr")
}

// Validate checks the values that would otherwise fail deep inside a run.
func (c *Config) Validate() error {
	if c.PerPage < 1 || c.PerPage > constants.MaxPageSize {
		return errors.NewConfigError("per_page", "must be between 1 and 100", nil)
	}
	if c.MaxPages < 0 {
		return errors.NewConfigError("max_pages", "must not be negative", nil)
	}
	if c.CatalogPath == "" {
		return errors.NewConfigError("catalog_path", "must not be empty", nil)
	}
	return nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// godotenv never overrides a variable that is already set, so the
	// file that should win is loaded first: .env.local overrides .env
	envFiles := []string{
		".env.local",
		".env",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}
