package config

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
)

const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
)

// DefaultClientConfigPath is the option file the crawler deployment
// shares with this API. It is resolved relative to the working directory.
const DefaultClientConfigPath = "crawler.my.cnf"

// Config holds the process-level settings of the API server.
// Database credentials are NOT part of it: they live in the MySQL option
// file and are re-read on every request (see LoadClientConfig).
type Config struct {
	HTTPAddr         string `mapstructure:"http_addr"`
	Env              string `mapstructure:"env"`
	LogLevel         string `mapstructure:"log_level"`
	LogFormat        string `mapstructure:"log_format"`
	ClientConfigPath string `mapstructure:"db_config_path"`
	HideDBErrors     bool   `mapstructure:"hide_db_errors"`
}

// Load reads POI_* environment variables (a .env file is loaded by main
// beforehand) on top of the defaults and validates the result.
func Load() (*Config, error) {
	v := viper.New()

	// 1. --- Defaults ---
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("env", EnvDev)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("db_config_path", DefaultClientConfigPath)
	v.SetDefault("hide_db_errors", false)

	// 2. --- Environment ---
	// POI_HTTP_ADDR, POI_ENV, POI_LOG_LEVEL, POI_LOG_FORMAT,
	// POI_DB_CONFIG_PATH, POI_HIDE_DB_ERRORS
	v.SetEnvPrefix("poi")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.HTTPAddr, validation.Required, validation.By(validateHostPort)),
		validation.Field(&c.Env, validation.Required, validation.In(EnvDev, EnvStaging, EnvProd)),
		validation.Field(&c.LogLevel, validation.Required, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.LogFormat, validation.Required, validation.In("json", "console")),
		validation.Field(&c.ClientConfigPath, validation.Required),
	)
}
