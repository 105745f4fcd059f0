package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Corpus   CorpusConfig   `mapstructure:"corpus"`
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Tagger   TaggerConfig   `mapstructure:"tagger"`
	Reports  ReportsConfig  `mapstructure:"reports"`
}

type CorpusConfig struct {
	File string `mapstructure:"file" validate:"required,file"`
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Database        string `mapstructure:"database"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port" validate:"min=1,max=65535"`
}

type TaggerConfig struct {
	BaseURL     string `mapstructure:"base_url" validate:"omitempty,url"`
	APIKey      string `mapstructure:"api_key"`
	MaxAttempts int    `mapstructure:"max_attempts"`
}

type ReportsConfig struct {
	Directory string `mapstructure:"directory"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/igatrans")
	}

	v.SetDefault("corpus.file", filepath.Join("data", "dictionary.csv"))
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "igatrans")
	v.SetDefault("database.username", "igatrans")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("tagger.max_attempts", 3)
	v.SetDefault("reports.directory", filepath.Join("outputs", "reports"))

	// Credentials come from environment variables only, never the config file
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("tagger.api_key", "TAGGER_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind TAGGER_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("tagger.base_url", "TAGGER_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind TAGGER_BASE_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	return &cfg, nil
}

// Validate checks the loaded configuration and returns readable messages
// for every failing field.
func (c *Config) Validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return fmt.Errorf("newValidator() > %w", err)
	}

	err = validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validate.Struct() > %w", err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, fieldError.Translate(trans))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
}
