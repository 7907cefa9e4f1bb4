package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server  ServerConfig
	FDC     FDCConfig
	Goals   GoalsConfig
	Session SessionConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// FDCConfig holds USDA FoodData Central API configuration.
type FDCConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// GoalsConfig holds the fixed daily nutrition goals.
type GoalsConfig struct {
	Calories float64 `mapstructure:"calories"`
	Protein  float64 `mapstructure:"protein"`
	Carbs    float64 `mapstructure:"carbs"`
	Fat      float64 `mapstructure:"fat"`
}

// SessionConfig holds session lifecycle configuration.
type SessionConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// Load loads configuration from environment variables and config files.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/wellnest/")

	v.SetEnvPrefix("WELLNEST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// DEMO_KEY is USDA's public demo key; it works with tight quotas, so a
	// fresh checkout runs without any setup.
	v.SetDefault("fdc.api_key", "DEMO_KEY")
	v.SetDefault("fdc.base_url", "https://api.nal.usda.gov/fdc")
	v.SetDefault("fdc.timeout", "10s")

	v.SetDefault("goals.calories", 2000)
	v.SetDefault("goals.protein", 150)
	v.SetDefault("goals.carbs", 250)
	v.SetDefault("goals.fat", 65)

	v.SetDefault("session.ttl", "24h")
}

// validate validates the configuration.
func validate(config *Config) error {
	if config.FDC.BaseURL == "" {
		return fmt.Errorf("FDC base URL is required (set WELLNEST_FDC_BASE_URL)")
	}

	if config.FDC.Timeout <= 0 {
		return fmt.Errorf("FDC timeout must be positive, got: %s", config.FDC.Timeout)
	}

	if config.Goals.Calories <= 0 || config.Goals.Protein <= 0 ||
		config.Goals.Carbs <= 0 || config.Goals.Fat <= 0 {
		return fmt.Errorf("daily goals must all be positive")
	}

	if config.Session.TTL <= 0 {
		return fmt.Errorf("session TTL must be positive, got: %s", config.Session.TTL)
	}

	return nil
}
