package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AuthConfig holds the bearer-token settings of the API
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	Issuer    string        `mapstructure:"issuer"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
	// Leeway is the clock skew tolerated on exp and nbf
	Leeway time.Duration `mapstructure:"leeway"`
}

// LoadAuthConfig reads auth.yaml (or configPath) overlaid with AUTH_* variables.
// JWT_SECRET wins over both; defaultSecret applies when nothing else sets one.
func LoadAuthConfig(configPath, defaultSecret string) (*AuthConfig, error) {
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetDefault("jwt_secret", defaultSecret)
	v.SetDefault("issuer", "production-scheduler-backend")
	v.SetDefault("token_ttl", time.Hour)
	v.SetDefault("leeway", 30*time.Second)

	v.SetEnvPrefix("AUTH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("jwt_secret", "JWT_SECRET", "AUTH_JWT_SECRET"); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read auth config: %w", err)
		}
	}

	var cfg AuthConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode auth config: %w", err)
	}
	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config: %w", err)
	}
	return &cfg, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTL < 0 || c.Leeway < 0 {
		return fmt.Errorf("token TTL and leeway must not be negative")
	}
	return nil
}
