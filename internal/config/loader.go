package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load reads config.yaml and applies APP_* environment overrides. Database
// credentials are secrets and must come from the environment; a config file
// without them and without env fails here, not at connect time.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	var config Config
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// AutomaticEnv only kicks in for keys viper has seen, so bind the
	// secret keys explicitly before checking them.
	for key, dst := range map[string]*string{
		"postgres.user":     &config.Postgres.User,
		"postgres.password": &config.Postgres.Password,
		"postgres.db":       &config.Postgres.DBName,
	} {
		if *dst == "" {
			if s := v.GetString(key); s != "" {
				*dst = s
			}
		}
	}

	var missing []string
	if config.Postgres.User == "" {
		missing = append(missing, "APP_POSTGRES_USER")
	}
	if config.Postgres.Password == "" {
		missing = append(missing, "APP_POSTGRES_PASSWORD")
	}
	if config.Postgres.DBName == "" {
		missing = append(missing, "APP_POSTGRES_DB")
	}
	if len(missing) > 0 {
		return nil, errors.New("missing required env: " + strings.Join(missing, ", "))
	}

	return &config, nil
}
