package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string        `mapstructure:"DATABASE_URL"`
	DBDriver    string        `mapstructure:"DB_DRIVER"`
	JWTSecret   string        `mapstructure:"JWT_SECRET"`
	TokenTTL    time.Duration `mapstructure:"TOKEN_TTL"`
	Port        string        `mapstructure:"PORT"`
	GinMode     string        `mapstructure:"GIN_MODE"`
}

var AppConfig *Config

// Defaults are registered as keys so AutomaticEnv can override them during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=levelup port=5432 sslmode=disable")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL", 7*24*time.Hour)
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
}

// Load reads the configuration from a .env file in dir (if present) and the environment.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	setDefaults(v)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig loads the configuration from the working directory into AppConfig.
func LoadConfig() {
	cfg, err := Load(".")
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET is empty, tokens are signed with an empty key")
	}
	AppConfig = cfg
}
