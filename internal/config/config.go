package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DatabaseURL    string
	DBMaxOpenConns int

	Port       string
	LogLevel   string
	SwaggerURL string

	// Secret used to verify recruiter bearer tokens (HS256)
	JWTSecret string

	Redis struct {
		Addr    string // empty disables live notification publishing
		Channel string
	}

	SendGrid struct {
		APIKey    string // empty disables email delivery
		BaseURL   string
		FromEmail string
		FromName  string
		Timeout   time.Duration
	}
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Println("Warning: Could not load .env file, using environment variables")
		}
	}

	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("SWAGGER_URL", "http://localhost:8080/swagger/doc.json")
	v.SetDefault("REDIS_CHANNEL", "talent-bank.notifications")
	v.SetDefault("SENDGRID_BASE_URL", "https://api.sendgrid.com")
	v.SetDefault("SENDGRID_FROM_NAME", "Talent Bank")
	v.SetDefault("SENDGRID_TIMEOUT_SECONDS", 30)

	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:    strings.TrimSpace(v.GetString("DATABASE_URL")),
		DBMaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		Port:           v.GetString("PORT"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		SwaggerURL:     v.GetString("SWAGGER_URL"),
		JWTSecret:      v.GetString("JWT_SECRET"),
	}

	cfg.Redis.Addr = strings.TrimSpace(v.GetString("REDIS_ADDR"))
	cfg.Redis.Channel = v.GetString("REDIS_CHANNEL")

	cfg.SendGrid.APIKey = strings.TrimSpace(v.GetString("SENDGRID_API_KEY"))
	cfg.SendGrid.BaseURL = strings.TrimRight(v.GetString("SENDGRID_BASE_URL"), "/")
	cfg.SendGrid.FromEmail = strings.TrimSpace(v.GetString("SENDGRID_FROM_EMAIL"))
	cfg.SendGrid.FromName = v.GetString("SENDGRID_FROM_NAME")
	cfg.SendGrid.Timeout = time.Duration(v.GetInt("SENDGRID_TIMEOUT_SECONDS")) * time.Second

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if cfg.SendGrid.APIKey != "" && cfg.SendGrid.FromEmail == "" {
		missing = append(missing, "SENDGRID_FROM_EMAIL")
	}
	if len(missing) > 0 {
		return cfg, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}
