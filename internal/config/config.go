package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	FrontendURL string `mapstructure:"FRONTEND_URL"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`

	// Web push (VAPID). Absence is a valid configuration: the dispatcher
	// reports push_not_configured instead of failing.
	VapidPublicKey  string `mapstructure:"VAPID_PUBLIC_KEY"`
	VapidPrivateKey string `mapstructure:"VAPID_PRIVATE_KEY"`
	VapidSubject    string `mapstructure:"VAPID_SUBJECT"`

	// CronSecret guards the reminder dispatch endpoint.
	CronSecret string `mapstructure:"CRON_SECRET"`
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode config: %v", err)
	}

	AppConfig.VapidPublicKey = strings.TrimSpace(AppConfig.VapidPublicKey)
	AppConfig.VapidPrivateKey = strings.TrimSpace(AppConfig.VapidPrivateKey)
	if AppConfig.VapidSubject == "" {
		AppConfig.VapidSubject = "mailto:contact@ali-cheikh.com"
	}
}

// PushConfigured reports whether both VAPID keys are present.
func (c *Config) PushConfigured() bool {
	return c.VapidPublicKey != "" && c.VapidPrivateKey != ""
}
