package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Telegram TelegramConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port int
}

type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
}

type AuthConfig struct {
	Secret string
	Issuer string
}

type TelegramConfig struct {
	BotToken      string
	ChatID        string
	APIBase       string
	MaxRetries    int
	SendTimeout   time.Duration
	UpdateTimeout time.Duration
	DedupeTTL     time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "sebet")
	viper.SetDefault("MONGO_CONNECT_TIMEOUT", "10s")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_POOL_SIZE", 10)
	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("AUTH_ISSUER", "sebet")
	viper.SetDefault("TELEGRAM_BOT_TOKEN", "")
	viper.SetDefault("TELEGRAM_CHAT_ID", "")
	viper.SetDefault("TELEGRAM_API_BASE", "https://api.telegram.org")
	viper.SetDefault("NOTIFY_MAX_RETRIES", 3)
	viper.SetDefault("NOTIFY_SEND_TIMEOUT", "10s")
	viper.SetDefault("NOTIFY_UPDATE_TIMEOUT", "8s")
	viper.SetDefault("NOTIFY_DEDUPE_TTL", "24h")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("LOG_LEVEL", "info")

	connectTimeout, err := time.ParseDuration(viper.GetString("MONGO_CONNECT_TIMEOUT"))
	if err != nil {
		return nil, err
	}
	sendTimeout, err := time.ParseDuration(viper.GetString("NOTIFY_SEND_TIMEOUT"))
	if err != nil {
		return nil, err
	}
	updateTimeout, err := time.ParseDuration(viper.GetString("NOTIFY_UPDATE_TIMEOUT"))
	if err != nil {
		return nil, err
	}
	dedupeTTL, err := time.ParseDuration(viper.GetString("NOTIFY_DEDUPE_TTL"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Mongo: MongoConfig{
			URI:            viper.GetString("MONGO_URI"),
			Database:       viper.GetString("MONGO_DATABASE"),
			ConnectTimeout: connectTimeout,
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
			PoolSize: viper.GetInt("REDIS_POOL_SIZE"),
		},
		Auth: AuthConfig{
			Secret: viper.GetString("AUTH_SECRET"),
			Issuer: viper.GetString("AUTH_ISSUER"),
		},
		Telegram: TelegramConfig{
			BotToken:      viper.GetString("TELEGRAM_BOT_TOKEN"),
			ChatID:        viper.GetString("TELEGRAM_CHAT_ID"),
			APIBase:       viper.GetString("TELEGRAM_API_BASE"),
			MaxRetries:    viper.GetInt("NOTIFY_MAX_RETRIES"),
			SendTimeout:   sendTimeout,
			UpdateTimeout: updateTimeout,
			DedupeTTL:     dedupeTTL,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitCSV(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
