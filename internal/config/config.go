package config

import (
	"os"
	"strconv"
	"time"
)

// Config is read once at startup; everything downstream receives values
// explicitly instead of reaching for os.Getenv.
type Config struct {
	App      App
	Database Database
	Redis    Redis
	Kafka    Kafka
	Auth     Auth
}

type App struct {
	Env  string
	Port string
}

type Database struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type Redis struct {
	Addr string
}

type Kafka struct {
	Broker        string
	ConsumerGroup string
}

type Auth struct {
	JWTSecret      string
	AccessTokenTTL time.Duration
}

func Load() Config {
	return Config{
		App: App{
			Env:  getenv("APP_ENV", "development"),
			Port: getenv("PORT", "8080"),
		},
		Database: Database{
			Host:     getenv("DB_HOST", "localhost"),
			User:     getenv("DB_USER", "postgres"),
			Password: getenv("DB_PASSWORD", "postgres"),
			Name:     getenv("DB_NAME", "leave_management"),
			Port:     getenv("DB_PORT", "5432"),
			SSLMode:  getenv("DB_SSLMODE", "disable"),
		},
		Redis: Redis{
			Addr: getenv("REDIS_ADDR", "localhost:6379"),
		},
		Kafka: Kafka{
			Broker:        getenv("KAFKA_BROKER", "localhost:9092"),
			ConsumerGroup: getenv("KAFKA_CONSUMER_GROUP", "leave-management"),
		},
		Auth: Auth{
			JWTSecret:      getenv("JWT_SECRET", ""),
			AccessTokenTTL: time.Duration(getenvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
		},
	}
}

func (a App) IsProduction() bool {
	return a.Env == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
