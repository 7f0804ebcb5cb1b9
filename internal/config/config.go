package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"church-app-go/pkg/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort           string
	Env                string
	ShutdownTimeout    time.Duration
	CORSAllowedOrigins []string
	DB                 DBConfig
	Demo               DemoConfig
}

type DBConfig struct {
	DSN             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DemoConfig bounds the demo-data generator. Defaults apply when the request
// omits a parameter; the max values cap what one request may synthesize.
type DemoConfig struct {
	DefaultMemberCount int
	DefaultWeeks       int
	MaxMemberCount     int
	MaxWeeks           int
}

func Load(log logger.Logger) (Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return Config{}, err
		}
	} else {
		log.Info("config: loaded .env")
	}

	return Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		ShutdownTimeout:    getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		CORSAllowedOrigins: getEnvCSV("CORS_ALLOWED_ORIGINS", []string{"*"}),
		DB: DBConfig{
			DSN:             getEnv("DB_DSN", ""),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			Name:            getEnv("DB_NAME", "church_app"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			TimeZone:        getEnv("DB_TIMEZONE", "UTC"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Demo: DemoConfig{
			DefaultMemberCount: getEnvInt("DEMO_DEFAULT_MEMBER_COUNT", 50),
			DefaultWeeks:       getEnvInt("DEMO_DEFAULT_WEEKS", 26),
			MaxMemberCount:     getEnvInt("DEMO_MAX_MEMBER_COUNT", 5000),
			MaxWeeks:           getEnvInt("DEMO_MAX_WEEKS", 260),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvCSV(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			result = append(result, item)
		}
	}
	if len(result) == 0 {
		return fallback
	}
	return result
}

func (c DBConfig) GetDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.TimeZone
}
