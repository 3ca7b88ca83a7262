package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

const (
	ModeConsole = "console"
	ModeHTTP    = "http"
)

type Env struct {
	AppAddr string `env:"APP_ADDR" envDefault:":8080"`
	GinMode string `env:"GIN_MODE"`
	Mode    string `env:"APP_MODE" envDefault:"console"`

	DBUser     string `env:"DB_USER" envDefault:"root"`
	DBPassword string `env:"DB_PASSWORD"`
	DBHost     string `env:"DB_HOST" envDefault:"127.0.0.1:3306"`
	DBName     string `env:"DB_NAME" envDefault:"BookingSystem"`

	DBConnectAttempts int           `env:"DB_CONNECT_ATTEMPTS" envDefault:"5"`
	DBConnectDelay    time.Duration `env:"DB_CONNECT_DELAY" envDefault:"1s"`
	AutoMigrate       bool          `env:"AUTO_MIGRATE" envDefault:"false"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// LoadEnv reads an optional .env file, then the process environment.
func LoadEnv() (Env, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[CONFIG] no .env file found, using process environment")
	}
	return ParseEnv()
}

// ParseEnv parses the process environment only.
func ParseEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Mode = strings.ToLower(strings.TrimSpace(cfg.Mode))
	switch cfg.Mode {
	case ModeConsole, ModeHTTP:
	default:
		return Env{}, fmt.Errorf("APP_MODE must be %q or %q, got %q", ModeConsole, ModeHTTP, cfg.Mode)
	}
	if cfg.DBConnectAttempts < 1 {
		cfg.DBConnectAttempts = 1
	}
	return cfg, nil
}

// DSN renders the go-sql-driver/mysql connection string.
func (e Env) DSN() string {
	c := mysql.NewConfig()
	c.User = e.DBUser
	c.Passwd = e.DBPassword
	c.Net = "tcp"
	c.Addr = e.DBHost
	c.DBName = e.DBName
	c.ParseTime = true
	c.Loc = time.Local
	c.Timeout = 5 * time.Second
	c.ReadTimeout = 30 * time.Second
	c.WriteTimeout = 30 * time.Second
	c.Params = map[string]string{"charset": "utf8mb4"}
	return c.FormatDSN()
}
