package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort  string
	LogLevel string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	JWTSecret     string
	JWTTTLMinutes int

	Timezone          string
	ExpiryAlertDays   int
	DefaultExpiryDays int

	BootstrapAdminUsername string
	BootstrapAdminPassword string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getint(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

// Load reads an optional .env file then the process environment.
// Variables already set in the environment win over .env values.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppPort:  getenv("APP_PORT", "8080"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "esep"),
		MySQLUser: getenv("MYSQL_USER", "esep"),
		MySQLPass: getenv("MYSQL_PASS", "esep"),

		RedisAddr:    getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:      getint("REDIS_DB", 0),
		IdempTTLSecs: getint("IDEMPOTENCY_TTL_SECONDS", 300),

		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTTTLMinutes: getint("JWT_TTL_MINUTES", 720),

		Timezone:          getenv("APP_TIMEZONE", "Asia/Kolkata"),
		ExpiryAlertDays:   getint("EXPIRY_ALERT_DAYS", 5),
		DefaultExpiryDays: getint("DEFAULT_EXPIRY_DAYS", 30),

		BootstrapAdminUsername: os.Getenv("BOOTSTRAP_ADMIN_USERNAME"),
		BootstrapAdminPassword: os.Getenv("BOOTSTRAP_ADMIN_PASSWORD"),
	}
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if len(c.JWTSecret) < 16 {
		return errors.New("JWT_SECRET must be at least 16 characters")
	}
	if c.JWTTTLMinutes <= 0 {
		return fmt.Errorf("invalid JWT_TTL_MINUTES %d", c.JWTTTLMinutes)
	}
	if c.ExpiryAlertDays <= 0 || c.DefaultExpiryDays <= 0 {
		return errors.New("EXPIRY_ALERT_DAYS and DEFAULT_EXPIRY_DAYS must be positive")
	}
	if (c.BootstrapAdminUsername == "") != (c.BootstrapAdminPassword == "") {
		return errors.New("BOOTSTRAP_ADMIN_USERNAME and BOOTSTRAP_ADMIN_PASSWORD must be set together")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves APP_TIMEZONE; day boundaries are computed in it.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) JWTTTL() time.Duration { return time.Duration(c.JWTTTLMinutes) * time.Minute }

func (c *Config) IdempotencyTTL() time.Duration { return time.Duration(c.IdempTTLSecs) * time.Second }

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME; loc=UTC keeps stored instants unambiguous
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
