package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		AppPort:           "8080",
		MySQLHost:         "localhost",
		MySQLPort:         "3306",
		MySQLDB:           "esep",
		MySQLUser:         "esep",
		JWTSecret:         "0123456789abcdef0123",
		JWTTTLMinutes:     60,
		Timezone:          "Asia/Kolkata",
		ExpiryAlertDays:   5,
		DefaultExpiryDays: 30,
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("EXPIRY_ALERT_DAYS", "")
	t.Setenv("APP_TIMEZONE", "")
	t.Setenv("REDIS_DB", "not-a-number")

	c := Load()
	if c.AppPort != "8080" {
		t.Fatalf("AppPort = %q, want 8080", c.AppPort)
	}
	if c.ExpiryAlertDays != 5 || c.DefaultExpiryDays != 30 {
		t.Fatalf("alert/expiry days = %d/%d, want 5/30", c.ExpiryAlertDays, c.DefaultExpiryDays)
	}
	if c.Timezone != "Asia/Kolkata" {
		t.Fatalf("Timezone = %q", c.Timezone)
	}
	if c.RedisDB != 0 {
		t.Fatalf("RedisDB = %d, want fallback 0", c.RedisDB)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "60")
	t.Setenv("JWT_TTL_MINUTES", "15")
	t.Setenv("EXPIRY_ALERT_DAYS", "7")

	c := Load()
	if c.AppPort != "9090" {
		t.Fatalf("AppPort = %q", c.AppPort)
	}
	if c.IdempotencyTTL() != time.Minute {
		t.Fatalf("IdempotencyTTL = %v", c.IdempotencyTTL())
	}
	if c.JWTTTL() != 15*time.Minute {
		t.Fatalf("JWTTTL = %v", c.JWTTTL())
	}
	if c.ExpiryAlertDays != 7 {
		t.Fatalf("ExpiryAlertDays = %d", c.ExpiryAlertDays)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"ok", func(c *Config) {}, ""},
		{"missing host", func(c *Config) { c.MySQLHost = "" }, "missing MySQL config"},
		{"bad port", func(c *Config) { c.MySQLPort = "nope" }, "invalid MYSQL_PORT"},
		{"short secret", func(c *Config) { c.JWTSecret = "short" }, "JWT_SECRET"},
		{"bad timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }, "APP_TIMEZONE"},
		{"zero alert", func(c *Config) { c.ExpiryAlertDays = 0 }, "EXPIRY_ALERT_DAYS"},
		{"half bootstrap", func(c *Config) { c.BootstrapAdminUsername = "root" }, "BOOTSTRAP_ADMIN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestMySQLDSN(t *testing.T) {
	c := validConfig()
	c.MySQLPass = "secret"
	got := c.MySQLDSN()
	want := "esep:secret@tcp(localhost:3306)/esep?parseTime=true"
	if !strings.HasPrefix(got, want) {
		t.Fatalf("DSN = %q, want prefix %q", got, want)
	}
}
