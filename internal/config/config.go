package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// App
	Env string // dev / staging / prod
	// HTTP
	HTTPAddr         string
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration

	// Auth / security
	JWTSecret      string
	JWTIssuer      string
	AccessTokenTTL time.Duration
	OTPWindow      time.Duration
	BcryptCost     int

	// Infrastructure
	DBAddr  string
	DBDebug bool

	// Redis is optional; when empty the OTP rate limiter is disabled.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Rate limiting for the OTP endpoints
	OTPRateLimit  int
	OTPRateWindow time.Duration

	// Mail
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
	AdminEmail   string

	// Initial admin account; both empty disables seeding.
	SeedAdminEmail    string
	SeedAdminPassword string
}

func Load() (*Config, error) {
	// .env is a dev convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("ENV", "dev"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
	}

	// required values
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing required env var: JWT_SECRET")
	}
	cfg.JWTIssuer = getEnv("JWT_ISSUER", "quickdeliver")

	cfg.DBAddr = os.Getenv("DB_ADDR")
	if cfg.DBAddr == "" {
		return nil, fmt.Errorf("missing required env var: DB_ADDR")
	}
	cfg.DBDebug = os.Getenv("DB_DEBUG") == "true"

	ttl, err := getDuration("ACCESS_TOKEN_TTL", time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.AccessTokenTTL = ttl

	// Canonical OTP validity window. The call sites all share this one
	// value; there are no per-endpoint overrides.
	otp, err := getDuration("OTP_WINDOW", 10*time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.OTPWindow = otp

	cost, err := getInt("BCRYPT_COST", 10)
	if err != nil {
		return nil, err
	}
	if cost < 10 {
		return nil, fmt.Errorf("BCRYPT_COST must be >= 10, got %d", cost)
	}
	cfg.BcryptCost = cost

	// Optional redis
	cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	rdb, err := getInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	cfg.RedisDB = rdb

	limit, err := getInt("OTP_RATE_LIMIT", 5)
	if err != nil {
		return nil, err
	}
	cfg.OTPRateLimit = limit

	rw, err := getDuration("OTP_RATE_WINDOW", time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.OTPRateWindow = rw

	// Mail. Host may be empty in dev; bootstrap then wires a log-only
	// sender instead of SMTP.
	cfg.SMTPHost = os.Getenv("SMTP_HOST")
	sp, err := getInt("SMTP_PORT", 587)
	if err != nil {
		return nil, err
	}
	cfg.SMTPPort = sp
	cfg.SMTPUsername = os.Getenv("SMTP_USERNAME")
	cfg.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.FromEmail = getEnv("FROM_EMAIL", "no-reply@quickdeliver.local")
	cfg.FromName = getEnv("FROM_NAME", "QuickDeliver")
	cfg.AdminEmail = os.Getenv("ADMIN_EMAIL")

	cfg.SeedAdminEmail = os.Getenv("SEED_ADMIN_EMAIL")
	cfg.SeedAdminPassword = os.Getenv("SEED_ADMIN_PASSWORD")

	// HTTP timeouts are optional and have defaults.
	rt, err := getDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.HTTPReadTimeout = rt

	wt, err := getDuration("HTTP_WRITE_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.HTTPWriteTimeout = wt

	it, err := getDuration("HTTP_IDLE_TIMEOUT", time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.HTTPIdleTimeout = it

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q: %w", key, v, err)
	}
	return d, nil
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	var n int
	if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %q: %w", key, v, err)
	}
	return n, nil
}
