package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName             string
	AppEnv              string
	AppPort             string
	CORSAllowOrigins    string
	DatabaseURL         string
	DBMaxOpenConns      int
	DBMaxIdleConns      int
	DBConnMaxLifetime   time.Duration
	RedisURL            string
	JWTSecret           string
	TokenTTL            time.Duration
	LeaderboardCacheTTL time.Duration
	LeaderboardSize     int
	CertificateDir      string
	PointsPerHour       float64
	Milestones          []float64
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("VOLUNTEERHUB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "VolunteerHub API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("cors.allow_origins", "*")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("jwt.ttl", "24h")
	v.SetDefault("leaderboard.cache_ttl", "1m")
	v.SetDefault("leaderboard.size", 10)
	v.SetDefault("certificate.dir", "./certificates")
	v.SetDefault("points.per_hour", 5)
	v.SetDefault("points.milestones", "20,50,100")

	ttlString := v.GetString("leaderboard.cache_ttl")
	if ttlString == "" {
		ttlString = "1m"
	}

	ttl, err := time.ParseDuration(ttlString)
	if err != nil {
		return Config{}, fmt.Errorf("invalid leaderboard cache ttl: %w", err)
	}

	tokenTTL, err := time.ParseDuration(v.GetString("jwt.ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid jwt ttl: %w", err)
	}

	connMaxLifetime, err := time.ParseDuration(v.GetString("database.conn_max_lifetime"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid database conn max lifetime: %w", err)
	}

	milestones, err := parseMilestones(v.GetString("points.milestones"))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppName:             v.GetString("app.name"),
		AppEnv:              v.GetString("app.env"),
		AppPort:             v.GetString("app.port"),
		CORSAllowOrigins:    v.GetString("cors.allow_origins"),
		DatabaseURL:         v.GetString("database.url"),
		DBMaxOpenConns:      v.GetInt("database.max_open_conns"),
		DBMaxIdleConns:      v.GetInt("database.max_idle_conns"),
		DBConnMaxLifetime:   connMaxLifetime,
		RedisURL:            v.GetString("redis.url"),
		JWTSecret:           v.GetString("jwt.secret"),
		TokenTTL:            tokenTTL,
		LeaderboardCacheTTL: ttl,
		LeaderboardSize:     v.GetInt("leaderboard.size"),
		CertificateDir:      v.GetString("certificate.dir"),
		PointsPerHour:       v.GetFloat64("points.per_hour"),
		Milestones:          milestones,
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	if cfg.LeaderboardSize <= 0 {
		cfg.LeaderboardSize = 10
	}

	if cfg.PointsPerHour <= 0 {
		cfg.PointsPerHour = 5
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}

	if cfg.DBMaxOpenConns <= 0 {
		cfg.DBMaxOpenConns = 25
	}

	if cfg.DBMaxIdleConns <= 0 {
		cfg.DBMaxIdleConns = 5
	}

	return cfg, nil
}

func parseMilestones(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	milestones := make([]float64, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		value, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid milestone value %q: %w", trimmed, err)
		}
		milestones = append(milestones, value)
	}

	return milestones, nil
}
