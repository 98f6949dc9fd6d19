package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	BackendURL    string
	BackendAPIKey string
	UseMock       bool
	StrictRemote  bool

	ProbeTimeout  time.Duration
	ProbeCacheTTL time.Duration

	RedisAddr string

	JWTSecret string
	TokenTTL  time.Duration

	HTTPAddr         string
	StoragePublicURL string
	RateLimitRPS     float64
	RateLimitBurst   int

	MockLatency bool

	LogLevel string
	LogFile  string
}

// RemoteEnabled is true when a backend is configured and mock mode is not forced.
func (c Config) RemoteEnabled() bool {
	return c.BackendURL != "" && c.BackendAPIKey != "" && !c.UseMock
}

func defaults(v *viper.Viper) {
	v.SetDefault("USE_MOCK", false)
	v.SetDefault("STRICT_REMOTE", false)
	v.SetDefault("PROBE_TIMEOUT", 2*time.Second)
	v.SetDefault("PROBE_CACHE_TTL", 5*time.Minute)
	v.SetDefault("JWT_SECRET", "dev-secret-change-me")
	v.SetDefault("TOKEN_TTL", 12*time.Hour)
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("STORAGE_PUBLIC_URL", "/storage")
	v.SetDefault("RATE_LIMIT_RPS", 10.0)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("MOCK_LATENCY", true)
	v.SetDefault("LOG_LEVEL", "info")
}

var keys = []string{
	"BACKEND_URL", "BACKEND_API_KEY", "USE_MOCK", "STRICT_REMOTE", "PROBE_TIMEOUT", "PROBE_CACHE_TTL",
	"REDIS_ADDR", "JWT_SECRET", "TOKEN_TTL", "HTTP_ADDR", "STORAGE_PUBLIC_URL", "RATE_LIMIT_RPS",
	"RATE_LIMIT_BURST", "MOCK_LATENCY", "LOG_LEVEL", "LOG_FILE",
}

// Load reads .env (when present), then config.yaml from the working directory (when
// present), then the environment. Environment variables win.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}
	return FromViper(v), nil
}

// FromViper builds a Config from v, binding the environment first.
func FromViper(v *viper.Viper) Config {
	defaults(v)
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	return Config{
		BackendURL:       v.GetString("BACKEND_URL"),
		BackendAPIKey:    v.GetString("BACKEND_API_KEY"),
		UseMock:          v.GetBool("USE_MOCK"),
		StrictRemote:     v.GetBool("STRICT_REMOTE"),
		ProbeTimeout:     v.GetDuration("PROBE_TIMEOUT"),
		ProbeCacheTTL:    v.GetDuration("PROBE_CACHE_TTL"),
		RedisAddr:        v.GetString("REDIS_ADDR"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		TokenTTL:         v.GetDuration("TOKEN_TTL"),
		HTTPAddr:         v.GetString("HTTP_ADDR"),
		StoragePublicURL: v.GetString("STORAGE_PUBLIC_URL"),
		RateLimitRPS:     v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:   v.GetInt("RATE_LIMIT_BURST"),
		MockLatency:      v.GetBool("MOCK_LATENCY"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		LogFile:          v.GetString("LOG_FILE"),
	}
}
