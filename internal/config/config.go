package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the server needs from the environment. It is
// constructed once in main and passed into the constructors explicitly.
type Config struct {
	Port string

	CoinGeckoBaseURL string
	CoinGeckoAPIKey  string
	GitHubAPIBaseURL string

	// RedisAddr empty disables rate limiting entirely.
	RedisAddr  string
	RateLimit  int
	RateWindow time.Duration

	HTTPTimeout time.Duration

	// VerifySignatures selects the signed variant of request verification.
	// When false the service trusts the token header alone.
	VerifySignatures bool

	LogLevel string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	return &Config{
		Port:             getEnv("PORT", "3000"),
		CoinGeckoBaseURL: getEnv("COINGECKO_BASE_URL", "https://api.coingecko.com/api/v3"),
		CoinGeckoAPIKey:  os.Getenv("COINGECKO_API_KEY"),
		GitHubAPIBaseURL: getEnv("GITHUB_API_BASE_URL", "https://api.github.com"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RateLimit:        getEnvInt("RATE_LIMIT", 30),
		RateWindow:       time.Duration(getEnvInt("RATE_WINDOW_SECONDS", 60)) * time.Second,
		HTTPTimeout:      time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 10)) * time.Second,
		VerifySignatures: getEnvBool("SIGNATURE_VERIFICATION", false),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}
