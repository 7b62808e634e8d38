package main

import (
	"crypto-copilot/internal/adapter/api"
	"crypto-copilot/internal/adapter/client"
	"crypto-copilot/internal/adapter/store"
	"crypto-copilot/internal/config"
	"crypto-copilot/internal/domain/repository"
	"crypto-copilot/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	// Quoting provider
	prices := client.NewCoinGecko(cfg.CoinGeckoBaseURL, cfg.CoinGeckoAPIKey, cfg.HTTPTimeout, logger)
	orchestrator := usecase.NewOrchestrator(prices, logger)

	// Request verification: the signed variant checks the ECDSA body
	// signature against GitHub's published keys; the unsigned variant
	// trusts the token header alone.
	var verifier repository.Verifier = usecase.NewTokenVerifier()
	if cfg.VerifySignatures {
		keys := client.NewGitHubKeys(cfg.GitHubAPIBaseURL, cfg.HTTPTimeout, logger)
		verifier = usecase.NewSignatureVerifier(keys)
	} else {
		logger.Warn("signature verification disabled: requests are trusted on the token header alone")
	}

	// Redis for Rate Limiting (optional)
	var limiter repository.RequestLimiter
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		})
		limiter = store.NewRedisLimiter(rdb, cfg.RateLimit, cfg.RateWindow)
	}

	handler := api.NewAgentHandler(verifier, orchestrator, limiter, logger)

	app := fiber.New(fiber.Config{
		AppName: "Crypto Copilot Extension",
	})
	api.SetupRouter(app, handler)

	logger.WithField("port", cfg.Port).Info("crypto copilot extension listening")
	logger.Fatal(app.Listen(":" + cfg.Port))
}
