package api

import (
	"bufio"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"crypto-copilot/internal/copilot"
	"crypto-copilot/internal/domain/entity"
	"crypto-copilot/internal/domain/repository"
	"crypto-copilot/internal/usecase"
)

// AgentHandler binds the chat pipeline to the HTTP transport: it captures
// the raw body and headers, maps verification outcomes to plain statuses
// and streams the event sequence on success.
type AgentHandler struct {
	verifier     repository.Verifier
	orchestrator *usecase.Orchestrator
	limiter      repository.RequestLimiter // nil disables rate limiting
	logger       *logrus.Entry
}

func NewAgentHandler(verifier repository.Verifier, orch *usecase.Orchestrator, limiter repository.RequestLimiter, logger *logrus.Logger) *AgentHandler {
	return &AgentHandler{
		verifier:     verifier,
		orchestrator: orch,
		limiter:      limiter,
		logger:       logger.WithField("component", "api"),
	}
}

// HandleWelcome answers the liveness probe.
func (h *AgentHandler) HandleWelcome(c *fiber.Ctx) error {
	return c.SendString("Welcome to Crypto Copilot Extension!")
}

// HandleAgent runs one chat turn. Rejections before the protocol starts
// (empty body, missing token, bad signature, rate limit) are plain
// statuses with no events; everything from parsing onward is caught once
// and answered with a single errors frame.
func (h *AgentHandler) HandleAgent(c *fiber.Ctx) error {
	log := h.logger.WithField("request_id", uuid.NewString())

	rawBody := c.Body()
	if len(rawBody) == 0 {
		return c.Status(fiber.StatusBadRequest).SendString("No data received. Please provide the necessary information.")
	}

	creds := entity.Credentials{
		Token:         c.Get("x-github-token"),
		Signature:     c.Get("github-public-key-signature"),
		KeyIdentifier: c.Get("github-public-key-identifier"),
	}
	if creds.Token == "" {
		log.Warn("missing GitHub token")
		return c.Status(fiber.StatusUnauthorized).SendString("Missing GitHub token")
	}

	if h.limiter != nil {
		allowed, err := h.limiter.Allow(c.Context(), creds.Token)
		if err != nil {
			// A broken limiter should not take the agent down with it.
			log.WithError(err).Warn("rate limiter unavailable, letting request through")
		} else if !allowed {
			return c.Status(fiber.StatusTooManyRequests).SendString(entity.ErrRateLimitExceeded.Error())
		}
	}

	payload, err := h.verifier.Verify(c.Context(), rawBody, creds)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrEmptyBody):
			return c.Status(fiber.StatusBadRequest).SendString("No data received. Please provide the necessary information.")
		case errors.Is(err, entity.ErrMissingToken):
			return c.Status(fiber.StatusUnauthorized).SendString("Missing GitHub token")
		default:
			return h.sendErrorsFrame(c, log, err)
		}
	}
	if !payload.Valid {
		log.Warn("request signature rejected")
		return c.Status(fiber.StatusUnauthorized).SendString("Invalid signature")
	}

	reply, err := h.orchestrator.Respond(c.Context(), payload.Message)
	if err != nil {
		return h.sendErrorsFrame(c, log, err)
	}

	c.Set(fiber.HeaderContentType, "text/html")
	c.Set("X-Content-Type-Options", "nosniff")
	orch := h.orchestrator
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		if err := orch.Emit(reply, copilot.NewStreamSink(w)); err != nil {
			// The client went away mid-stream; nothing left to tell it.
			log.WithError(err).Debug("stream aborted")
		}
	})
	return nil
}

func (h *AgentHandler) sendErrorsFrame(c *fiber.Ctx, log *logrus.Entry, err error) error {
	log.WithError(err).Error("chat turn failed")

	msg := err.Error()
	if msg == "" {
		msg = "Something went wrong. Please try again later."
	}
	frame := copilot.ErrorsEvent(copilot.Error{
		Type:       "agent",
		Code:       "PROCESSING_ERROR",
		Message:    msg,
		Identifier: "processing_error",
	})
	return c.Status(fiber.StatusInternalServerError).Send(frame.Encode())
}
