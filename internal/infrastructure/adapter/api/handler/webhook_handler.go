package handler

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/messaging"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/bot"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/telegram"
)

// UpdateHandler processes one message event
type UpdateHandler interface {
	Handle(ctx context.Context, source string, event entity.MessageEvent) error
}

// WebhookHandler receives Telegram updates and registers the webhook URL
type WebhookHandler struct {
	secret    string
	publicURL string
	updates   UpdateHandler
	messenger messaging.Messenger
	logger    coreport.Logger
}

// NewWebhookHandler creates a webhook handler. secret is the path segment Telegram posts to;
// publicURL, when set, replaces https://{request host} as the registered base URL.
func NewWebhookHandler(
	secret string,
	publicURL string,
	updates UpdateHandler,
	messenger messaging.Messenger,
	logger coreport.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		secret:    secret,
		publicURL: strings.TrimRight(publicURL, "/"),
		updates:   updates,
		messenger: messenger,
		logger:    logger,
	}
}

func (h *WebhookHandler) secretMatches(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(h.secret)) == 1
}

// Receive handles POST /:secret. The update is processed before the response is written.
func (h *WebhookHandler) Receive(c *gin.Context) {
	if !h.secretMatches(c.Param("secret")) {
		_ = c.Error(errs.ErrWebhookNotFound)
		c.String(http.StatusNotFound, "Not Found")
		return
	}

	var update tgbotapi.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.logger.Error("Webhook error", map[string]any{
			"error": fmt.Errorf("%w: %w", errs.ErrMalformedUpdate, err),
		})
		c.String(http.StatusInternalServerError, "Error")
		return
	}

	event, ok := telegram.ToEvent(update)
	if !ok {
		h.logger.Debug("Ignoring non-text update", map[string]any{"updateId": update.UpdateID})
		c.String(http.StatusOK, "OK")
		return
	}

	// Telegram redelivers on non-2xx and the apology has already gone out.
	if err := h.updates.Handle(c.Request.Context(), bot.SourceWebhook, event); err != nil {
		h.logger.Error("Update processing failed", map[string]any{
			"updateId": update.UpdateID,
			"error":    err,
		})
	}

	c.String(http.StatusOK, "OK")
}

// SetWebhook handles GET /set_webhook
func (h *WebhookHandler) SetWebhook(c *gin.Context) {
	url := h.webhookURL(c.Request.Host)

	ok, err := h.messenger.SetWebhook(c.Request.Context(), url)
	if err != nil {
		h.logger.Error("Failed to set webhook", map[string]any{"error": err})
		c.String(http.StatusInternalServerError, "Error: %s", err.Error())
		return
	}

	h.logger.Info("Webhook set", map[string]any{"ok": ok})
	c.String(http.StatusOK, "Webhook set: %t", ok)
}

func (h *WebhookHandler) webhookURL(host string) string {
	base := h.publicURL
	if base == "" {
		base = "https://" + host
	}
	return base + "/" + h.secret
}

// WebhookURL is the URL registered when the bot is reachable at publicURL
func (h *WebhookHandler) WebhookURL() string {
	return h.publicURL + "/" + h.secret
}
