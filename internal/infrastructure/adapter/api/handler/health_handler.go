package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/api/dto"
)

// LivenessText is the body of GET /
const LivenessText = "🤖 Telegram Bot is running! 🚀"

// HealthHandler serves liveness and health probes
type HealthHandler struct {
	tokenConfigured bool
	store           string
	mode            string
}

// NewHealthHandler creates a health handler describing the running bot
func NewHealthHandler(tokenConfigured bool, store, mode string) *HealthHandler {
	return &HealthHandler{
		tokenConfigured: tokenConfigured,
		store:           store,
		mode:            mode,
	}
}

// Index handles GET /
func (h *HealthHandler) Index(c *gin.Context) {
	c.String(http.StatusOK, LivenessText)
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	token := "missing"
	if h.tokenConfigured {
		token = "configured"
	}
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:   "healthy",
		BotToken: token,
		Store:    h.store,
		Mode:     h.mode,
	})
}
