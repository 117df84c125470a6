package bot

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/messaging"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/usecase"
)

// Update sources reported to metrics
const (
	SourceWebhook = "webhook"
	SourcePolling = "polling"
)

// Handler routes one message event to the processor and sends the reply
type Handler struct {
	processor     usecase.MessageProcessor
	messenger     messaging.Messenger
	metrics       coreport.Metrics
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
	updateTimeout time.Duration
}

// NewHandler creates an update handler; updateTimeout of zero leaves processing unbounded
func NewHandler(
	processor usecase.MessageProcessor,
	messenger messaging.Messenger,
	metrics coreport.Metrics,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	updateTimeout time.Duration,
) *Handler {
	return &Handler{
		processor:     processor,
		messenger:     messenger,
		metrics:       metrics,
		timeProvider:  timeProvider,
		logger:        logger,
		updateTimeout: updateTimeout,
	}
}

// Handle processes the event and always attempts a reply. A failed pipeline
// answers with the apology text and its error is returned; a failed reply is
// only logged and counted.
func (h *Handler) Handle(ctx context.Context, source string, event entity.MessageEvent) error {
	start := h.timeProvider.Now()
	defer func() {
		h.metrics.ObserveUpdate(source, h.timeProvider.Since(start).Std())
	}()

	h.logger.Info("Received message", map[string]any{
		"source":   source,
		"updateId": event.UpdateID,
		"chatId":   event.ChatID,
		"userId":   event.SenderID,
		"username": event.SenderDisplayName,
		"text":     event.Text,
		"command":  event.Command,
	})

	reply, err := h.route(ctx, event)
	if err != nil {
		h.logger.Error("Error handling message", map[string]any{
			"updateId": event.UpdateID,
			"userId":   event.SenderID,
			"command":  event.Command,
			"error":    err,
		})
		reply = h.processor.Fallback(event)
	}

	if sendErr := h.messenger.Reply(ctx, reply); sendErr != nil {
		h.metrics.IncReplyFailures()
		h.logger.Error("Failed to send reply", map[string]any{
			"chatId":    reply.ChatID,
			"messageId": reply.ReplyToMessageID,
			"error":     sendErr,
		})
	}

	return err
}

func (h *Handler) route(ctx context.Context, event entity.MessageEvent) (entity.Reply, error) {
	if h.updateTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = h.timeProvider.WithTimeout(ctx, coreport.Duration(h.updateTimeout))
		defer cancel()
	}

	if !event.IsCommand() {
		return h.processor.HandleText(ctx, event)
	}

	switch event.Command {
	case entity.CommandStart, entity.CommandHelp:
		return h.processor.HandleStart(ctx, event)
	case entity.CommandScore:
		return h.processor.HandleScore(ctx, event)
	default:
		return h.processor.HandleText(ctx, event)
	}
}
