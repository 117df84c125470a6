package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/core"
)

// EventSink receives events read from getUpdates
type EventSink func(ctx context.Context, event entity.MessageEvent) error

// Poller long-polls getUpdates and forwards message events to a sink
type Poller struct {
	api     BotAPI
	timeout int
	logger  coreport.Logger
}

// NewPoller creates a poller; timeout is the long-poll timeout in seconds
func NewPoller(client *Client, timeout int, logger coreport.Logger) *Poller {
	if timeout <= 0 {
		timeout = 60
	}
	return &Poller{api: client.api, timeout: timeout, logger: logger}
}

// Run blocks until ctx is cancelled or the update channel closes
func (p *Poller) Run(ctx context.Context, sink EventSink) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = p.timeout
	cfg.AllowedUpdates = []string{"message"}

	updates := p.api.GetUpdatesChan(cfg)
	defer p.api.StopReceivingUpdates()

	p.logger.Info("Polling for updates", map[string]any{"timeout": p.timeout})

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("Polling stopped", nil)
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			event, ok := ToEvent(update)
			if !ok {
				p.logger.Debug("Ignoring non-text update", map[string]any{"update_id": update.UpdateID})
				continue
			}
			if err := sink(ctx, event); err != nil {
				p.logger.Error("Failed to dispatch update", map[string]any{
					"update_id": update.UpdateID,
					"error":     err,
				})
			}
		}
	}
}
