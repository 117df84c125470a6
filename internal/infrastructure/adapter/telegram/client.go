package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/messaging"
)

// BotAPI is the part of *tgbotapi.BotAPI the adapter calls
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Options configures the Bot API connection
type Options struct {
	Token       string
	APIEndpoint string // format string with token and method verbs, empty for api.telegram.org
	Debug       bool
}

// Client implements messaging.Messenger on the Telegram Bot API
type Client struct {
	api      BotAPI
	username string
	logger   coreport.Logger
}

var _ messaging.Messenger = (*Client)(nil)

// NewClient authenticates the token with getMe and returns a ready client
func NewClient(opts Options, logger coreport.Logger) (*Client, error) {
	var (
		api *tgbotapi.BotAPI
		err error
	)
	if opts.APIEndpoint != "" {
		api, err = tgbotapi.NewBotAPIWithAPIEndpoint(opts.Token, opts.APIEndpoint)
	} else {
		api, err = tgbotapi.NewBotAPI(opts.Token)
	}
	if err != nil {
		return nil, fmt.Errorf("connect to telegram bot api: %w", err)
	}
	api.Debug = opts.Debug

	client := NewClientWithAPI(api, logger)
	client.username = api.Self.UserName
	return client, nil
}

// NewClientWithAPI wraps an existing Bot API implementation
func NewClientWithAPI(api BotAPI, logger coreport.Logger) *Client {
	return &Client{api: api, logger: logger}
}

// Username is the bot's @name as reported by getMe
func (c *Client) Username() string {
	return c.username
}

// Reply sends reply.Text to the chat as a reply to the original message
func (c *Client) Reply(ctx context.Context, reply entity.Reply) error {
	if err := ctx.Err(); err != nil {
		return errs.NewReplyError(reply.ChatID, reply.ReplyToMessageID, err)
	}

	msg := tgbotapi.NewMessage(reply.ChatID, reply.Text)
	msg.ReplyToMessageID = reply.ReplyToMessageID
	msg.AllowSendingWithoutReply = true

	if _, err := c.api.Send(msg); err != nil {
		return errs.NewReplyError(reply.ChatID, reply.ReplyToMessageID, err)
	}
	return nil
}

// SetWebhook registers url with setWebhook and reports Telegram's ok flag
func (c *Client) SetWebhook(_ context.Context, url string) (bool, error) {
	wh, err := tgbotapi.NewWebhook(url)
	if err != nil {
		return false, fmt.Errorf("build webhook config: %w", err)
	}

	resp, err := c.api.Request(wh)
	if err != nil {
		return false, fmt.Errorf("set webhook: %w", err)
	}

	c.logger.Info("Webhook registered", map[string]any{
		"ok":          resp.Ok,
		"description": resp.Description,
	})
	return resp.Ok, nil
}

// DeleteWebhook removes any registered webhook so getUpdates can be used
func (c *Client) DeleteWebhook(_ context.Context) error {
	resp, err := c.api.Request(tgbotapi.DeleteWebhookConfig{})
	if err != nil {
		return fmt.Errorf("delete webhook: %w", err)
	}
	if !resp.Ok {
		return fmt.Errorf("delete webhook: %s", resp.Description)
	}
	return nil
}
