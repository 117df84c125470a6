package telegram

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/error"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/logger"
)

func TestClient_Reply(t *testing.T) {
	api := &fakeBotAPI{}
	client := NewClientWithAPI(api, logger.NewNoopLogger())

	err := client.Reply(context.Background(), entity.Reply{ChatID: 100, ReplyToMessageID: 7, Text: "hi back"})

	require.NoError(t, err)
	require.Len(t, api.sent, 1)
	msg, ok := api.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(100), msg.ChatID)
	assert.Equal(t, 7, msg.ReplyToMessageID)
	assert.Equal(t, "hi back", msg.Text)
}

func TestClient_ReplyFailure(t *testing.T) {
	api := &fakeBotAPI{sendErr: errors.New("Forbidden: bot was blocked by the user")}
	client := NewClientWithAPI(api, logger.NewNoopLogger())

	err := client.Reply(context.Background(), entity.Reply{ChatID: 1, ReplyToMessageID: 2, Text: "x"})

	assert.ErrorIs(t, err, errs.ErrReplyFailed)
}

func TestClient_ReplyCancelledContext(t *testing.T) {
	api := &fakeBotAPI{}
	client := NewClientWithAPI(api, logger.NewNoopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Reply(ctx, entity.Reply{ChatID: 1, Text: "x"})

	assert.ErrorIs(t, err, errs.ErrReplyFailed)
	assert.Empty(t, api.sent)
}

func TestClient_SetWebhook(t *testing.T) {
	api := &fakeBotAPI{}
	client := NewClientWithAPI(api, logger.NewNoopLogger())

	ok, err := client.SetWebhook(context.Background(), "https://bot.example.com/secret")

	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, api.requests, 1)
	wh, isWebhook := api.requests[0].(tgbotapi.WebhookConfig)
	require.True(t, isWebhook)
	assert.Equal(t, "bot.example.com", wh.URL.Host)
	assert.Equal(t, "/secret", wh.URL.Path)
}

func TestClient_SetWebhookRejected(t *testing.T) {
	api := &fakeBotAPI{response: &tgbotapi.APIResponse{Ok: false, Description: "bad webhook"}}
	client := NewClientWithAPI(api, logger.NewNoopLogger())

	ok, err := client.SetWebhook(context.Background(), "https://bot.example.com/secret")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClient_SetWebhookErrors(t *testing.T) {
	client := NewClientWithAPI(&fakeBotAPI{reqErr: errors.New("timeout")}, logger.NewNoopLogger())

	_, err := client.SetWebhook(context.Background(), "https://bot.example.com/secret")
	assert.Error(t, err)

	_, err = client.SetWebhook(context.Background(), "://not a url")
	assert.Error(t, err)
}

func TestClient_DeleteWebhook(t *testing.T) {
	api := &fakeBotAPI{}
	client := NewClientWithAPI(api, logger.NewNoopLogger())

	require.NoError(t, client.DeleteWebhook(context.Background()))
	assert.IsType(t, tgbotapi.DeleteWebhookConfig{}, api.requests[0])

	api.response = &tgbotapi.APIResponse{Ok: false, Description: "nope"}
	assert.Error(t, client.DeleteWebhook(context.Background()))
}
