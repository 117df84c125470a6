package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/entity"
)

// ToEvent maps an update to a MessageEvent.
// Updates without a text message from a user are reported as not ok and must be ignored.
func ToEvent(update tgbotapi.Update) (entity.MessageEvent, bool) {
	msg := update.Message
	if msg == nil || msg.From == nil || msg.Chat == nil {
		return entity.MessageEvent{}, false
	}
	if strings.TrimSpace(msg.Text) == "" {
		return entity.MessageEvent{}, false
	}

	return entity.MessageEvent{
		UpdateID:          update.UpdateID,
		ChatID:            msg.Chat.ID,
		MessageID:         msg.MessageID,
		SenderID:          msg.From.ID,
		SenderDisplayName: entity.DisplayName(msg.From.UserName, msg.From.FirstName),
		Text:              msg.Text,
		Command:           strings.ToLower(msg.Command()),
	}, true
}
