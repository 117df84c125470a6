package usecase

import (
	"context"

	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/entity"
)

// MessageClassifier counts greeting keywords in a message
type MessageClassifier interface {
	Classify(text string) int
}

// ReplyComposer renders the bot's reply texts
type ReplyComposer interface {
	Compose(matchCount int, total int64, rewards []string) string
	Welcome() string
	Score(displayName string, points int64) string
	Apology() string
}

// MessageProcessor turns one inbound message into the reply to send
type MessageProcessor interface {
	// HandleText classifies free text and credits greetings
	HandleText(ctx context.Context, event entity.MessageEvent) (entity.Reply, error)
	// HandleStart answers /start and /help
	HandleStart(ctx context.Context, event entity.MessageEvent) (entity.Reply, error)
	// HandleScore answers /score with the sender's balance
	HandleScore(ctx context.Context, event entity.MessageEvent) (entity.Reply, error)
	// Fallback is the reply sent when handling failed
	Fallback(event entity.MessageEvent) entity.Reply
}
