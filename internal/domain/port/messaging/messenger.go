package messaging

import (
	"context"

	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/entity"
)

// Messenger sends bot output back to the chat platform
type Messenger interface {
	// Reply posts the text as a reply to the original message.
	// Failures are returned wrapped in ErrReplyFailed.
	Reply(ctx context.Context, reply entity.Reply) error

	// SetWebhook registers the URL the platform pushes updates to
	SetWebhook(ctx context.Context, url string) (bool, error)
}
