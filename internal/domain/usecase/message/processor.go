package message

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/usecase"
)

// Processor runs the classify, credit, evaluate and compose pipeline
type Processor struct {
	classifier usecase.MessageClassifier
	ledger     usecase.PointsLedger
	rewards    usecase.RewardEvaluator
	composer   usecase.ReplyComposer
	metrics    coreport.Metrics
	logger     coreport.Logger
}

// NewProcessor wires the message pipeline
func NewProcessor(
	classifier usecase.MessageClassifier,
	ledger usecase.PointsLedger,
	rewards usecase.RewardEvaluator,
	composer usecase.ReplyComposer,
	metrics coreport.Metrics,
	logger coreport.Logger,
) usecase.MessageProcessor {
	return &Processor{
		classifier: classifier,
		ledger:     ledger,
		rewards:    rewards,
		composer:   composer,
		metrics:    metrics,
		logger:     logger,
	}
}

// HandleText credits greetings found in the text. Text without greetings
// gets a filler reply and never reaches the ledger.
func (p *Processor) HandleText(ctx context.Context, event entity.MessageEvent) (entity.Reply, error) {
	count := p.classifier.Classify(event.Text)
	if count == 0 {
		p.metrics.IncMessages(coreport.MessageKindOther)
		return event.ReplyTo(p.composer.Compose(0, 0, nil)), nil
	}

	total, err := p.ledger.Add(ctx, event.SenderID, event.SenderDisplayName, int64(count))
	if err != nil {
		return entity.Reply{}, fmt.Errorf("credit %d points to user %d: %w", count, event.SenderID, err)
	}

	rewards := p.rewards.Evaluate(total)

	p.metrics.IncMessages(coreport.MessageKindGreeting)
	p.metrics.AddPointsAwarded(int64(count))
	for _, label := range rewards {
		p.metrics.IncRewards(label)
	}

	fields := map[string]any{
		"userId":   event.SenderID,
		"username": event.SenderDisplayName,
		"points":   count,
		"total":    total,
	}
	if len(rewards) > 0 {
		fields["rewards"] = rewards
		p.logger.Info("Reward reached", fields)
	} else {
		p.logger.Debug("Greeting credited", fields)
	}

	return event.ReplyTo(p.composer.Compose(count, total, rewards)), nil
}

// HandleStart answers /start and /help with the welcome text
func (p *Processor) HandleStart(_ context.Context, event entity.MessageEvent) (entity.Reply, error) {
	p.metrics.IncMessages(coreport.MessageKindStart)
	return event.ReplyTo(p.composer.Welcome()), nil
}

// HandleScore answers /score with the sender's current total
func (p *Processor) HandleScore(ctx context.Context, event entity.MessageEvent) (entity.Reply, error) {
	points, err := p.ledger.Get(ctx, event.SenderID)
	if err != nil {
		return entity.Reply{}, fmt.Errorf("read points of user %d: %w", event.SenderID, err)
	}

	p.metrics.IncMessages(coreport.MessageKindScore)
	return event.ReplyTo(p.composer.Score(event.SenderDisplayName, points)), nil
}

// Fallback is sent when one of the handlers failed
func (p *Processor) Fallback(event entity.MessageEvent) entity.Reply {
	return event.ReplyTo(p.composer.Apology())
}
