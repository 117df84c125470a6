package bot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/error"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/time"
	mockcore "github.com/amirhossein-jamali/greeting-rewards-bot/mocks/port/core"
	mockmessaging "github.com/amirhossein-jamali/greeting-rewards-bot/mocks/port/messaging"
	mockusecase "github.com/amirhossein-jamali/greeting-rewards-bot/mocks/port/usecase"
)

type handlerFixture struct {
	processor *mockusecase.MockMessageProcessor
	messenger *mockmessaging.MockMessenger
	metrics   *mockcore.MockMetrics
	handler   *Handler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	f := &handlerFixture{
		processor: mockusecase.NewMockMessageProcessor(t),
		messenger: mockmessaging.NewMockMessenger(t),
		metrics:   mockcore.NewMockMetrics(t),
	}
	f.metrics.EXPECT().ObserveUpdate(mock.Anything, mock.Anything).Maybe()
	f.handler = NewHandler(f.processor, f.messenger, f.metrics, timeprovider.NewRealTimeProvider(), logger.NewNoopLogger(), time.Second)
	return f
}

func event(text, command string) entity.MessageEvent {
	return entity.MessageEvent{
		UpdateID:          1,
		ChatID:            10,
		MessageID:         20,
		SenderID:          30,
		SenderDisplayName: "ivan",
		Text:              text,
		Command:           command,
	}
}

func TestHandler_Routing(t *testing.T) {
	testCases := []struct {
		name    string
		event   entity.MessageEvent
		prepare func(f *handlerFixture, ev entity.MessageEvent, reply entity.Reply)
	}{
		{
			name:  "start",
			event: event("/start", entity.CommandStart),
			prepare: func(f *handlerFixture, ev entity.MessageEvent, reply entity.Reply) {
				f.processor.EXPECT().HandleStart(mock.Anything, ev).Return(reply, nil).Once()
			},
		},
		{
			name:  "help",
			event: event("/help", entity.CommandHelp),
			prepare: func(f *handlerFixture, ev entity.MessageEvent, reply entity.Reply) {
				f.processor.EXPECT().HandleStart(mock.Anything, ev).Return(reply, nil).Once()
			},
		},
		{
			name:  "score",
			event: event("/score", entity.CommandScore),
			prepare: func(f *handlerFixture, ev entity.MessageEvent, reply entity.Reply) {
				f.processor.EXPECT().HandleScore(mock.Anything, ev).Return(reply, nil).Once()
			},
		},
		{
			name:  "unknown command is text",
			event: event("/hi there", "hi"),
			prepare: func(f *handlerFixture, ev entity.MessageEvent, reply entity.Reply) {
				f.processor.EXPECT().HandleText(mock.Anything, ev).Return(reply, nil).Once()
			},
		},
		{
			name:  "plain text",
			event: event("hello", ""),
			prepare: func(f *handlerFixture, ev entity.MessageEvent, reply entity.Reply) {
				f.processor.EXPECT().HandleText(mock.Anything, ev).Return(reply, nil).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			reply := tc.event.ReplyTo("answer")
			tc.prepare(f, tc.event, reply)
			f.messenger.EXPECT().Reply(mock.Anything, reply).Return(nil).Once()

			err := f.handler.Handle(context.Background(), SourceWebhook, tc.event)

			assert.NoError(t, err)
		})
	}
}

func TestHandler_PipelineErrorSendsApology(t *testing.T) {
	f := newHandlerFixture(t)
	ev := event("hi", "")
	apology := ev.ReplyTo("sorry")
	storeErr := errs.NewStoreError("redis", "get", 30, errors.New("timeout"))

	f.processor.EXPECT().HandleText(mock.Anything, ev).Return(entity.Reply{}, storeErr).Once()
	f.processor.EXPECT().Fallback(ev).Return(apology).Once()
	f.messenger.EXPECT().Reply(mock.Anything, apology).Return(nil).Once()

	err := f.handler.Handle(context.Background(), SourcePolling, ev)

	assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
}

func TestHandler_ReplyFailureIsCountedNotReturned(t *testing.T) {
	f := newHandlerFixture(t)
	ev := event("hello", "")
	reply := ev.ReplyTo("🎉")

	f.processor.EXPECT().HandleText(mock.Anything, ev).Return(reply, nil).Once()
	f.messenger.EXPECT().Reply(mock.Anything, reply).
		Return(errs.NewReplyError(ev.ChatID, ev.MessageID, errors.New("chat not found"))).Once()
	f.metrics.EXPECT().IncReplyFailures().Once()

	err := f.handler.Handle(context.Background(), SourceWebhook, ev)

	assert.NoError(t, err)
}

func TestHandler_ProcessingContextHasDeadline(t *testing.T) {
	f := newHandlerFixture(t)
	ev := event("hi", "")
	reply := ev.ReplyTo("ok")

	f.processor.EXPECT().HandleText(mock.Anything, ev).
		RunAndReturn(func(ctx context.Context, _ entity.MessageEvent) (entity.Reply, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			return reply, nil
		}).Once()
	f.messenger.EXPECT().Reply(mock.Anything, reply).Return(nil).Once()

	assert.NoError(t, f.handler.Handle(context.Background(), SourceWebhook, ev))
}

func TestHandler_ObservesDuration(t *testing.T) {
	processor := mockusecase.NewMockMessageProcessor(t)
	messenger := mockmessaging.NewMockMessenger(t)
	metrics := mockcore.NewMockMetrics(t)
	handler := NewHandler(processor, messenger, metrics, timeprovider.NewRealTimeProvider(), logger.NewNoopLogger(), 0)
	ev := event("/start", entity.CommandStart)

	processor.EXPECT().HandleStart(mock.Anything, ev).Return(ev.ReplyTo("welcome"), nil).Once()
	messenger.EXPECT().Reply(mock.Anything, mock.Anything).Return(nil).Once()
	metrics.EXPECT().ObserveUpdate(SourcePolling, mock.AnythingOfType("time.Duration")).Once()

	assert.NoError(t, handler.Handle(context.Background(), SourcePolling, ev))
}
