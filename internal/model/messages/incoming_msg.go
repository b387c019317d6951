package messages

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"

	"max.ks1230/fx-converter/internal/logger"
)

//go:generate minimock -i messageSender -o ./mock/ -s "_mock.go"

type messageSender interface {
	SendMessage(text string, userID int64) error
}

type MessageHandler interface {
	HandleMessage(ctx context.Context, text string, userID int64) (string, error)
}

type Service struct {
	tgClient messageSender
	handler  MessageHandler
}

func NewService(tgClient messageSender, storage sessionStorage, provider ratesProvider, config config) *Service {
	return &Service{
		tgClient: tgClient,
		handler:  newHandler(storage, provider, config),
	}
}

type Message struct {
	Text   string
	UserID int64
}

func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()

	command := commandLabel(msg.Text)
	span.SetTag("command", command)

	start := time.Now()
	err := s.handle(ctx, msg)
	elapsed := time.Since(start)

	observeResponse(command, elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

func (s *Service) handle(ctx context.Context, msg Message) error {
	resp, err := s.handler.HandleMessage(ctx, msg.Text, msg.UserID)
	if err != nil {
		logger.Error("handle message", zap.Int64("user", msg.UserID), zap.Error(err))
		if resp == "" {
			return err
		}
		if sendErr := s.tgClient.SendMessage(resp, msg.UserID); sendErr != nil {
			logger.Error("send error reply", zap.Error(sendErr))
		}
		return err
	}
	return s.tgClient.SendMessage(resp, msg.UserID)
}
