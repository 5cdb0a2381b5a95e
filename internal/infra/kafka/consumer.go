package kafka

import (
	"context"
	"time"

	"vidshare-go/internal/config"
	"vidshare-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// VideoEventHandler 处理视频事件的回调函数
type VideoEventHandler func(ctx context.Context, ev *VideoEvent) error

// ConsumeVideoEvents 启动视频事件消费者（阻塞），ctx 取消后停止
func ConsumeVideoEvents(ctx context.Context, cfg *config.KafkaConfig, handler VideoEventHandler) {
	topic := cfg.Topic(TopicVideoEvents)
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		Topic:          topic,
		GroupID:        cfg.GroupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.FirstOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error("Failed to close kafka consumer", zap.Error(err))
		}
		logger.Info("Kafka video event consumer stopped")
	}()

	logger.Info("Kafka video event consumer started",
		zap.String("topic", topic),
		zap.String("group", cfg.GroupID),
	)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("Failed to read kafka message", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		ev, err := DecodeVideoEvent(msg.Value)
		if err != nil {
			logger.Error("Dropping malformed video event",
				zap.Error(err),
				zap.ByteString("value", msg.Value),
			)
			continue
		}

		if err := handler(ctx, ev); err != nil {
			logger.Error("Failed to handle video event",
				zap.String("type", ev.Type),
				zap.Int64("video_id", ev.VideoID),
				zap.Int64("user_id", ev.UserID),
				zap.Error(err),
			)
		}
	}
}
