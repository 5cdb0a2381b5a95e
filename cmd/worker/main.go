package main

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"vidshare-go/internal/config"
	"vidshare-go/internal/infra/database"
	infraES "vidshare-go/internal/infra/elasticsearch"
	infraKafka "vidshare-go/internal/infra/kafka"
	"vidshare-go/internal/repository"
	"vidshare-go/internal/service"
	"vidshare-go/pkg/logger"

	"go.uber.org/zap"
)

// 搜索索引 worker：消费 video_events，维护 Elasticsearch 视频索引
func main() {
	configPath := flag.String("config", "configs/config.yaml", "config file path")
	reindex := flag.Bool("reindex", false, "rebuild the whole videos index before consuming events")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 监听系统信号，优雅退出
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(ctx, &cfg.Database)
	if err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close(db)

	esClient, err := infraES.New(ctx, &cfg.Elasticsearch)
	if err != nil {
		logger.Fatal("Failed to init elasticsearch", zap.Error(err))
	}
	defer esClient.Close()

	if err := esClient.EnsureVideosIndex(ctx); err != nil {
		logger.Fatal("Failed to ensure videos index", zap.Error(err))
	}

	indexService := service.NewIndexService(
		repository.NewVideoRepository(db),
		repository.NewUserRepository(db),
		esClient,
	)

	if *reindex {
		reindexCtx, cancel := context.WithTimeout(ctx, 10*time.Minute)
		err := indexService.ReindexAll(reindexCtx)
		cancel()
		if err != nil {
			logger.Fatal("Full reindex failed", zap.Error(err))
		}
	}

	logger.Info("Search index worker started",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("index", esClient.Index()),
	)

	infraKafka.ConsumeVideoEvents(ctx, &cfg.Kafka, indexService.HandleVideoEvent)

	logger.Info("Search index worker stopped")
}
