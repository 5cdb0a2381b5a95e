package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vidshare-go/internal/api/handler"
	"vidshare-go/internal/api/middleware"
	"vidshare-go/internal/api/router"
	"vidshare-go/internal/config"
	"vidshare-go/internal/infra/database"
	infraES "vidshare-go/internal/infra/elasticsearch"
	infraKafka "vidshare-go/internal/infra/kafka"
	infraMinio "vidshare-go/internal/infra/minio"
	infraRedis "vidshare-go/internal/infra/redis"
	infraS3 "vidshare-go/internal/infra/s3"
	"vidshare-go/internal/metrics"
	"vidshare-go/internal/model"
	"vidshare-go/internal/repository"
	"vidshare-go/internal/service"
	"vidshare-go/pkg/logger"
	"vidshare-go/pkg/utils"

	_ "vidshare-go/api/openapi"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title VidShare API
// @version 1.0
// @description 视频分享平台 REST API：账号、视频、点赞、订阅、评论、观看历史、通知

// @host 127.0.0.1:5000
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 输入格式: Bearer {token}

func main() {
	configPath := flag.String("config", "configs/config.yaml", "config file path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	metrics.Register()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 初始化数据库
	db, err := database.New(ctx, &cfg.Database)
	if err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db, model.All()...); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	// 初始化 Redis（可选，失败则不使用详情缓存）
	var cache service.VideoCache
	if cfg.Redis.Host != "" {
		rdb, err := infraRedis.New(&cfg.Redis)
		if err != nil {
			logger.Warn("Redis init failed, video cache disabled", zap.Error(err))
		} else {
			defer infraRedis.Close(rdb)
			cache = infraRedis.NewVideoCache(rdb, cfg.Redis.VideoTTLDuration())
		}
	}

	store, err := newObjectStore(ctx, &cfg.Storage)
	if err != nil {
		logger.Fatal("Failed to init object storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}

	// 初始化 Kafka 生产者（未配置 broker 时不发送索引事件）
	var publisher service.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		producer := infraKafka.NewProducer(&cfg.Kafka)
		defer producer.Close()
		publisher = producer
	}

	// 初始化 Elasticsearch（可选，失败则搜索降级到 DB）
	var searcher service.VideoSearcher
	if cfg.Elasticsearch.Enabled {
		esClient, err := infraES.New(ctx, &cfg.Elasticsearch)
		if err != nil {
			logger.Warn("Elasticsearch init failed, search will fallback to DB", zap.Error(err))
		} else {
			defer esClient.Close()
			searcher = esClient
		}
	}

	tokens := utils.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpireDuration(), cfg.App.Name)
	folder := cfg.Storage.Folder

	// 初始化依赖（Repository -> Service -> Handler）
	userRepo := repository.NewUserRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	watchLaterRepo := repository.NewWatchLaterRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	authService := service.NewAuthService(userRepo, store, tokens, folder)
	userService := service.NewUserService(userRepo, subRepo, videoRepo, store, cache, publisher, folder)
	videoService := service.NewVideoService(videoRepo, likeRepo, subRepo, store, cache, publisher, folder)
	interactionService := service.NewInteractionService(userRepo, videoRepo, likeRepo, subRepo, watchLaterRepo, cache)
	historyService := service.NewHistoryService(userRepo, videoRepo)
	commentService := service.NewCommentService(commentRepo, videoRepo, userRepo, cache)
	notificationService := service.NewNotificationService(notificationRepo)
	searchService := service.NewSearchService(videoRepo, searcher)

	gin.SetMode(cfg.App.Mode)
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Metrics())
	r.Use(middleware.Logger())

	// 注册基础路由
	r.GET("/", rootHandler(cfg))
	r.GET("/healthz", healthCheckHandler(cfg))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册业务路由
	router.Setup(r,
		tokens,
		middleware.NewIPRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.WindowDuration(), cfg.RateLimit.Burst),
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService, interactionService),
		handler.NewMeHandler(historyService, interactionService, notificationService),
		handler.NewVideoHandler(videoService, interactionService, historyService),
		handler.NewSearchHandler(searchService),
		handler.NewCommentHandler(commentService),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server listening",
			zap.String("name", cfg.App.Name),
			zap.String("version", cfg.App.Version),
			zap.String("mode", cfg.App.Mode),
			zap.String("addr", addr),
			zap.String("storage", cfg.Storage.Driver),
			zap.Bool("cache", cache != nil),
			zap.Bool("search_index", searcher != nil),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server stopped unexpectedly", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("Server exited")
}

// newObjectStore 按 storage.driver 选择 MinIO 或 S3
func newObjectStore(ctx context.Context, cfg *config.StorageConfig) (service.ObjectStore, error) {
	switch cfg.Driver {
	case "", "minio":
		store, err := infraMinio.New(&cfg.MinIO)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "s3":
		store, err := infraS3.New(ctx, &cfg.S3)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// healthCheckHandler 健康检查接口
func healthCheckHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   cfg.App.Name,
			"version":   cfg.App.Version,
		})
	}
}

// rootHandler 根路径处理器
func rootHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s API", cfg.App.Name),
			"version": cfg.App.Version,
			"docs":    "/swagger/index.html",
		})
	}
}
