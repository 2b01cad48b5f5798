package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"naya-blog/cache"
	"naya-blog/cmd/worker/handlers"
	"naya-blog/config"
	"naya-blog/db"
	"naya-blog/eventbus"
	"naya-blog/repositories"
	"naya-blog/services"
)

const sitemapCacheKey = "naya-blog:sitemap:posts"

// worker 는 포스트 이벤트를 구독해 Redis의 sitemap 캐시를 다시 채운다.
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	if cfg.Logging.ServiceName == "" || cfg.Logging.ServiceName == "naya-blog-api" {
		cfg.Logging.ServiceName = "naya-blog-worker"
	}
	config.InitLogger(cfg.Logging)

	if cfg.Kafka.Brokers == "" || cfg.Redis.Addr == "" {
		config.Logger.Error("worker requires KAFKA_BOOTSTRAP_SERVERS and REDIS_ADDR")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// MongoDB 초기화
	mongo, err := db.Open(ctx, cfg.Mongo)
	if err != nil {
		config.Logger.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := mongo.Close(context.Background()); err != nil {
			config.Logger.Warnf("mongo disconnect: %v", err)
		}
	}()

	rdb, err := cache.Open(ctx, cfg.Redis)
	if err != nil {
		config.Logger.Errorf("failed to connect redis: %v", err)
		os.Exit(1)
	}
	defer rdb.Close()
	sitemapCache := cache.NewJSONCache(rdb, sitemapCacheKey, cfg.Redis.SitemapTTL)

	// EventBus 초기화 및 토픽 보장
	topic := eventbus.NewTopic(cfg.Kafka.Topic)
	if cfg.Kafka.EnsureTopics {
		if err := eventbus.EnsureTopics(ctx, cfg.Kafka); err != nil {
			config.Logger.Errorf("failed to ensure eventbus topics: %v", err)
		}
	}
	bus, err := eventbus.NewKafkaEventBus(cfg.Kafka)
	if err != nil {
		config.Logger.Errorf("failed to create event bus: %v", err)
		os.Exit(1)
	}
	defer bus.Close()

	repo := repositories.NewPostRepository(mongo.Database())
	eventHandlers := handlers.NewEventHandlers(
		sitemapCache,
		services.NewSitemapService(repo, cfg.Site, sitemapCache),
	)

	config.Logger.Info("starting sitemap worker with eventbus...")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := bus.Subscribe(ctx, cfg.Kafka.GroupID, topic, eventHandlers.Route); err != nil && !errors.Is(err, context.Canceled) {
			config.Logger.Errorf("eventbus subscribe error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	config.Logger.Info("received shutdown signal, shutting down worker...")
	wg.Wait()
	config.Logger.Info("worker stopped")
}
