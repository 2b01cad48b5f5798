package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"naya-blog/api/middleware"
	"naya-blog/api/router"
	"naya-blog/auth"
	"naya-blog/cache"
	"naya-blog/config"
	"naya-blog/db"
	"naya-blog/eventbus"
	"naya-blog/repositories"
	"naya-blog/services"
)

const sitemapCacheKey = "naya-blog:sitemap:posts"

// @title           Naya Blog API
// @version         1.0
// @description     Blog posts with derived slug, table of contents, reading time and SEO metadata
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	config.InitLogger(cfg.Logging)

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
	repo := repositories.NewPostRepository(mongo.Database())

	// EventBus 초기화 및 토픽 보장 (brokers 가 없으면 발행 비활성화)
	topic := eventbus.NewTopic(cfg.Kafka.Topic)
	var bus eventbus.EventBus = eventbus.NoopEventBus{}
	if cfg.Kafka.Brokers != "" {
		if cfg.Kafka.EnsureTopics {
			if err := eventbus.EnsureTopics(ctx, cfg.Kafka); err != nil {
				config.Logger.Errorf("failed to ensure eventbus topics: %v", err)
			}
		}
		kbus, err := eventbus.NewKafkaEventBus(cfg.Kafka)
		if err != nil {
			config.Logger.Errorf("failed to create event bus: %v", err)
			os.Exit(1)
		}
		bus = kbus
	} else {
		config.Logger.Info("kafka brokers not configured; post events are not published")
	}
	defer bus.Close()

	// Redis 가 없거나 연결에 실패하면 캐시 없이 동작한다.
	var sitemapStore cache.Store
	var sitemapInvalidator services.CacheInvalidator
	if cfg.Redis.Addr != "" {
		rdb, err := cache.Open(ctx, cfg.Redis)
		if err != nil {
			config.Logger.Warnf("redis unavailable, continuing without sitemap cache: %v", err)
		} else {
			defer rdb.Close()
			jc := cache.NewJSONCache(rdb, sitemapCacheKey, cfg.Redis.SitemapTTL)
			sitemapStore, sitemapInvalidator = jc, jc
		}
	}

	var tokens middleware.TokenParser
	if cfg.Auth.JWTSecret != "" {
		jwtManager, err := auth.NewJWTManager(cfg.Auth)
		if err != nil {
			config.Logger.Errorf("failed to create JWT manager: %v", err)
			os.Exit(1)
		}
		tokens = jwtManager
	} else {
		config.Logger.Warn("JWT_SECRET not set; write routes are unauthenticated")
	}

	r := router.New(router.Deps{
		Posts:   services.NewPostService(repo, bus, topic, sitemapInvalidator),
		Sitemap: services.NewSitemapService(repo, cfg.Site, sitemapStore),
		Health:  mongo,
		Tokens:  tokens,
		CORS:    cfg.CORS,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		config.Logger.Infof("starting api server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			config.Logger.Errorf("api server failed: %v", err)
		}
	case <-ctx.Done():
		config.Logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout(cfg.Server))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.Errorf("graceful shutdown failed: %v", err)
	}
	config.Logger.Info("api server stopped")
}

func shutdownTimeout(s config.ServerConfig) time.Duration {
	if s.ShutdownTimeout > 0 {
		return s.ShutdownTimeout
	}
	return 10 * time.Second
}
