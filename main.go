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

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	"github.com/todolists/todolists/handlers"
	"github.com/todolists/todolists/internal/archive"
	"github.com/todolists/todolists/internal/config"
	"github.com/todolists/todolists/internal/database"
	"github.com/todolists/todolists/internal/storage"
	"github.com/todolists/todolists/internal/todo/handler"
	"github.com/todolists/todolists/internal/todo/repository"
	"github.com/todolists/todolists/internal/todo/service"
	"github.com/todolists/todolists/pkg/logger"
	"github.com/todolists/todolists/pkg/metrics"
	"github.com/todolists/todolists/pkg/middleware"
)

var startTime = time.Now()

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	logger.Infof("config loaded: mongo=%v redis=%v archive=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.Archive.Endpoint != "")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Mongo and Redis are independent; dial them concurrently.
	var mongoClient *mongo.Client
	var redisClient *redis.Client
	g, gctx := errgroup.WithContext(ctx)
	if cfg.MongoDB.URI != "" {
		g.Go(func() error {
			c, err := database.ConnectWithRetry(gctx, database.ConnectMongo, cfg.MongoDB.URI, cfg.MongoDB.Timeout, cfg.MongoDB.ConnectAttempts, time.Second)
			if err != nil {
				return err
			}
			mongoClient = c
			return nil
		})
	}
	if addr := cfg.Redis.Addr(); addr != "" {
		g.Go(func() error {
			c := redis.NewClient(&redis.Options{Addr: addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
			if err := c.Ping(gctx).Err(); err != nil {
				_ = c.Close()
				if cfg.RateLimit.UseRedis {
					return fmt.Errorf("redis %s: %w", addr, err)
				}
				logger.Warnf("redis %s unavailable, continuing without it: %v", addr, err)
				return nil
			}
			redisClient = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Fatalf("startup: %v", err)
	}

	var itemRepo repository.ItemRepository
	var listRepo repository.ListRepository
	deps := []handlers.Dependency{}
	if mongoClient != nil {
		defer func() { _ = mongoClient.Disconnect(context.Background()) }()
		itemsCol, listsCol := database.Collections(mongoClient, cfg.MongoDB)
		mlists := repository.NewMongoListRepo(listsCol)
		if err := mlists.EnsureIndexes(ctx); err != nil {
			logger.Fatalf("lists index: %v", err)
		}
		itemRepo = repository.NewMongoItemRepo(itemsCol)
		listRepo = mlists
		deps = append(deps, handlers.Dependency{Name: "mongo", Check: func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }})
		logger.Infof("using MongoDB database %q", cfg.MongoDB.Database)
	} else {
		logger.Warnf("MONGODB_URI not set; lists are kept in memory and lost on restart")
		itemRepo = repository.NewMemoryItemRepo()
		listRepo = repository.NewMemoryListRepo()
	}
	if redisClient != nil {
		defer redisClient.Close()
		deps = append(deps, handlers.Dependency{Name: "redis", Optional: !cfg.RateLimit.UseRedis, Check: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }})
	}

	var arch handler.Archiver
	if cfg.Archive.Endpoint != "" {
		objects, err := storage.NewMinIOStorage(ctx, cfg.Archive)
		if err != nil {
			logger.Warnf("archiving disabled: %v", err)
		} else {
			arch = archive.NewArchiver(objects, cfg.Archive.URLExpiry)
			deps = append(deps, handlers.Dependency{Name: "archive", Optional: true, Check: objects.Ping})
		}
	}

	if cfg.Server.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	handlers.RegisterHealth(r, startTime, deps...)
	handlers.RegisterSwagger(r)
	handler.RegisterListRoutes(r, service.NewRouter(service.NewItemService(itemRepo), service.NewListService(listRepo)), arch)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		logger.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("shutdown: %v", err)
	}
}
