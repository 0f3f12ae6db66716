package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/ngodirectory/go-services/handlers"
	"github.com/ngodirectory/go-services/internal/config"
	"github.com/ngodirectory/go-services/internal/database"
	"github.com/ngodirectory/go-services/internal/ngo/handler"
	"github.com/ngodirectory/go-services/internal/ngo/repository"
	"github.com/ngodirectory/go-services/internal/ngo/service"
	"github.com/ngodirectory/go-services/pkg/logger"
	"github.com/ngodirectory/go-services/pkg/metrics"
	"github.com/ngodirectory/go-services/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging level can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: sqlite=%s redis=%v rate_limit=%v", cfg.SQLite.Path, cfg.Redis.Host != "", cfg.RateLimit.Enabled)

	ctx := context.Background()

	r := gin.New()
	r.Use(middleware.CORS())
	r.Use(gin.Logger(), gin.Recovery())

	// Connect to Redis early so the rate-limiter can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional global rate limiter (per client IP)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Open the SQLite store and prepare the query set
	db, err := database.OpenSQLite(ctx, cfg.SQLite.Path, cfg.SQLite.Timeout)
	if err != nil {
		logger.Fatalf("failed to open sqlite store at %s: %v", cfg.SQLite.Path, err)
	}
	defer func() { _ = db.Close() }()

	repo, err := repository.NewSQLRepo(db)
	if err != nil {
		logger.Fatalf("failed to prepare statements: %v", err)
	}
	defer func() { _ = repo.Close() }()

	svc := service.NewService(repo)

	// Seed once at startup, before the server accepts requests. This is a
	// deliberate departure from checking a process-global flag per request.
	if cfg.SQLite.Seed {
		n, err := svc.SeedIfEmpty(ctx)
		if err != nil {
			logger.Fatalf("failed to seed store: %v", err)
		}
		if n > 0 {
			logger.Infof("database seeded with %d organizations", n)
		} else {
			logger.Debugf("database already seeded")
		}
	}

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness endpoint — return 200 only when critical dependencies are available
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		if err := db.PingContext(c.Request.Context()); err != nil {
			deps["storage"] = false
			ready = false
		} else {
			deps["storage"] = true
		}

		// Redis readiness only matters when the limiter depends on it
		if cfg.Redis.Host != "" && cfg.RateLimit.UseRedis {
			deps["redis"] = redisClient != nil
			if !deps["redis"] {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": time.Since(startTime).String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()})
	})

	handlers.RegisterSwagger(r)
	handler.RegisterRoutes(r, svc)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting directory service on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
