package main

import (
	"flag"
	"os"
	"time"

	"financial-dashboard/internal/config"
	"financial-dashboard/internal/events"
	"financial-dashboard/internal/finance"
	"financial-dashboard/internal/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	migrateCmd := flag.Bool("migrate", false, "Run database migrations and seed default categories")
	seedDemoCmd := flag.Bool("seed-demo", false, "Seed demo transactions (idempotent)")
	flag.Parse()

	cfg := config.Load()
	logger.InitLogger(cfg.Stage, cfg.LogLevel)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Log.Fatal("Invalid configuration", zap.Error(err))
	}

	db, err := initDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	if *migrateCmd {
		if err := setupDatabase(db, cfg.DatabaseURL); err != nil {
			logger.Log.Fatal("Migration failed", zap.Error(err))
		}
		logger.Log.Info("Migration completed successfully")
		return
	}
	if *seedDemoCmd {
		if err := seedDemoData(db); err != nil {
			logger.Log.Fatal("Seeding demo data failed", zap.Error(err))
		}
		logger.Log.Info("Demo data seeded")
		return
	}

	opts := []finance.Option{
		finance.WithLogger(logger.Named("finance")),
		finance.WithLocale(finance.ParseLocale(cfg.LabelLocale)),
	}

	var cache *responseCache
	redisClient, err := initRedis(cfg.RedisURL)
	if err != nil {
		logger.Log.Warn("Continuing without Redis cache", zap.Error(err))
	} else {
		defer redisClient.Close()
		cache = newResponseCache(redisClient, cfg.CacheTTL)
		opts = append(opts, finance.WithRecordHook(cache.hook()))
	}

	if cfg.AMQPURL != "" {
		publisher, err := events.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPRoutingKey, logger.Named("events"))
		if err != nil {
			logger.Log.Warn("Continuing without event publishing", zap.Error(err))
		} else {
			defer publisher.Close()
			opts = append(opts, finance.WithRecordHook(publisher.Hook()))
		}
	}

	srv := &server{
		svc:           finance.NewService(newPGStore(db), opts...),
		db:            db,
		cache:         cache,
		log:           logger.Named("http"),
		strictFilters: cfg.StrictFilters,
	}

	if cfg.Stage == logger.ProdStage {
		gin.SetMode(gin.ReleaseMode)
	}
	r := newRouter(srv, cfg.CORSOrigins)

	logger.Log.Info("Server starting", zap.String("port", cfg.Port), zap.String("stage", cfg.Stage))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Error("Failed to start server", zap.Error(err))
		os.Exit(1)
	}
}

// newRouter builds the gin engine with middleware and routes
func newRouter(srv *server, origins []string) *gin.Engine {
	r := gin.New()
	r.Use(recovery(srv.log), correlationID(), requestLogger(srv.log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", correlationIDHeader},
		ExposeHeaders:    []string{"Content-Length", correlationIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	srv.routes(r)
	return r
}
