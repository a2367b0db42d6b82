package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/skotch-labs/shop-backoffice/internal/config"
	"github.com/skotch-labs/shop-backoffice/internal/es"
	"github.com/skotch-labs/shop-backoffice/internal/handlers"
	"github.com/skotch-labs/shop-backoffice/internal/httpserver"
	"github.com/skotch-labs/shop-backoffice/internal/logging"
	"github.com/skotch-labs/shop-backoffice/internal/mykafka"
	"github.com/skotch-labs/shop-backoffice/internal/service/token"
)

//	@title			Shop Back-Office API
//	@version		1.0
//	@description	CRUD API over users, products, categories, brands and feedbacks, plus product search and admin auth.
//	@BasePath		/

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LOG_LEVEL)
	slog.SetDefault(logger)

	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Error("database init failed", "error", err)
		os.Exit(1)
	}

	var producer *mykafka.Producer
	if cfg.KAFKA_ADDRESS != "" {
		producer, err = mykafka.NewProducer(strings.Split(cfg.KAFKA_ADDRESS, ","))
		if err != nil {
			logger.Error("kafka init failed", "error", err)
			os.Exit(1)
		}
		defer producer.Close()

		if err := producer.EnsureTopics(
			"user_events", "catalog_events", "product_events", "feedback_events",
		); err != nil {
			logger.Warn("kafka topic setup failed", "error", err)
		}
	} else {
		logger.Warn("KAFKA_ADDRESS not set, events disabled")
	}

	var indexer *es.Indexer
	if cfg.ES_URL != "" {
		esClient, err := es.NewClient(cfg)
		if err != nil {
			logger.Error("elasticsearch init failed", "error", err)
			os.Exit(1)
		}
		indexer = es.NewIndexer(esClient, cfg.ES_INDEX)
	} else {
		logger.Warn("ES_URL not set, search disabled")
	}

	jwtSecret := []byte(cfg.JWT_SECRET)
	refreshSecret := []byte(cfg.REFRESH_SECRET)

	deps := &httpserver.Deps{
		UserHandler:     &handlers.UserHandler{DB: db, Producer: pub(producer)},
		CategoryHandler: &handlers.CategoryHandler{DB: db, Producer: pub(producer)},
		BrandHandler:    &handlers.BrandHandler{DB: db, Producer: pub(producer)},
		ProductHandler:  &handlers.ProductHandler{DB: db, Producer: pub(producer), Index: idx(indexer)},
		FeedbackHandler: &handlers.FeedbackHandler{DB: db, Producer: pub(producer)},
		AuthHandler:     &handlers.AuthHandler{DB: db, JWTSecret: jwtSecret, RefreshSecret: refreshSecret},
		StatsHandler:    &handlers.StatsHandler{DB: db},
		TokenService:    &token.TokenService{DB: db, JWTSecret: jwtSecret, RefreshSecret: refreshSecret},
	}
	if indexer != nil {
		deps.SearchHandler = handlers.NewSearchHandler(indexer)
	}

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 15 * time.Second
	e.Server.WriteTimeout = 30 * time.Second
	e.Server.IdleTimeout = 60 * time.Second
	e.Use(middleware.Recover())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := logging.IntoContext(c.Request().Context(), logger)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))

	httpserver.Register(e, deps)

	go func() {
		if err := e.Start(":" + cfg.HTTP_PORT); err != nil {
			logger.Info("server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}

// pub and idx keep typed-nil interface values out of the handlers.
func pub(p *mykafka.Producer) mykafka.Publisher {
	if p == nil {
		return nil
	}
	return p
}

func idx(ix *es.Indexer) es.ProductIndexer {
	if ix == nil {
		return nil
	}
	return ix
}
