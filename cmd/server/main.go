package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ydalvarez/techstore/internal/cart"
	"github.com/ydalvarez/techstore/internal/catalog"
	"github.com/ydalvarez/techstore/internal/checkout"
	"github.com/ydalvarez/techstore/internal/config"
	"github.com/ydalvarez/techstore/internal/es"
	"github.com/ydalvarez/techstore/internal/events"
	"github.com/ydalvarez/techstore/internal/handlers"
	"github.com/ydalvarez/techstore/internal/logging"
	"github.com/ydalvarez/techstore/internal/middleware/auth"
	loggingmw "github.com/ydalvarez/techstore/internal/middleware/logging"
	"github.com/ydalvarez/techstore/internal/orders"
	"github.com/ydalvarez/techstore/internal/prefs"
	"github.com/ydalvarez/techstore/internal/session"
	httpserver "github.com/ydalvarez/techstore/internal/transport/http"
	"github.com/ydalvarez/techstore/internal/view"
)

const noticeTTL = 4 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	logger := logging.New(cfg.LogLevel)

	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Error("db init failed", "error", err)
		os.Exit(1)
	}

	ctx := logging.IntoContext(context.Background(), logger)

	sessions := session.NewStore(db)
	if err := sessions.Seed(ctx); err != nil {
		logger.Error("user seed failed", "error", err)
		os.Exit(1)
	}

	products := catalog.NewService(db)
	if err := products.Seed(ctx); err != nil {
		logger.Error("catalog seed failed", "error", err)
		os.Exit(1)
	}

	prod := events.NewProducer(cfg.KafkaBrokers)

	esClient, err := es.NewClient(cfg)
	if err != nil {
		logger.Error("elasticsearch init failed", "error", err)
		os.Exit(1)
	}
	if esClient == nil {
		logger.Info("search disabled, no ES_URL configured")
	}

	cartStore := cart.NewStore()
	flow := checkout.NewFlow(db, cartStore, prod)
	notices := view.NewNotices(noticeTTL)

	guard := &auth.Guard{Sessions: sessions, JWTSecret: cfg.JWTSecret}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		Guard:           guard,
		AuthHandler:     &handlers.AuthHandler{Sessions: sessions, JWTSecret: cfg.JWTSecret, Producer: prod},
		ProductHandler:  &handlers.ProductHandler{Catalog: products, Producer: prod},
		CartHandler:     &handlers.CartHandler{Cart: cartStore, Catalog: products, Producer: prod},
		CheckoutHandler: &handlers.CheckoutHandler{Flow: flow, Sessions: sessions},
		OrderHandler:    &handlers.OrderHandler{Orders: orders.NewService(db), Sessions: sessions},
		SearchHandler:   &handlers.SearchHandler{ES: esClient, Index: cfg.ES_INDEX},
		NavHandler:      &handlers.NavHandler{Sessions: sessions, Notices: notices},
		PrefsHandler:    &handlers.PrefsHandler{Prefs: prefs.NewService(db)},
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	notices.Close()

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	if err := prod.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}
