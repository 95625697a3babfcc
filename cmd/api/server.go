package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	mw "github.com/pvolkova/bookshelf-api/internal/api/middlewares"
	"github.com/pvolkova/bookshelf-api/internal/api/router"
	"github.com/pvolkova/bookshelf-api/internal/config"
	"github.com/pvolkova/bookshelf-api/internal/logger"
	"github.com/pvolkova/bookshelf-api/internal/repository/sqlconnect"
	"github.com/pvolkova/bookshelf-api/pkg/utils"
)

func main() {
	var initDB bool
	flag.BoolVar(&initDB, "init-db", false, "initialize database schema before serving")
	flag.BoolVar(&initDB, "i", initDB, "shorthand for -init-db")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log := logger.Get()
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Init(cfg.Debug)
	log := logger.Get()

	if initDB {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := sqlconnect.InitDatabase(ctx, cfg); err != nil {
			cancel()
			log.Fatal().Err(err).Msg("database initialization failed")
		}
		cancel()
	}

	db, err := sqlconnect.ConnectDB(cfg.DSN(""))
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	rl := mw.NewRateLimiter(5, 20)

	handler := utils.ApplyMiddleware(
		router.Router(db),
		mw.Cors,
		mw.ResponseTime,
		rl.Middleware,
		mw.SecurityHeaders,
		mw.RequestID,
		mw.Recovery,
	)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  time.Minute,
	}

	go func() {
		log.Info().
			Str("addr", cfg.Addr()).
			Str("database", cfg.DBName).
			Str("db_host", cfg.DBHost+":"+cfg.DBPort).
			Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
