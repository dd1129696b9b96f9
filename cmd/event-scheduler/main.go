package main

import (
	"context"
	"log"
	"net/http"

	"github.com/SergeyKozhin/event-scheduler-backend/internal/api"
	events_service "github.com/SergeyKozhin/event-scheduler-backend/internal/business/events"
	"github.com/SergeyKozhin/event-scheduler-backend/internal/config"
	"github.com/SergeyKozhin/event-scheduler-backend/internal/database"
	"github.com/SergeyKozhin/event-scheduler-backend/internal/database/events"
	"github.com/SergeyKozhin/event-scheduler-backend/internal/redis"
	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx := context.Background()

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initialize logger: %v", err)
	}

	redisPool := redis.NewRedisPool(logger)
	activeCache := redis.NewActiveEventsCache(redisPool, logger)

	db, err := database.NewPGX(ctx)
	if err != nil {
		logger.Fatalw("unable to initialize db", "err", err)
	}

	eventsRepository := events.NewRepository()
	eventsService := events_service.NewService(db, eventsRepository, activeCache)

	api, err := api.NewApi(logger, eventsService)
	if err != nil {
		logger.Fatalw("error initiating api", "err", err)
	}

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  api,
		ErrorLog: errLogger,
	}

	logger.Infow("Started server", "port", config.Port())
	logger.Fatalw("server error", "err", server.ListenAndServe())
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
