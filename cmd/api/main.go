package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"afterschool/pkg/api"
	"afterschool/pkg/config"
	lessonmongo "afterschool/pkg/lesson/mongo"
	"afterschool/pkg/logger"
	ordermongo "afterschool/pkg/order/mongo"
	"afterschool/pkg/otel"
)

// @title After-School Lessons API
// @version 1.0
// @description CRUD backend for the course-booking storefront
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.NewDefault()
		fallback.Fatal().Err(err).Msg("load config")
	}
	log := logger.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	_, shutdownTracing, err := otel.InitTracing("afterschool")
	if err != nil {
		log.Fatal().Err(err).Msg("init tracing")
	}
	defer shutdownTracing(context.Background())

	// The store is a startup precondition: no point serving without it.
	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err == nil {
		err = client.Ping(connectCtx, readpref.Primary())
	}
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect")
	}
	db := client.Database(cfg.Mongo.Database)
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")

	a := api.New(lessonmongo.New(db), ordermongo.New(db), log,
		api.WithImagesDir(cfg.Images.Dir),
		api.WithCORSOrigins(cfg.Server.CORSOrigins),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      a.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server closed")
		}
	}()

	stop, stopCancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopCancel()
	<-stop.Done()

	log.Info().Msg("shutting down gracefully")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect")
	}
}
