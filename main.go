package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/finboard/backend/internal/config"
	v1 "github.com/finboard/backend/pkg/controllers/v1"
	"github.com/finboard/backend/pkg/dashboard"
	"github.com/finboard/backend/pkg/fetcher"
	"github.com/finboard/backend/pkg/mirror"
	"github.com/finboard/backend/pkg/models"
	"github.com/finboard/backend/pkg/reference"
	"github.com/finboard/backend/pkg/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	set, err := referenceSet(cfg.CategoriesFile)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	client, err := fetcher.New(cfg.FinanceAPIURL, cfg.FinanceAPITimeout)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	co := v1.Controller{
		Service: dashboard.New(dashboard.NewRemote(client), set),
		Ping:    client.Ping,
	}

	if cfg.DataSource == config.SourceLocal {
		co = local(ctx, cfg, client, set)
	}

	apiURL, err := url.Parse(cfg.APIURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config(apiURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(co, r.Group("/"))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Info().Msg("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server shutdown")
		}
	}()

	log.Info().Str("port", port).Str("source", cfg.DataSource).Msg("Starting server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Msg(err.Error())
	}
}

func referenceSet(path string) (*reference.Set, error) {
	if path == "" {
		return reference.Default()
	}
	return reference.Load(path)
}

// local sets up the controller to serve from the offline mirror. The mirror
// is synchronized once at startup and then on the configured schedule.
func local(ctx context.Context, cfg *config.Config, client *fetcher.Client, set *reference.Set) v1.Controller {
	err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	db, err := models.Connect(cfg.DatabasePath + "?_pragma=busy_timeout(5000)")
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	m := mirror.New(client, db)

	// The mirror keeps serving the last synchronized data when the
	// backend is not reachable
	if _, err := m.Sync(ctx); err != nil {
		log.Warn().Err(err).Msg("Initial synchronization failed")
	}

	if cfg.SyncSchedule != "" {
		scheduler, err := m.Schedule(cfg.SyncSchedule)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}

		go func() {
			<-ctx.Done()
			<-scheduler.Stop().Done()
		}()
	}

	return v1.Controller{
		Service: dashboard.New(dashboard.NewLocal(db, cfg.TravelPatterns, client), set),
		Mirror:  m,
		DB:      db,
		Ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
}
