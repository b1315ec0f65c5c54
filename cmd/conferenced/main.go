// Command conferenced runs the conference management HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/example/conference-hub/internal/config"
	"github.com/example/conference-hub/internal/docstore"
	"github.com/example/conference-hub/internal/httpapi"
	"github.com/example/conference-hub/internal/logging"
	"github.com/example/conference-hub/internal/service"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		logging.New("info").Error("failed to load configuration", "error", err)
		return err
	}

	logger := logging.New(cfg.LogLevel)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := docstore.Open(cfg.SQLiteDSN)
	if err != nil {
		logger.Error("failed to open storage", "error", err)
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Error("failed to close storage", "error", cerr)
		}
	}()

	if err := store.Migrate(context.Background()); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		return err
	}

	idGenerator := uuid.NewString
	now := time.Now

	conferences := docstore.NewConferences(store)
	speakers := docstore.NewSpeakers(store)
	venues := docstore.NewVenues(store)
	sessions := docstore.NewSessions(store)
	attendees := docstore.NewAttendees(store)
	calls := docstore.NewCallForPapers(store)
	days := docstore.NewAgendaDays(store)

	callService := service.NewCallForPaperService(calls, conferences, sessions, speakers, idGenerator, now)

	api := httpapi.New(
		service.NewConferenceService(conferences, idGenerator),
		service.NewSpeakerService(speakers, idGenerator),
		service.NewVenueService(venues, idGenerator),
		service.NewSessionService(sessions, conferences, speakers, idGenerator),
		service.NewAttendeeService(attendees, sessions, idGenerator, now),
		callService,
		service.NewAgendaService(days, sessions, conferences, idGenerator),
		logger,
	)

	// Background sweep flips open calls for papers to closed once their
	// deadline passes.
	sweeper := cron.New()
	if _, err := sweeper.AddFunc(cfg.CFPSweepSchedule, func() {
		closed, err := callService.CloseExpired(context.Background())
		if err != nil {
			logger.Error("call for papers sweep failed", "error", err)
			return
		}
		if closed > 0 {
			logger.Info("closed expired calls for papers", "count", closed)
		}
	}); err != nil {
		logger.Error("invalid sweep schedule", "schedule", cfg.CFPSweepSchedule, "error", err)
		return err
	}
	sweeper.Start()
	defer sweeper.Stop()

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.Router(logger),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	logger.Info("conference API listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server encountered error", "error", err)
		return err
	}
	return nil
}
