package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"photizon/internal/config"
	"photizon/internal/http-server/handlers/church/createChurch"
	"photizon/internal/http-server/handlers/church/getChurch"
	"photizon/internal/http-server/handlers/content/createContent"
	"photizon/internal/http-server/handlers/content/createReservation"
	"photizon/internal/http-server/handlers/content/createTicketType"
	"photizon/internal/http-server/handlers/content/getAllContents"
	"photizon/internal/http-server/handlers/content/getContent"
	"photizon/internal/http-server/handlers/content/getTicketTypes"
	"photizon/internal/http-server/handlers/order/completeOrder"
	"photizon/internal/http-server/handlers/order/createOrder"
	"photizon/internal/http-server/handlers/order/getOrder"
	"photizon/internal/http-server/middleware/mwlogger"
	"photizon/internal/lib/logger/handlers/slogpretty"
	"photizon/internal/lib/logger/sl"
	"photizon/internal/storage/postgres"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting photizon", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/churches", createChurch.New(log, storage))
	router.Get("/churches/{id}", getChurch.New(log, storage))

	router.Post("/contents", createContent.New(log, storage))
	router.Get("/contents", getAllContents.New(log, storage))
	router.Get("/contents/{id}", getContent.New(log, storage))
	router.Post("/contents/{id}/ticket-types", createTicketType.New(log, storage))
	router.Get("/contents/{id}/ticket-types", getTicketTypes.New(log, storage))
	router.Post("/contents/{id}/reservations", createReservation.New(log, storage, cfg.Ticketing.ReservationTTL))
	router.Post("/contents/{id}/orders", createOrder.New(log, storage))

	router.Post("/orders/{id}/complete", completeOrder.New(log, storage))
	router.Get("/orders/{id}", getOrder.New(log, storage))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	// The sweeper gets its own stop channel: sharing the signal
	// channel would let it consume the one delivered signal and
	// leave main blocked below.
	done := make(chan struct{})
	go sweepReservations(log, storage, cfg.Ticketing.SweepInterval, done)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(http.ErrServerClosed, err) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop
	close(done)

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

type reservationSweeper interface {
	DeleteExpiredReservations() (int64, error)
}

func sweepReservations(log *slog.Logger, storage reservationSweeper, interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed, err := storage.DeleteExpiredReservations()
			if err != nil {
				log.Error("failed to delete expired reservations", sl.Err(err))
				continue
			}
			if removed > 0 {
				log.Info("expired reservations deleted", slog.Int64("count", removed))
			}
		case <-done:
			return
		}
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
