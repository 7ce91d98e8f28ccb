package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/bizzauto/gateway/internal/api"
	"github.com/bizzauto/gateway/internal/backend"
	"github.com/bizzauto/gateway/internal/repository"
	"github.com/bizzauto/gateway/internal/service"
	"github.com/bizzauto/gateway/internal/session"
	"github.com/bizzauto/gateway/pkg/config"
	"github.com/bizzauto/gateway/pkg/job"
	"github.com/bizzauto/gateway/pkg/logger"
)

const (
	ReadTimeout = 5 * time.Second
	// Relayed backend calls are bounded by the client's own 30s timeout;
	// the write deadline has to outlast them.
	WriteTimeout = 35 * time.Second

	healthProbeInterval = time.Minute
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("create logger", err)

	sessions := session.New(cfg.Session.AccessToken)

	client := backend.NewClient(cfg.Backend.BaseURL, sessions)
	sessions.SetUserSource(client)

	repo := repository.New()

	s := service.New(repo, client)

	if cfg.Backend.HealthProbe {
		job.NewScheduler().
			Register("backend health probe", healthProbeInterval, 10*time.Second, func(ctx context.Context) error {
				health, err := client.Health(ctx)
				if err != nil {
					return err
				}

				slog.DebugContext(ctx, "backend is up", "status", health.Status)

				return nil
			}).
			Start(ctx)
	}

	handler := api.NewHandler(s)
	mw := api.NewMiddleware()

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "gateway started", "port", cfg.HTTP.Port, "backend", cfg.Backend.BaseURL)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
