package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/renanferminojc/clean-go-api/pkg/account"
	"github.com/renanferminojc/clean-go-api/pkg/app"
	"github.com/renanferminojc/clean-go-api/pkg/notification"
	"github.com/renanferminojc/clean-go-api/pkg/signup"
	"github.com/renanferminojc/clean-go-api/pkg/validator"
)

func main() {
	var config app.AppConfig
	if err := cleanenv.ReadEnv(&config); err != nil {
		slog.Error("Failed to read config", "error", err)
		os.Exit(1)
	}

	var repo account.AccountRepository
	if config.DatabaseURL != "" {
		pool, err := pgxpool.New(context.Background(), config.DatabaseURL)
		if err != nil {
			slog.Error("Failed to create database pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		repo = account.NewPostgresAccountRepository(pool)
	} else {
		slog.Info("DATABASE_URL not set, using in-memory account repository")
		repo = account.NewInMemoryAccountRepository()
	}

	var serviceOpts []account.AccountServiceOption
	if config.EmailConfigured() {
		notifier, err := notification.NewEmailNotifier(config.ToSMTPConfig())
		if err != nil {
			slog.Error("Failed to create email notifier", "error", err)
			os.Exit(1)
		}
		serviceOpts = append(serviceOpts, account.WithNotifier(notifier))
	}
	accountService := account.NewAccountService(repo, serviceOpts...)

	controller := signup.NewController(validator.NewRegexEmailValidator(), accountService)
	handle := signup.NewHandle(controller)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Route("/api/signup", handle.RegisterRoutes)

	addr := fmt.Sprintf("%s:%d", config.Host, config.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		slog.Info("Starting HTTP server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Failed to shut down server", "error", err)
	}
}
