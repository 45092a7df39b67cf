// Package main wires the HTTP server for the clinic invitation service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"clinic-invitations/internal/transport/http/server/handlers-fiber"
	"clinic-invitations/internal/usecase"

	"clinic-invitations/config"
	"clinic-invitations/internal/auth"
	"clinic-invitations/internal/notifier"
	"clinic-invitations/internal/repository"
	"clinic-invitations/internal/transport/http/middleware"
	"clinic-invitations/pkg/id"
	"clinic-invitations/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	if err := id.Init(1); err != nil {
		log.Errorw("id generator initialization error", "error", err)
		return
	}

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	var transport notifier.Transport
	if cfg.Notifier.PushEndpoint != "" {
		transport = notifier.NewWebhookTransport(cfg.Notifier.PushEndpoint, cfg.Notifier.DeliveryTimeout)
	} else {
		transport = notifier.NewLogTransport(log)
	}
	dispatcher := notifier.New(log, transport, cfg.Notifier.QueueSize, cfg.Notifier.DeliveryTimeout, cfg.Notifier.DrainTimeout)
	defer dispatcher.Close()

	verifier := auth.NewTokenVerifier([]byte(cfg.Auth.Secret), cfg.Auth.Issuer, cfg.Auth.Audience)

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, ctx, repo, dispatcher, timeout)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc)
	h.Register(serv, verifier)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
