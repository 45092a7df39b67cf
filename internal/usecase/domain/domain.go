// Package domain contains application services orchestrating the invitation workflow.
package domain

import (
	"context"
	"time"

	"clinic-invitations/internal/notifier"
	"clinic-invitations/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx        context.Context
	log        *zap.SugaredLogger
	repo       repository.Repository
	dispatcher notifier.Dispatcher
	timeout    time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	dispatcher notifier.Dispatcher,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:        ctx,
		log:        log,
		repo:       repo,
		dispatcher: dispatcher,
		timeout:    timeout,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
