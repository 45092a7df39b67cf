package usecase

import (
	"context"
	"time"

	"clinic-invitations/internal/notifier"
	"clinic-invitations/internal/repository"
	"clinic-invitations/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	DirectoryUsecaseInterface
	InvitationUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, dispatcher notifier.Dispatcher, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, dispatcher, timeout)
}
