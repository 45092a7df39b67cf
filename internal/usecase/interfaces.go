package usecase

import (
	"context"

	"clinic-invitations/internal/entities"
)

// DirectoryUsecaseInterface abstracts doctor directory operations for the delivery layer.
type DirectoryUsecaseInterface interface {
	ListAvailableDoctors(ctx context.Context, query string) ([]entities.Doctor, error)
	SetDoctorAvailability(ctx context.Context, actor entities.Actor, available bool) (*entities.Doctor, error)
}

// InvitationUsecaseInterface abstracts the invitation workflow.
type InvitationUsecaseInterface interface {
	SendInvitation(ctx context.Context, actor entities.Actor, inv entities.Invitation) (*entities.Invitation, error)
	RespondInvitation(ctx context.Context, actor entities.Actor, invitationID int64, decision entities.InvitationStatus) (*entities.Invitation, error)
	ClinicInvitations(ctx context.Context, actor entities.Actor) ([]entities.Invitation, error)
	DoctorInvitations(ctx context.Context, actor entities.Actor) ([]entities.Invitation, error)
}
