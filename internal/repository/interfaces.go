// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"
	"time"

	"clinic-invitations/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// DirectoryInterface exposes doctor and clinic lookups.
type DirectoryInterface interface {
	ListAvailableDoctors(ctx context.Context, query string) ([]entities.Doctor, error)
	GetDoctor(ctx context.Context, doctorID int64) (*entities.Doctor, error)
	SetDoctorAvailability(ctx context.Context, doctorID int64, available bool) (*entities.Doctor, error)
	CreateDoctor(ctx context.Context, doctor entities.Doctor) (*entities.Doctor, error)
	CreateClinic(ctx context.Context, clinic entities.Clinic) (*entities.Clinic, error)
}

// InvitationInterface exposes invitation store operations. RespondInvitation
// performs a compare-and-set against the pending status: of two concurrent
// responses exactly one succeeds, the other gets entities.ErrInvitationClosed.
type InvitationInterface interface {
	CreateInvitation(ctx context.Context, inv entities.Invitation) (*entities.Invitation, error)
	GetInvitation(ctx context.Context, invitationID int64) (*entities.Invitation, error)
	RespondInvitation(ctx context.Context, invitationID, doctorID int64, status entities.InvitationStatus, respondedAt time.Time) (*entities.Invitation, error)
	InvitationsByClinic(ctx context.Context, clinicID int64) ([]entities.Invitation, error)
	InvitationsByDoctor(ctx context.Context, doctorID int64) ([]entities.Invitation, error)
}
