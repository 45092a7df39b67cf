// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrUnauthenticated is returned when no valid caller identity is present.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden is returned when the caller may not act on this resource.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDoctorNotFound signals missing doctor.
	ErrDoctorNotFound = errors.New("doctor not found")
	// ErrDoctorUnavailable signals the doctor is not open for invitations.
	ErrDoctorUnavailable = errors.New("doctor unavailable")
	// ErrClinicNotFound signals missing clinic.
	ErrClinicNotFound = errors.New("clinic not found")
	// ErrInvitationNotFound signals missing invitation.
	ErrInvitationNotFound = errors.New("invitation not found")
	// ErrInvitationExists signals a pending invitation already links clinic and doctor.
	ErrInvitationExists = errors.New("invitation exists")
	// ErrInvitationClosed signals a response attempt on a non-pending invitation.
	ErrInvitationClosed = errors.New("invitation closed")
	// ErrNotInvitee signals a response attempt by a doctor other than the target.
	ErrNotInvitee = errors.New("not the invited doctor")
)
