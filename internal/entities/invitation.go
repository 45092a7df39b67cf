// Package entities contains core business entities.
package entities

import "time"

// InvitationStatus enumerates invitation lifecycle states.
type InvitationStatus string

const (
	// StatusPending marks an invitation awaiting the doctor's response.
	StatusPending InvitationStatus = "pending"
	// StatusAccepted marks an invitation accepted by the doctor.
	StatusAccepted InvitationStatus = "accepted"
	// StatusRejected marks an invitation rejected by the doctor.
	StatusRejected InvitationStatus = "rejected"
)

// Terminal reports whether the status admits no further transitions.
func (s InvitationStatus) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// ValidDecision reports whether the status is an allowed response value.
func (s InvitationStatus) ValidDecision() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Invitation is a domain model of a clinic's offer to a doctor.
// Invitations transition pending -> accepted or pending -> rejected exactly
// once and are never deleted.
type Invitation struct {
	ID          int64
	ClinicID    int64
	DoctorID    int64
	Message     string
	Status      InvitationStatus
	CreatedAt   time.Time
	RespondedAt *time.Time
}
