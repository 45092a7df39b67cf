// Package api defines the JSON request and response models of the HTTP surface.
package api

import "time"

// ErrorCode enumerates stable machine-readable error codes.
type ErrorCode string

const (
	// UNAUTHENTICATED means no valid caller credential was presented.
	UNAUTHENTICATED ErrorCode = "UNAUTHENTICATED"
	// FORBIDDEN means the caller may not act on this resource.
	FORBIDDEN ErrorCode = "FORBIDDEN"
	// NOTFOUND means a referenced doctor, clinic or invitation is absent.
	NOTFOUND ErrorCode = "NOT_FOUND"
	// INVITATIONEXISTS means a pending invitation already links the pair.
	INVITATIONEXISTS ErrorCode = "INVITATION_EXISTS"
	// INVITATIONCLOSED means the invitation already left the pending state.
	INVITATIONCLOSED ErrorCode = "INVITATION_CLOSED"
	// VALIDATION means the request body failed validation.
	VALIDATION ErrorCode = "VALIDATION"
	// INTERNAL means an unexpected server-side failure.
	INTERNAL ErrorCode = "INTERNAL"
)

// ErrorBody carries the code and message of an error response.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResponse is the stable error envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Doctor is the transport representation of a doctor.
type Doctor struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	IsAvailable    bool   `json:"is_available"`
}

// Invitation is the transport representation of an invitation.
type Invitation struct {
	ID          int64      `json:"id"`
	ClinicID    int64      `json:"clinic_id"`
	DoctorID    int64      `json:"doctor_id"`
	Message     string     `json:"message,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

// DoctorList wraps the available-doctors listing.
type DoctorList struct {
	Doctors []Doctor `json:"doctors"`
}

// InvitationList wraps invitation listings.
type InvitationList struct {
	Invitations []Invitation `json:"invitations"`
}

// InvitationEnvelope wraps a single invitation.
type InvitationEnvelope struct {
	Invitation Invitation `json:"invitation"`
}

// DoctorEnvelope wraps a single doctor.
type DoctorEnvelope struct {
	Doctor Doctor `json:"doctor"`
}

// SendInvitationRequest is the body of POST /api/clinics/invitations/send.
type SendInvitationRequest struct {
	DoctorID int64  `json:"doctor_id"`
	ClinicID int64  `json:"clinic_id"`
	Message  string `json:"message"`
}

// RespondInvitationRequest is the body of PATCH /api/doctor/invitations/:id.
type RespondInvitationRequest struct {
	Status string `json:"status"`
}

// SetAvailabilityRequest is the body of PATCH /api/doctor/availability.
type SetAvailabilityRequest struct {
	Available bool `json:"available"`
}
