// Package entities contains core business entities.
package entities

import "time"

// NotificationEvent enumerates push notification event types.
type NotificationEvent string

const (
	// EventInvitationReceived notifies the doctor about a new invitation.
	EventInvitationReceived NotificationEvent = "invitation.received"
	// EventInvitationAccepted notifies the clinic about an acceptance.
	EventInvitationAccepted NotificationEvent = "invitation.accepted"
	// EventInvitationRejected notifies the clinic about a rejection.
	EventInvitationRejected NotificationEvent = "invitation.rejected"
)

// Notification is a best-effort push message to a doctor or clinic.
type Notification struct {
	EventID       string            `json:"event_id"`
	Event         NotificationEvent `json:"event"`
	RecipientRole Role              `json:"recipient_role"`
	RecipientID   int64             `json:"recipient_id"`
	InvitationID  int64             `json:"invitation_id"`
	OccurredAt    time.Time         `json:"occurred_at"`
}
