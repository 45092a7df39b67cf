package domain

import (
	"context"
	"fmt"
	"time"

	"clinic-invitations/internal/entities"
)

// SendInvitation creates a pending invitation from the authenticated clinic to
// a doctor and notifies the doctor. The clinic in the request body must match
// the caller identity.
func (u *Usecase) SendInvitation(ctx context.Context, actor entities.Actor, inv entities.Invitation) (*entities.Invitation, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !actor.Authenticated() {
		return nil, entities.ErrUnauthenticated
	}
	if !actor.IsClinic() {
		return nil, entities.ErrForbidden
	}
	if inv.DoctorID <= 0 {
		return nil, fmt.Errorf("%w: doctor_id is required", entities.ErrInvalidArgument)
	}
	if inv.ClinicID == 0 {
		inv.ClinicID = actor.ID
	}
	if inv.ClinicID != actor.ID {
		return nil, entities.ErrForbidden
	}

	res, err := u.repo.CreateInvitation(ctx, inv)
	if err != nil {
		return nil, err
	}

	u.dispatcher.Notify(entities.RoleDoctor, res.DoctorID, entities.EventInvitationReceived, res.ID)
	u.log.Infow("invitation sent", "invitation_id", res.ID, "clinic_id", res.ClinicID, "doctor_id", res.DoctorID)
	return res, nil
}

// RespondInvitation records the target doctor's accept/reject decision and
// notifies the sending clinic. Responding to a non-pending invitation fails
// with entities.ErrInvitationClosed.
func (u *Usecase) RespondInvitation(ctx context.Context, actor entities.Actor, invitationID int64, decision entities.InvitationStatus) (*entities.Invitation, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !actor.Authenticated() {
		return nil, entities.ErrUnauthenticated
	}
	if !actor.IsDoctor() {
		return nil, entities.ErrForbidden
	}
	if invitationID <= 0 {
		return nil, fmt.Errorf("%w: invitation id is required", entities.ErrInvalidArgument)
	}
	if !decision.ValidDecision() {
		return nil, fmt.Errorf("%w: status must be accepted or rejected", entities.ErrInvalidArgument)
	}

	res, err := u.repo.RespondInvitation(ctx, invitationID, actor.ID, decision, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	event := entities.EventInvitationAccepted
	if res.Status == entities.StatusRejected {
		event = entities.EventInvitationRejected
	}
	u.dispatcher.Notify(entities.RoleClinic, res.ClinicID, event, res.ID)
	u.log.Infow("invitation responded", "invitation_id", res.ID, "doctor_id", actor.ID, "status", res.Status)
	return res, nil
}

// ClinicInvitations lists the authenticated clinic's sent invitations.
func (u *Usecase) ClinicInvitations(ctx context.Context, actor entities.Actor) ([]entities.Invitation, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !actor.Authenticated() {
		return nil, entities.ErrUnauthenticated
	}
	if !actor.IsClinic() {
		return nil, entities.ErrForbidden
	}
	return u.repo.InvitationsByClinic(ctx, actor.ID)
}

// DoctorInvitations lists the authenticated doctor's received invitations.
func (u *Usecase) DoctorInvitations(ctx context.Context, actor entities.Actor) ([]entities.Invitation, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !actor.Authenticated() {
		return nil, entities.ErrUnauthenticated
	}
	if !actor.IsDoctor() {
		return nil, entities.ErrForbidden
	}
	return u.repo.InvitationsByDoctor(ctx, actor.ID)
}
