package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinic-invitations/internal/entities"
	"clinic-invitations/pkg/id"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	selectClinicExistsQuery   = `SELECT EXISTS(SELECT 1 FROM clinics WHERE id=$1)`
	selectDoctorForSendQuery  = `SELECT is_available FROM doctors WHERE id=$1`
	insertInvitationQuery     = `
INSERT INTO invitations(id, clinic_id, doctor_id, message, status)
VALUES ($1, $2, $3, $4, 'pending')
RETURNING created_at`
	selectInvitationQuery = `
SELECT id, clinic_id, doctor_id, message, status, created_at, responded_at
FROM invitations WHERE id=$1`
	selectInvitationForUpdateQuery = selectInvitationQuery + ` FOR UPDATE`
	respondInvitationQuery         = `
UPDATE invitations SET status=$2, responded_at=$3
WHERE id=$1 AND status='pending'
RETURNING status, responded_at`
	invitationsByClinicQuery = `
SELECT id, clinic_id, doctor_id, message, status, created_at, responded_at
FROM invitations WHERE clinic_id=$1 ORDER BY created_at DESC`
	invitationsByDoctorQuery = `
SELECT id, clinic_id, doctor_id, message, status, created_at, responded_at
FROM invitations WHERE doctor_id=$1 ORDER BY created_at DESC`
)

// CreateInvitation validates the referenced clinic and doctor and inserts a
// pending invitation with a store-assigned id. A second pending invitation
// for the same clinic/doctor pair is rejected.
func (p *Postgres) CreateInvitation(ctx context.Context, inv entities.Invitation) (res *entities.Invitation, err error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var clinicExists bool
	if err := tx.QueryRow(ctx, selectClinicExistsQuery, inv.ClinicID).Scan(&clinicExists); err != nil {
		return nil, fmt.Errorf("clinic lookup: %w", err)
	}
	if !clinicExists {
		return nil, entities.ErrClinicNotFound
	}

	var available bool
	if err := tx.QueryRow(ctx, selectDoctorForSendQuery, inv.DoctorID).Scan(&available); err != nil {
		p.log.Errorw("failed to query doctor", "error", err, "doctor_id", inv.DoctorID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrDoctorNotFound
		}
		return nil, fmt.Errorf("doctor lookup: %w", err)
	}
	if !available {
		return nil, entities.ErrDoctorUnavailable
	}

	inv.ID = id.New()
	inv.Status = entities.StatusPending
	if err := tx.QueryRow(ctx, insertInvitationQuery, inv.ID, inv.ClinicID, inv.DoctorID, inv.Message).
		Scan(&inv.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrInvitationExists
		}
		p.log.Errorw("failed to insert invitation", "error", err, "clinic_id", inv.ClinicID, "doctor_id", inv.DoctorID)
		return nil, fmt.Errorf("insert invitation: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("invitation created", "invitation_id", inv.ID, "clinic_id", inv.ClinicID, "doctor_id", inv.DoctorID)
	return &inv, nil
}

// GetInvitation fetches an invitation by id.
func (p *Postgres) GetInvitation(ctx context.Context, invitationID int64) (*entities.Invitation, error) {
	var inv entities.Invitation
	err := p.db.QueryRow(ctx, selectInvitationQuery, invitationID).
		Scan(&inv.ID, &inv.ClinicID, &inv.DoctorID, &inv.Message, &inv.Status, &inv.CreatedAt, &inv.RespondedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}
	return &inv, nil
}

// RespondInvitation records the doctor's decision under a row lock. The update
// is conditional on the current status still being pending, so of two
// concurrent responses exactly one wins.
func (p *Postgres) RespondInvitation(ctx context.Context, invitationID, doctorID int64, status entities.InvitationStatus, respondedAt time.Time) (res *entities.Invitation, err error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var inv entities.Invitation
	if err := tx.QueryRow(ctx, selectInvitationForUpdateQuery, invitationID).
		Scan(&inv.ID, &inv.ClinicID, &inv.DoctorID, &inv.Message, &inv.Status, &inv.CreatedAt, &inv.RespondedAt); err != nil {
		p.log.Errorw("failed to select invitation for update", "error", err, "invitation_id", invitationID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}

	if inv.DoctorID != doctorID {
		return nil, entities.ErrNotInvitee
	}
	if inv.Status != entities.StatusPending {
		return nil, entities.ErrInvitationClosed
	}

	if err := tx.QueryRow(ctx, respondInvitationQuery, invitationID, status, respondedAt).
		Scan(&inv.Status, &inv.RespondedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrInvitationClosed
		}
		p.log.Errorw("failed to update invitation", "error", err, "invitation_id", invitationID)
		return nil, fmt.Errorf("respond invitation: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("invitation responded", "invitation_id", invitationID, "doctor_id", doctorID, "status", status)
	return &inv, nil
}

// InvitationsByClinic lists a clinic's sent invitations, newest first.
func (p *Postgres) InvitationsByClinic(ctx context.Context, clinicID int64) ([]entities.Invitation, error) {
	return p.listInvitations(ctx, invitationsByClinicQuery, clinicID)
}

// InvitationsByDoctor lists a doctor's received invitations, newest first.
func (p *Postgres) InvitationsByDoctor(ctx context.Context, doctorID int64) ([]entities.Invitation, error) {
	return p.listInvitations(ctx, invitationsByDoctorQuery, doctorID)
}

func (p *Postgres) listInvitations(ctx context.Context, query string, ownerID int64) ([]entities.Invitation, error) {
	rows, err := p.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	defer rows.Close()

	invs := make([]entities.Invitation, 0)
	for rows.Next() {
		var inv entities.Invitation
		if err := rows.Scan(&inv.ID, &inv.ClinicID, &inv.DoctorID, &inv.Message, &inv.Status, &inv.CreatedAt, &inv.RespondedAt); err != nil {
			p.log.Errorw("failed to scan invitation", "error", err)
			return nil, fmt.Errorf("scan invitation: %w", err)
		}
		invs = append(invs, inv)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate invitations", "error", err)
		return nil, fmt.Errorf("iterate invitations: %w", err)
	}

	return invs, nil
}
