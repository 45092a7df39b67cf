package domain

import (
	"context"
	"strings"

	"clinic-invitations/internal/entities"
)

// ListAvailableDoctors returns available doctors, optionally filtered by a
// case-insensitive substring of name or specialization. Requires no caller
// identity; an empty result is not an error.
func (u *Usecase) ListAvailableDoctors(ctx context.Context, query string) ([]entities.Doctor, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListAvailableDoctors(ctx, strings.TrimSpace(query))
}

// SetDoctorAvailability lets a doctor toggle their own availability flag.
func (u *Usecase) SetDoctorAvailability(ctx context.Context, actor entities.Actor, available bool) (*entities.Doctor, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !actor.Authenticated() {
		return nil, entities.ErrUnauthenticated
	}
	if !actor.IsDoctor() {
		return nil, entities.ErrForbidden
	}

	doctor, err := u.repo.SetDoctorAvailability(ctx, actor.ID, available)
	if err != nil {
		return nil, err
	}
	u.log.Infow("availability toggled", "doctor_id", actor.ID, "is_available", available)
	return doctor, nil
}
