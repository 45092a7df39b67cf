package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"clinic-invitations/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	listAvailableDoctorsQuery = `
SELECT d.id, d.name, d.specialization, d.is_available, d.created_at
FROM doctors d
WHERE d.is_available = true
ORDER BY d.name`
	searchAvailableDoctorsQuery = `
SELECT d.id, d.name, d.specialization, d.is_available, d.created_at
FROM doctors d
WHERE d.is_available = true AND (d.name ILIKE '%' || $1 || '%' OR d.specialization ILIKE '%' || $1 || '%')
ORDER BY d.name`
	selectDoctorQuery          = `SELECT id, name, specialization, is_available, created_at FROM doctors WHERE id=$1`
	updateDoctorAvailableQuery = `
UPDATE doctors SET is_available=$2
WHERE id=$1
RETURNING id, name, specialization, is_available, created_at`
	insertDoctorQuery = `
INSERT INTO doctors(name, specialization, is_available)
VALUES ($1, $2, $3)
RETURNING id, created_at`
)

// likeEscaper neutralizes LIKE metacharacters so a filter query matches
// them literally instead of acting as wildcards.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListAvailableDoctors returns available doctors, optionally filtered by a
// case-insensitive substring match on name or specialization.
func (p *Postgres) ListAvailableDoctors(ctx context.Context, query string) ([]entities.Doctor, error) {
	var rows pgx.Rows
	var err error
	if query == "" {
		rows, err = p.db.Query(ctx, listAvailableDoctorsQuery)
	} else {
		rows, err = p.db.Query(ctx, searchAvailableDoctorsQuery, likeEscaper.Replace(query))
	}
	if err != nil {
		return nil, fmt.Errorf("list available doctors: %w", err)
	}
	defer rows.Close()

	doctors := make([]entities.Doctor, 0)
	for rows.Next() {
		var d entities.Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.Specialization, &d.IsAvailable, &d.CreatedAt); err != nil {
			p.log.Errorw("failed to scan doctor", "error", err)
			return nil, fmt.Errorf("scan doctor: %w", err)
		}
		doctors = append(doctors, d)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate doctors", "error", err)
		return nil, fmt.Errorf("iterate doctors: %w", err)
	}

	return doctors, nil
}

// GetDoctor fetches a doctor by id.
func (p *Postgres) GetDoctor(ctx context.Context, doctorID int64) (*entities.Doctor, error) {
	var d entities.Doctor
	err := p.db.QueryRow(ctx, selectDoctorQuery, doctorID).
		Scan(&d.ID, &d.Name, &d.Specialization, &d.IsAvailable, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrDoctorNotFound
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}
	return &d, nil
}

// SetDoctorAvailability updates the availability flag and returns the updated doctor.
func (p *Postgres) SetDoctorAvailability(ctx context.Context, doctorID int64, available bool) (*entities.Doctor, error) {
	var d entities.Doctor
	err := p.db.QueryRow(ctx, updateDoctorAvailableQuery, doctorID, available).
		Scan(&d.ID, &d.Name, &d.Specialization, &d.IsAvailable, &d.CreatedAt)
	if err != nil {
		p.log.Errorw("failed to set doctor availability", "error", err, "doctor_id", doctorID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrDoctorNotFound
		}
		return nil, fmt.Errorf("set doctor availability: %w", err)
	}

	p.log.Infow("doctor availability updated", "doctor_id", doctorID, "is_available", available)
	return &d, nil
}

// CreateDoctor inserts a doctor roster entry.
func (p *Postgres) CreateDoctor(ctx context.Context, doctor entities.Doctor) (*entities.Doctor, error) {
	err := p.db.QueryRow(ctx, insertDoctorQuery, doctor.Name, doctor.Specialization, doctor.IsAvailable).
		Scan(&doctor.ID, &doctor.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert doctor: %w", err)
	}

	p.log.Infow("doctor created", "doctor_id", doctor.ID, "name", doctor.Name)
	return &doctor, nil
}
