package postgres

import (
	"context"
	"fmt"

	"clinic-invitations/internal/entities"
)

const insertClinicQuery = `
INSERT INTO clinics(name)
VALUES ($1)
RETURNING id, created_at`

// CreateClinic inserts a clinic roster entry.
func (p *Postgres) CreateClinic(ctx context.Context, clinic entities.Clinic) (*entities.Clinic, error) {
	err := p.db.QueryRow(ctx, insertClinicQuery, clinic.Name).
		Scan(&clinic.ID, &clinic.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert clinic: %w", err)
	}

	p.log.Infow("clinic created", "clinic_id", clinic.ID, "name", clinic.Name)
	return &clinic, nil
}
