// Package entities contains core business entities.
package entities

import "time"

// Doctor is a domain representation of an invitable practitioner.
type Doctor struct {
	ID             int64
	Name           string
	Specialization string
	IsAvailable    bool
	CreatedAt      time.Time
}
