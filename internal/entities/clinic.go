// Package entities contains core business entities.
package entities

import "time"

// Clinic is the organizational actor that sends invitations.
type Clinic struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
