// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"clinic-invitations/internal/api"
	"clinic-invitations/internal/entities"
)

// ToAPIDoctor maps entities.Doctor to transport model.
func ToAPIDoctor(d entities.Doctor) api.Doctor {
	return api.Doctor{
		ID:             d.ID,
		Name:           d.Name,
		Specialization: d.Specialization,
		IsAvailable:    d.IsAvailable,
	}
}

// ToAPIDoctorList maps a slice of doctors to the transport listing.
func ToAPIDoctorList(list []entities.Doctor) api.DoctorList {
	doctors := make([]api.Doctor, 0, len(list))
	for _, d := range list {
		doctors = append(doctors, ToAPIDoctor(d))
	}
	return api.DoctorList{Doctors: doctors}
}

// ToAPIInvitation maps entities.Invitation to transport model.
func ToAPIInvitation(inv entities.Invitation) api.Invitation {
	return api.Invitation{
		ID:          inv.ID,
		ClinicID:    inv.ClinicID,
		DoctorID:    inv.DoctorID,
		Message:     inv.Message,
		Status:      string(inv.Status),
		CreatedAt:   inv.CreatedAt,
		RespondedAt: inv.RespondedAt,
	}
}

// ToAPIInvitationList maps a slice of invitations to the transport listing.
func ToAPIInvitationList(list []entities.Invitation) api.InvitationList {
	invs := make([]api.Invitation, 0, len(list))
	for _, inv := range list {
		invs = append(invs, ToAPIInvitation(inv))
	}
	return api.InvitationList{Invitations: invs}
}

// FromAPISendRequest builds a domain invitation from the send request body.
func FromAPISendRequest(req api.SendInvitationRequest) entities.Invitation {
	return entities.Invitation{
		ClinicID: req.ClinicID,
		DoctorID: req.DoctorID,
		Message:  req.Message,
	}
}
