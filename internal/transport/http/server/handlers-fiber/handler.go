// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"clinic-invitations/internal/auth"
	"clinic-invitations/internal/entities"
	"clinic-invitations/internal/transport/http/middleware"
	"clinic-invitations/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the invitation API using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}

// Register mounts all API routes on the fiber app.
func (h *Handler) Register(app *fiber.App, verifier *auth.TokenVerifier) {
	clinicAuth := middleware.RequireRole(verifier, entities.RoleClinic)
	doctorAuth := middleware.RequireRole(verifier, entities.RoleDoctor)

	app.Get("/api/available-doctors", h.GetAvailableDoctors)

	app.Post("/api/clinics/invitations/send", clinicAuth, h.PostSendInvitation)
	app.Get("/api/clinics/invitations", clinicAuth, h.GetClinicInvitations)

	app.Patch("/api/doctor/invitations/:id", doctorAuth, h.PatchRespondInvitation)
	app.Get("/api/doctor/invitations", doctorAuth, h.GetDoctorInvitations)
	app.Patch("/api/doctor/availability", doctorAuth, h.PatchAvailability)
}
