package handlers_fiber

import (
	"net/http"

	"clinic-invitations/internal/api"
	"clinic-invitations/internal/mapper"
	"clinic-invitations/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetAvailableDoctors lists invitable doctors, optionally filtered by the
// query parameter. No authentication required.
func (h *Handler) GetAvailableDoctors(c *fiber.Ctx) error {
	doctors, err := h.uc.ListAvailableDoctors(c.Context(), c.Query("query"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIDoctorList(doctors))
}

// PatchAvailability toggles the authenticated doctor's availability flag.
func (h *Handler) PatchAvailability(c *fiber.Ctx) error {
	var body api.SetAvailabilityRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusUnprocessableEntity).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	doctor, err := h.uc.SetDoctorAvailability(c.Context(), middleware.ActorFromCtx(c), body.Available)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.DoctorEnvelope{Doctor: mapper.ToAPIDoctor(*doctor)})
}

// GetDoctorInvitations lists the authenticated doctor's received invitations.
func (h *Handler) GetDoctorInvitations(c *fiber.Ctx) error {
	invs, err := h.uc.DoctorInvitations(c.Context(), middleware.ActorFromCtx(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIInvitationList(invs))
}
