package handlers_fiber

import (
	"net/http"
	"strconv"

	"clinic-invitations/internal/api"
	"clinic-invitations/internal/entities"
	"clinic-invitations/internal/mapper"
	"clinic-invitations/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// PostSendInvitation creates a pending invitation from the authenticated
// clinic to a doctor.
func (h *Handler) PostSendInvitation(c *fiber.Ctx) error {
	var body api.SendInvitationRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusUnprocessableEntity).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	inv, err := h.uc.SendInvitation(c.Context(), middleware.ActorFromCtx(c), mapper.FromAPISendRequest(body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(api.InvitationEnvelope{Invitation: mapper.ToAPIInvitation(*inv)})
}

// PatchRespondInvitation records the authenticated doctor's accept/reject decision.
func (h *Handler) PatchRespondInvitation(c *fiber.Ctx) error {
	invitationID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(http.StatusUnprocessableEntity).JSON(errorResponse(api.VALIDATION, "invalid invitation id"))
	}

	var body api.RespondInvitationRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusUnprocessableEntity).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	inv, err := h.uc.RespondInvitation(c.Context(), middleware.ActorFromCtx(c), invitationID, entities.InvitationStatus(body.Status))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.InvitationEnvelope{Invitation: mapper.ToAPIInvitation(*inv)})
}

// GetClinicInvitations lists the authenticated clinic's sent invitations.
func (h *Handler) GetClinicInvitations(c *fiber.Ctx) error {
	invs, err := h.uc.ClinicInvitations(c.Context(), middleware.ActorFromCtx(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIInvitationList(invs))
}
