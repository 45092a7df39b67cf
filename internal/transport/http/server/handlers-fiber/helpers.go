package handlers_fiber

import (
	"errors"
	"net/http"

	"clinic-invitations/internal/api"
	"clinic-invitations/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrUnauthenticated):
		status = http.StatusUnauthorized
		code = api.UNAUTHENTICATED
		msg = "missing or invalid credentials"
	case errors.Is(err, entities.ErrForbidden):
		status = http.StatusForbidden
		code = api.FORBIDDEN
		msg = "not allowed to act on this resource"
	case errors.Is(err, entities.ErrNotInvitee):
		status = http.StatusForbidden
		code = api.FORBIDDEN
		msg = "invitation belongs to another doctor"
	case errors.Is(err, entities.ErrDoctorNotFound), errors.Is(err, entities.ErrClinicNotFound), errors.Is(err, entities.ErrInvitationNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "resource not found"
	case errors.Is(err, entities.ErrDoctorUnavailable):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "doctor is not available"
	case errors.Is(err, entities.ErrInvitationExists):
		status = http.StatusConflict
		code = api.INVITATIONEXISTS
		msg = "a pending invitation to this doctor already exists"
	case errors.Is(err, entities.ErrInvitationClosed):
		status = http.StatusConflict
		code = api.INVITATIONCLOSED
		msg = "invitation has already been responded to"
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusUnprocessableEntity
		code = api.VALIDATION
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorBody{Code: code, Message: msg}}
}
