package handlers_fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-invitations/internal/api"
	"clinic-invitations/internal/auth"
	"clinic-invitations/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errDatabaseDown = errors.New("connection refused")

type ucMock struct{ mock.Mock }

func (m *ucMock) ListAvailableDoctors(ctx context.Context, query string) ([]entities.Doctor, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Doctor), args.Error(1)
}

func (m *ucMock) SetDoctorAvailability(ctx context.Context, actor entities.Actor, available bool) (*entities.Doctor, error) {
	args := m.Called(ctx, actor, available)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Doctor), args.Error(1)
}

func (m *ucMock) SendInvitation(ctx context.Context, actor entities.Actor, inv entities.Invitation) (*entities.Invitation, error) {
	args := m.Called(ctx, actor, inv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Invitation), args.Error(1)
}

func (m *ucMock) RespondInvitation(ctx context.Context, actor entities.Actor, invitationID int64, decision entities.InvitationStatus) (*entities.Invitation, error) {
	args := m.Called(ctx, actor, invitationID, decision)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Invitation), args.Error(1)
}

func (m *ucMock) ClinicInvitations(ctx context.Context, actor entities.Actor) ([]entities.Invitation, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Invitation), args.Error(1)
}

func (m *ucMock) DoctorInvitations(ctx context.Context, actor entities.Actor) ([]entities.Invitation, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Invitation), args.Error(1)
}

func testVerifier() *auth.TokenVerifier {
	return auth.NewTokenVerifier([]byte("test-secret"), "clinic-invitations", "clinic-invitations-api")
}

func newTestApp(t *testing.T, uc *ucMock) *fiber.App {
	t.Helper()

	app := fiber.New()
	h := NewHandler(zap.NewNop().Sugar(), uc)
	h.Register(app, testVerifier())
	return app
}

func bearerToken(t *testing.T, actor entities.Actor) string {
	t.Helper()

	token, err := testVerifier().Issue(actor, time.Minute)
	require.NoError(t, err)
	return "Bearer " + token
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestGetAvailableDoctorsNoAuth(t *testing.T) {
	uc := &ucMock{}
	uc.On("ListAvailableDoctors", mock.Anything, "").Return([]entities.Doctor{}, nil)
	app := newTestApp(t, uc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/available-doctors", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.DoctorList
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.Doctors)
	require.Empty(t, body.Doctors)
}

func TestGetAvailableDoctorsWithQuery(t *testing.T) {
	uc := &ucMock{}
	uc.On("ListAvailableDoctors", mock.Anything, "cardio").Return([]entities.Doctor{
		{ID: 1, Name: "Dr. Heart", Specialization: "Cardiology", IsAvailable: true},
	}, nil)
	app := newTestApp(t, uc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/available-doctors?query=cardio", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.DoctorList
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Doctors, 1)
	require.Equal(t, "Cardiology", body.Doctors[0].Specialization)
	uc.AssertExpectations(t)
}

func TestSendInvitationUnauthenticated(t *testing.T) {
	uc := &ucMock{}
	app := newTestApp(t, uc)

	req := jsonRequest(http.MethodPost, "/api/clinics/invitations/send", api.SendInvitationRequest{
		DoctorID: 1, ClinicID: 1, Message: "Test invitation",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	uc.AssertNotCalled(t, "SendInvitation", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendInvitationDoctorTokenForbidden(t *testing.T) {
	uc := &ucMock{}
	app := newTestApp(t, uc)

	req := jsonRequest(http.MethodPost, "/api/clinics/invitations/send", api.SendInvitationRequest{DoctorID: 1})
	req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, entities.Actor{ID: 1, Role: entities.RoleDoctor}))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	uc.AssertNotCalled(t, "SendInvitation", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendInvitationCreated(t *testing.T) {
	uc := &ucMock{}
	created := &entities.Invitation{
		ID: 100, ClinicID: 1, DoctorID: 2, Message: "Join us",
		Status: entities.StatusPending, CreatedAt: time.Now().UTC(),
	}
	uc.On("SendInvitation",
		mock.Anything,
		entities.Actor{ID: 1, Role: entities.RoleClinic},
		entities.Invitation{ClinicID: 1, DoctorID: 2, Message: "Join us"},
	).Return(created, nil)
	app := newTestApp(t, uc)

	req := jsonRequest(http.MethodPost, "/api/clinics/invitations/send", api.SendInvitationRequest{
		DoctorID: 2, ClinicID: 1, Message: "Join us",
	})
	req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, entities.Actor{ID: 1, Role: entities.RoleClinic}))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body api.InvitationEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, int64(100), body.Invitation.ID)
	require.Equal(t, "pending", body.Invitation.Status)
	require.Nil(t, body.Invitation.RespondedAt)
	uc.AssertExpectations(t)
}

func TestSendInvitationUnavailableDoctor(t *testing.T) {
	uc := &ucMock{}
	uc.On("SendInvitation", mock.Anything, mock.Anything, mock.Anything).Return(nil, entities.ErrDoctorUnavailable)
	app := newTestApp(t, uc)

	req := jsonRequest(http.MethodPost, "/api/clinics/invitations/send", api.SendInvitationRequest{DoctorID: 7, ClinicID: 1})
	req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, entities.Actor{ID: 1, Role: entities.RoleClinic}))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSendInvitationDuplicatePending(t *testing.T) {
	uc := &ucMock{}
	uc.On("SendInvitation", mock.Anything, mock.Anything, mock.Anything).Return(nil, entities.ErrInvitationExists)
	app := newTestApp(t, uc)

	req := jsonRequest(http.MethodPost, "/api/clinics/invitations/send", api.SendInvitationRequest{DoctorID: 2, ClinicID: 1})
	req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, entities.Actor{ID: 1, Role: entities.RoleClinic}))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRespondInvitationUnauthenticated(t *testing.T) {
	uc := &ucMock{}
	app := newTestApp(t, uc)

	req := jsonRequest(http.MethodPatch, "/api/doctor/invitations/1", api.RespondInvitationRequest{Status: "accepted"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	uc.AssertNotCalled(t, "RespondInvitation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRespondInvitationAccepted(t *testing.T) {
	uc := &ucMock{}
	respondedAt := time.Now().UTC()
	updated := &entities.Invitation{
		ID: 1, ClinicID: 1, DoctorID: 2,
		Status: entities.StatusAccepted, RespondedAt: &respondedAt,
	}
	uc.On("RespondInvitation",
		mock.Anything,
		entities.Actor{ID: 2, Role: entities.RoleDoctor},
		int64(1),
		entities.StatusAccepted,
	).Return(updated, nil)
	app := newTestApp(t, uc)

	req := jsonRequest(http.MethodPatch, "/api/doctor/invitations/1", api.RespondInvitationRequest{Status: "accepted"})
	req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, entities.Actor{ID: 2, Role: entities.RoleDoctor}))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.InvitationEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "accepted", body.Invitation.Status)
	require.NotNil(t, body.Invitation.RespondedAt)
	uc.AssertExpectations(t)
}

func TestRespondInvitationWrongDoctor(t *testing.T) {
	uc := &ucMock{}
	uc.On("RespondInvitation", mock.Anything, mock.Anything, int64(1), entities.StatusAccepted).Return(nil, entities.ErrNotInvitee)
	app := newTestApp(t, uc)

	req := jsonRequest(http.MethodPatch, "/api/doctor/invitations/1", api.RespondInvitationRequest{Status: "accepted"})
	req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, entities.Actor{ID: 9, Role: entities.RoleDoctor}))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRespondInvitationAlreadyClosed(t *testing.T) {
	uc := &ucMock{}
	uc.On("RespondInvitation", mock.Anything, mock.Anything, int64(1), entities.StatusAccepted).Return(nil, entities.ErrInvitationClosed)
	app := newTestApp(t, uc)

	req := jsonRequest(http.MethodPatch, "/api/doctor/invitations/1", api.RespondInvitationRequest{Status: "accepted"})
	req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, entities.Actor{ID: 2, Role: entities.RoleDoctor}))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRespondInvitationBadID(t *testing.T) {
	uc := &ucMock{}
	app := newTestApp(t, uc)

	req := jsonRequest(http.MethodPatch, "/api/doctor/invitations/abc", api.RespondInvitationRequest{Status: "accepted"})
	req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, entities.Actor{ID: 2, Role: entities.RoleDoctor}))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	uc.AssertNotCalled(t, "RespondInvitation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetDoctorInvitations(t *testing.T) {
	uc := &ucMock{}
	uc.On("DoctorInvitations", mock.Anything, entities.Actor{ID: 2, Role: entities.RoleDoctor}).Return([]entities.Invitation{
		{ID: 5, ClinicID: 1, DoctorID: 2, Status: entities.StatusPending},
	}, nil)
	app := newTestApp(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/api/doctor/invitations", nil)
	req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, entities.Actor{ID: 2, Role: entities.RoleDoctor}))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.InvitationList
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Invitations, 1)
	uc.AssertExpectations(t)
}

func TestGetClinicInvitationsRequiresClinicToken(t *testing.T) {
	uc := &ucMock{}
	app := newTestApp(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/api/clinics/invitations", nil)
	req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, entities.Actor{ID: 2, Role: entities.RoleDoctor}))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestPatchAvailability(t *testing.T) {
	uc := &ucMock{}
	uc.On("SetDoctorAvailability", mock.Anything, entities.Actor{ID: 2, Role: entities.RoleDoctor}, false).Return(&entities.Doctor{
		ID: 2, Name: "Dr. Heart", Specialization: "Cardiology", IsAvailable: false,
	}, nil)
	app := newTestApp(t, uc)

	req := jsonRequest(http.MethodPatch, "/api/doctor/availability", api.SetAvailabilityRequest{Available: false})
	req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, entities.Actor{ID: 2, Role: entities.RoleDoctor}))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.DoctorEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.False(t, body.Doctor.IsAvailable)
	uc.AssertExpectations(t)
}

func TestExpiredTokenUnauthorized(t *testing.T) {
	uc := &ucMock{}
	app := newTestApp(t, uc)

	token, err := testVerifier().Issue(entities.Actor{ID: 1, Role: entities.RoleClinic}, -time.Minute)
	require.NoError(t, err)

	req := jsonRequest(http.MethodPost, "/api/clinics/invitations/send", api.SendInvitationRequest{DoctorID: 1})
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
