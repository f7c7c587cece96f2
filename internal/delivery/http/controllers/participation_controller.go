package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"civitas/internal/delivery/http/helpers"
	"civitas/internal/delivery/http/middleware"
	"civitas/internal/domain"
)

// JoinEventRequest is the request body for POST /participations.
type JoinEventRequest struct {
	UserEmail string `json:"userEmail" example:"bob@example.com"`
	EventID   string `json:"eventId" example:"6f1c1f4e-8a5b-4b8e-9a53-5b1f2d0c9a11"`
}

// Validate implements Validator. userEmail is matched against the caller before decoding.
func (j JoinEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(j.EventID) == "" {
		errs = append(errs, "eventId is required")
	}
	return errs
}

// JoinedEventListSuccessResponse is the success envelope for GET /participations.
type JoinedEventListSuccessResponse struct {
	Data  []*domain.JoinedEvent `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

type ParticipationController struct {
	Logger  *slog.Logger
	Service domain.ParticipationService
}

func NewParticipationController(logger *slog.Logger, svc domain.ParticipationService) *ParticipationController {
	return &ParticipationController{
		Logger:  logger,
		Service: svc,
	}
}

// JoinEvent godoc
// @Summary Join an event
// @Description Records that the caller joined the event. userEmail must equal the caller's email. A user joins an event at most once.
// @Tags participations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body JoinEventRequest true "Join request"
// @Success 201 {object} controllers.MessageSuccessResponse "data.id is the participation id"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already joined)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participations [post]
func (c *ParticipationController) JoinEvent(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if !domain.SameEmail(helpers.PeekString(r, "userEmail"), caller.Email) {
		writeServiceError(w, r, c.Logger, domain.ErrForbidden, "event")
		return
	}
	var req JoinEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	p, err := c.Service.Join(r.Context(), caller, req.UserEmail, req.EventID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "event")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, MessageResponse{ID: p.ID, Message: "joined event"})
}

// ListJoinedEvents godoc
// @Summary List events the caller joined
// @Description Returns each joined event with joinedAt. email must equal the caller's email.
// @Tags participations
// @Produce json
// @Security BearerAuth
// @Param email query string true "Caller email"
// @Success 200 {object} controllers.JoinedEventListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participations [get]
func (c *ParticipationController) ListJoinedEvents(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	joined, err := c.Service.ListJoinedByUser(r.Context(), caller, r.URL.Query().Get("email"))
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "participation")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, joined)
}
