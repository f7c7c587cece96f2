package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"civitas/internal/delivery/http/helpers"
	"civitas/internal/delivery/http/middleware"
	"civitas/internal/domain"
)

// EventRequest carries the editable event fields shared by create and update.
type EventRequest struct {
	Title       string    `json:"title" example:"Park Cleanup"`
	Description string    `json:"description" example:"Bring gloves"`
	EventType   string    `json:"eventType" example:"Volunteering"`
	Thumbnail   string    `json:"thumbnail" example:"https://img.example.com/park.png"`
	Location    string    `json:"location" example:"Central Park"`
	Date        time.Time `json:"date" example:"2025-06-01T09:00:00Z"`
}

func (e EventRequest) fields() domain.EventFields {
	return domain.EventFields{
		Title:       e.Title,
		Description: e.Description,
		EventType:   e.EventType,
		Thumbnail:   e.Thumbnail,
		Location:    e.Location,
		Date:        e.Date,
	}
}

// CreateEventRequest is the request body for POST /events. creatorEmail must be the
// caller's email; field rules are checked by the service.
type CreateEventRequest struct {
	EventRequest
	CreatorEmail string `json:"creatorEmail" example:"alice@example.com"`
}

// UpdateEventRequest is the request body for PATCH /events/{id}. It replaces every
// editable field; creatorEmail and other fields are rejected.
type UpdateEventRequest struct {
	EventRequest
}

// EventSuccessResponse is the success envelope for a single event.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventListSuccessResponse is the success envelope for event lists.
type EventListSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List events
// @Description Lists all events. eventType matches exactly ignoring case; search matches a substring of the title ignoring case. No authentication required.
// @Tags events
// @Produce json
// @Param eventType query string false "Event type"
// @Param search query string false "Title search term"
// @Success 200 {object} controllers.EventListSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	events, err := c.Service.List(r.Context(), domain.EventFilter{
		EventType: q.Get("eventType"),
		Search:    q.Get("search"),
	})
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "event")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID (UUID)"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (token rejected)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.IdentityFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	event, err := c.Service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "event")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// ListCreatedEvents godoc
// @Summary List events created by the caller
// @Description Always scoped to the authenticated caller's email.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.EventListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (token rejected)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/created [get]
func (c *EventController) ListCreatedEvents(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	events, err := c.Service.ListCreatedBy(r.Context(), caller)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "event")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// CreateEvent godoc
// @Summary Create an event
// @Description creatorEmail must equal the caller's email. id and createdAt are server-generated.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.MessageSuccessResponse "data.id is the new event id"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	// A claim for anyone else is refused whatever the rest of the body holds.
	if !domain.SameEmail(helpers.PeekString(r, "creatorEmail"), caller.Email) {
		writeServiceError(w, r, c.Logger, domain.ErrForbidden, "event")
		return
	}
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Create(r.Context(), caller, req.fields(), req.CreatorEmail)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "event")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, MessageResponse{ID: event.ID, Message: "event created"})
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Replaces the editable fields. Only the creator may update. Answers 400 no_changes when nothing changed.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID (UUID)"
// @Param body body UpdateEventRequest true "Event fields"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or no_changes"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not creator)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id} [patch]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	id := r.PathValue("id")
	// Ownership is settled before the body is read.
	if _, err := c.Service.AuthorizeOwner(r.Context(), caller, id); err != nil {
		writeServiceError(w, r, c.Logger, err, "event")
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Update(r.Context(), caller, id, req.fields())
	if err != nil {
		writeServiceError(w, r, c.Logger, err, "event")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event and every participation in it. Only the creator may delete.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID (UUID)"
// @Success 200 {object} controllers.MessageSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or no_changes"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not creator)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	id := r.PathValue("id")
	if err := c.Service.Delete(r.Context(), caller, id); err != nil {
		writeServiceError(w, r, c.Logger, err, "event")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{ID: id, Message: "event deleted"})
}
