package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"civitas/internal/delivery/http/helpers"
	"civitas/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

var testCaller = domain.Identity{UID: "uid-alice", Email: "alice@x.com"}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	listResult    []*domain.Event
	listErr       error
	lastFilter    domain.EventFilter
	getResult     *domain.Event
	getErr        error
	lastGetID     string
	createdResult []*domain.Event
	createdErr    error
	createResult  *domain.Event
	createErr     error
	authorizeErr  error
	updateResult  *domain.Event
	updateErr     error
	updateCalled  bool
	deleteErr     error

	lastCaller       domain.Identity
	lastFields       domain.EventFields
	lastCreatorEmail string
	lastID           string
}

func (f *fakeEventService) List(_ context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	f.lastFilter = filter
	return f.listResult, f.listErr
}

func (f *fakeEventService) GetByID(_ context.Context, id string) (*domain.Event, error) {
	f.lastGetID = id
	return f.getResult, f.getErr
}

func (f *fakeEventService) ListCreatedBy(_ context.Context, caller domain.Identity) ([]*domain.Event, error) {
	f.lastCaller = caller
	return f.createdResult, f.createdErr
}

func (f *fakeEventService) Create(_ context.Context, caller domain.Identity, fields domain.EventFields, creatorEmail string) (*domain.Event, error) {
	f.lastCaller, f.lastFields, f.lastCreatorEmail = caller, fields, creatorEmail
	return f.createResult, f.createErr
}

func (f *fakeEventService) AuthorizeOwner(_ context.Context, caller domain.Identity, id string) (*domain.Event, error) {
	f.lastCaller, f.lastID = caller, id
	if f.authorizeErr != nil {
		return nil, f.authorizeErr
	}
	return &domain.Event{ID: id, CreatorEmail: caller.Email}, nil
}

func (f *fakeEventService) Update(_ context.Context, caller domain.Identity, id string, fields domain.EventFields) (*domain.Event, error) {
	f.updateCalled = true
	f.lastCaller, f.lastID, f.lastFields = caller, id, fields
	return f.updateResult, f.updateErr
}

func (f *fakeEventService) Delete(_ context.Context, caller domain.Identity, id string) error {
	f.lastCaller, f.lastID = caller, id
	return f.deleteErr
}

// fakeParticipationService implements domain.ParticipationService for handler tests.
type fakeParticipationService struct {
	joinResult    *domain.Participation
	joinErr       error
	listResult    []*domain.JoinedEvent
	listErr       error
	lastCaller    domain.Identity
	lastUserEmail string
	lastEventID   string
	lastEmail     string
}

func (f *fakeParticipationService) Join(_ context.Context, caller domain.Identity, userEmail, eventID string) (*domain.Participation, error) {
	f.lastCaller, f.lastUserEmail, f.lastEventID = caller, userEmail, eventID
	return f.joinResult, f.joinErr
}

func (f *fakeParticipationService) ListJoinedByUser(_ context.Context, caller domain.Identity, email string) ([]*domain.JoinedEvent, error) {
	f.lastCaller, f.lastEmail = caller, email
	return f.listResult, f.listErr
}

// decodeEnvelope decodes the response envelope and, when data is non-nil, its data field into data.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, data any) helpers.APIResponse {
	t.Helper()
	var raw struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&raw), "response must be valid JSON envelope")
	if data != nil && raw.Error == nil {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return helpers.APIResponse{Data: data, Error: raw.Error}
}
