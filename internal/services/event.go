package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"civitas/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	validate       *validator.Validate
	contextTimeout time.Duration
	now            func() time.Time
}

// NewEventService returns the Event Directory backed by eventRepo. Every call
// runs under the given timeout.
func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		validate:       newValidator(),
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *eventService) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	filter.EventType = strings.TrimSpace(filter.EventType)
	filter.Search = strings.TrimSpace(filter.Search)
	events, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	eventID, err := parseID("event", id)
	if err != nil {
		return nil, err
	}
	return s.getEvent(ctx, eventID)
}

func (s *eventService) getEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListCreatedBy(ctx context.Context, caller domain.Identity) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	email := domain.NormalizeEmail(caller.Email)
	if email == "" {
		return nil, domain.ErrUnauthenticated
	}
	events, err := s.eventRepo.ListByCreatorEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list events by creator: %w", err)
	}
	return events, nil
}

func (s *eventService) Create(ctx context.Context, caller domain.Identity, fields domain.EventFields, creatorEmail string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	// Nobody creates events on someone else's behalf, whatever the payload.
	if !domain.SameEmail(creatorEmail, caller.Email) {
		return nil, domain.ErrForbidden
	}
	fields = normalizeFields(fields)
	if err := validateStruct(s.validate, fields); err != nil {
		return nil, err
	}

	event := domain.NewEvent(fields, domain.NormalizeEmail(caller.Email), s.now())
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) AuthorizeOwner(ctx context.Context, caller domain.Identity, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.authorizeOwner(ctx, caller, id)
}

// authorizeOwner loads the event and checks that caller created it.
func (s *eventService) authorizeOwner(ctx context.Context, caller domain.Identity, id string) (*domain.Event, error) {
	eventID, err := parseID("event", id)
	if err != nil {
		return nil, err
	}
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsOwnedBy(caller.Email) {
		return nil, domain.ErrForbidden
	}
	return event, nil
}

func (s *eventService) Update(ctx context.Context, caller domain.Identity, id string, fields domain.EventFields) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.authorizeOwner(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	fields = normalizeFields(fields)
	if err := validateStruct(s.validate, fields); err != nil {
		return nil, err
	}

	updated := *event
	updated.Apply(fields)
	now := s.now()
	updated.UpdatedAt = &now
	if err := s.eventRepo.Update(ctx, &updated); err != nil {
		switch {
		case errors.Is(err, domain.ErrNoOp):
			return nil, domain.ErrNoOp
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return &updated, nil
}

func (s *eventService) Delete(ctx context.Context, caller domain.Identity, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.authorizeOwner(ctx, caller, id)
	if err != nil {
		return err
	}
	if err := s.eventRepo.Delete(ctx, event.ID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNoOp):
			return domain.ErrNoOp
		case errors.Is(err, domain.ErrNotFound):
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
