package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"civitas/internal/domain"
)

type participationService struct {
	eventRepo         domain.EventRepository
	participationRepo domain.ParticipationRepository
	emailService      domain.EmailService
	logger            *slog.Logger
	contextTimeout    time.Duration
	now               func() time.Time
}

// NewParticipationService creates the Participation Ledger. emailService may be nil,
// in which case no join confirmation is sent.
func NewParticipationService(
	eventRepo domain.EventRepository,
	participationRepo domain.ParticipationRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.ParticipationService {
	return &participationService{
		eventRepo:         eventRepo,
		participationRepo: participationRepo,
		emailService:      emailService,
		logger:            logger,
		contextTimeout:    timeout,
		now:               time.Now,
	}
}

func (s *participationService) Join(ctx context.Context, caller domain.Identity, userEmail, eventID string) (*domain.Participation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !domain.SameEmail(userEmail, caller.Email) {
		return nil, domain.ErrForbidden
	}
	eventID, err := parseID("event", eventID)
	if err != nil {
		return nil, err
	}
	email := domain.NormalizeEmail(caller.Email)

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	if _, err := s.participationRepo.GetByUserAndEvent(ctx, email, eventID); err == nil {
		return nil, domain.ErrAlreadyJoined
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get participation: %w", err)
	}

	// The store's unique (user_email, event_id) index settles concurrent joins
	// that both got past the lookup above.
	p := domain.NewParticipation(email, eventID, s.now())
	if err := s.participationRepo.Create(ctx, p); err != nil {
		if errors.Is(err, domain.ErrAlreadyJoined) {
			return nil, domain.ErrAlreadyJoined
		}
		return nil, fmt.Errorf("create participation: %w", err)
	}

	s.sendJoinConfirmation(ctx, event, p)
	return p, nil
}

func (s *participationService) sendJoinConfirmation(ctx context.Context, event *domain.Event, p *domain.Participation) {
	if s.emailService == nil {
		return
	}
	err := s.emailService.SendJoinConfirmation(ctx, &domain.JoinConfirmationEmailData{
		Email:      p.UserEmail,
		EventTitle: event.Title,
		EventType:  event.EventType,
		Location:   event.Location,
		Date:       event.Date,
		JoinedAt:   p.JoinedAt,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "join confirmation email failed", "event_id", event.ID, "participation_id", p.ID, "err", err)
	}
}

func (s *participationService) ListJoinedByUser(ctx context.Context, caller domain.Identity, email string) ([]*domain.JoinedEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	if !domain.SameEmail(email, caller.Email) {
		return nil, domain.ErrForbidden
	}

	parts, err := s.participationRepo.ListByUserEmail(ctx, domain.NormalizeEmail(caller.Email))
	if err != nil {
		return nil, fmt.Errorf("list participations: %w", err)
	}
	if len(parts) == 0 {
		return []*domain.JoinedEvent{}, nil
	}

	ids := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		if _, ok := seen[p.EventID]; ok {
			continue
		}
		seen[p.EventID] = struct{}{}
		ids = append(ids, p.EventID)
	}
	events, err := s.eventRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list joined events: %w", err)
	}
	eventsByID := make(map[string]*domain.Event, len(events))
	for _, ev := range events {
		eventsByID[ev.ID] = ev
	}

	result := make([]*domain.JoinedEvent, 0, len(parts))
	for _, p := range parts {
		ev, ok := eventsByID[p.EventID]
		if !ok {
			// Event deleted but participation remains; drop it.
			continue
		}
		result = append(result, &domain.JoinedEvent{Event: *ev, JoinedAt: p.JoinedAt})
	}
	return result, nil
}
