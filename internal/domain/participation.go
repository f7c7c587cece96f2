package domain

import (
	"context"
	"time"
)

// Participation records a user joining an event.
// swagger:model Participation
type Participation struct {
	ID        string    `json:"id"`
	UserEmail string    `json:"userEmail"`
	EventID   string    `json:"eventId"`
	JoinedAt  time.Time `json:"joinedAt"`
}

// NewParticipation creates a new Participation. ID is set by the repository on create.
func NewParticipation(userEmail, eventID string, joinedAt time.Time) *Participation {
	return &Participation{
		UserEmail: userEmail,
		EventID:   eventID,
		JoinedAt:  joinedAt,
	}
}

// JoinedEvent is an event augmented with the time the caller joined it.
// swagger:model JoinedEvent
type JoinedEvent struct {
	Event
	JoinedAt time.Time `json:"joinedAt"`
}

// ParticipationRepository defines storage operations for participations.
type ParticipationRepository interface {
	// Create inserts the participation. Returns ErrAlreadyJoined when the
	// (user_email, event_id) pair already exists.
	Create(ctx context.Context, p *Participation) error
	GetByUserAndEvent(ctx context.Context, userEmail, eventID string) (*Participation, error)
	ListByUserEmail(ctx context.Context, userEmail string) ([]*Participation, error)
}

// ParticipationService is the Participation Ledger.
type ParticipationService interface {
	Join(ctx context.Context, caller Identity, userEmail, eventID string) (*Participation, error)
	ListJoinedByUser(ctx context.Context, caller Identity, email string) ([]*JoinedEvent, error)
}
