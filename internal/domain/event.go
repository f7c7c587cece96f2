package domain

import (
	"context"
	"time"
)

// Event is a community activity owned by the user who created it.
// swagger:model Event
type Event struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	EventType    string     `json:"eventType"`
	Thumbnail    string     `json:"thumbnail"`
	Location     string     `json:"location"`
	Date         time.Time  `json:"date"`
	CreatorEmail string     `json:"creatorEmail"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

// EventFields holds the caller-editable fields of an event.
type EventFields struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"max=5000"`
	EventType   string    `json:"eventType" validate:"required,max=100"`
	Thumbnail   string    `json:"thumbnail" validate:"omitempty,url,max=2048"`
	Location    string    `json:"location" validate:"max=300"`
	Date        time.Time `json:"date" validate:"required"`
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(fields EventFields, creatorEmail string, createdAt time.Time) *Event {
	e := &Event{
		CreatorEmail: creatorEmail,
		CreatedAt:    createdAt,
	}
	e.Apply(fields)
	return e
}

// Apply copies the editable fields onto the event. CreatorEmail is never touched.
func (e *Event) Apply(fields EventFields) {
	e.Title = fields.Title
	e.Description = fields.Description
	e.EventType = fields.EventType
	e.Thumbnail = fields.Thumbnail
	e.Location = fields.Location
	e.Date = fields.Date
}

// IsOwnedBy reports whether email identifies the event's creator.
func (e *Event) IsOwnedBy(email string) bool {
	return SameEmail(e.CreatorEmail, email)
}

// EventFilter narrows List. Empty fields do not filter.
type EventFilter struct {
	// EventType matches exactly, ignoring case.
	EventType string
	// Search matches a substring of the title, ignoring case.
	Search string
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context, filter EventFilter) ([]*Event, error)
	ListByCreatorEmail(ctx context.Context, email string) ([]*Event, error)
	ListByIDs(ctx context.Context, ids []string) ([]*Event, error)
	// Update replaces the editable fields and updated_at. Returns ErrNoOp when
	// the stored row already holds the same values.
	Update(ctx context.Context, event *Event) error
	// Delete removes the event's participations and then the event in one
	// transaction. Returns ErrNoOp when no event row was removed.
	Delete(ctx context.Context, id string) error
}

// EventService is the Event Directory: listing, lookup and owner-gated mutation.
type EventService interface {
	List(ctx context.Context, filter EventFilter) ([]*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	ListCreatedBy(ctx context.Context, caller Identity) ([]*Event, error)
	Create(ctx context.Context, caller Identity, fields EventFields, creatorEmail string) (*Event, error)
	// AuthorizeOwner returns the event when caller created it. It fails with
	// ErrNotFound or ErrForbidden the same way Update and Delete do.
	AuthorizeOwner(ctx context.Context, caller Identity, id string) (*Event, error)
	Update(ctx context.Context, caller Identity, id string, fields EventFields) (*Event, error)
	Delete(ctx context.Context, caller Identity, id string) error
}
