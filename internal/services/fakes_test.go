package services

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"civitas/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventRepo is an in-memory EventRepository for tests. Delete removes the
// event's participations from parts, mirroring the store transaction.
type fakeEventRepo struct {
	mu        sync.Mutex
	byID      map[string]*domain.Event
	parts     *fakeParticipationRepo
	createErr error
	getErr    error
	listErr   error
	updateErr error
	deleteErr error
}

func newFakeEventRepo(parts *fakeParticipationRepo) *fakeEventRepo {
	return &fakeEventRepo{
		byID:  make(map[string]*domain.Event),
		parts: parts,
	}
}

func (f *fakeEventRepo) put(e *domain.Event) *domain.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	cp := *e
	f.byID[e.ID] = &cp
	return e
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.put(e)
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.byID[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.Event, 0)
	for _, e := range f.byID {
		if filter.EventType != "" && !strings.EqualFold(e.EventType, filter.EventType) {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(e.Title), strings.ToLower(filter.Search)) {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeEventRepo) ListByCreatorEmail(ctx context.Context, email string) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.Event, 0)
	for _, e := range f.byID {
		if e.CreatorEmail == email {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) ListByIDs(ctx context.Context, ids []string) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.Event, 0, len(ids))
	for _, id := range ids {
		if e, ok := f.byID[id]; ok {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, e *domain.Event) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cur, ok := f.byID[e.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if cur.Title == e.Title && cur.Description == e.Description && cur.EventType == e.EventType &&
		cur.Thumbnail == e.Thumbnail && cur.Location == e.Location && cur.Date.Equal(e.Date) {
		return domain.ErrNoOp
	}
	cp := *e
	cp.CreatorEmail = cur.CreatorEmail
	cp.CreatedAt = cur.CreatedAt
	f.byID[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if f.parts != nil {
		f.parts.deleteByEventID(id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeParticipationRepo is an in-memory ParticipationRepository. Create enforces
// the (user_email, event_id) uniqueness the real store carries.
type fakeParticipationRepo struct {
	mu        sync.Mutex
	rows      []*domain.Participation
	createErr error
	getErr    error
	listErr   error
	// skipLookup makes GetByUserAndEvent always miss, as when two joins race past the check.
	skipLookup bool
}

func newFakeParticipationRepo() *fakeParticipationRepo {
	return &fakeParticipationRepo{}
}

func (f *fakeParticipationRepo) Create(ctx context.Context, p *domain.Participation) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.UserEmail == p.UserEmail && r.EventID == p.EventID {
			return domain.ErrAlreadyJoined
		}
	}
	p.ID = uuid.NewString()
	cp := *p
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeParticipationRepo) GetByUserAndEvent(ctx context.Context, userEmail, eventID string) (*domain.Participation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.skipLookup {
		return nil, domain.ErrNotFound
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.UserEmail == userEmail && r.EventID == eventID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeParticipationRepo) ListByUserEmail(ctx context.Context, userEmail string) ([]*domain.Participation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.Participation, 0)
	for _, r := range f.rows {
		if r.UserEmail == userEmail {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

// add inserts a row directly, bypassing uniqueness. Used to model orphans.
func (f *fakeParticipationRepo) add(p *domain.Participation) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	f.rows = append(f.rows, p)
}

func (f *fakeParticipationRepo) count(userEmail, eventID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.rows {
		if (userEmail == "" || r.UserEmail == userEmail) && r.EventID == eventID {
			n++
		}
	}
	return n
}

func (f *fakeParticipationRepo) deleteByEventID(eventID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.rows[:0]
	for _, r := range f.rows {
		if r.EventID != eventID {
			kept = append(kept, r)
		}
	}
	f.rows = kept
}

// fakeEmailService records join confirmations.
type fakeEmailService struct {
	mu   sync.Mutex
	sent []*domain.JoinConfirmationEmailData
	err  error
}

func (f *fakeEmailService) SendJoinConfirmation(ctx context.Context, data *domain.JoinConfirmationEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, data)
	return f.err
}
