package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"civitas/internal/domain"
)

const eventColumns = `id, title, description, event_type, thumbnail, location, date, creator_email, created_at, updated_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var updatedNull sql.NullTime
	if err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.EventType, &e.Thumbnail, &e.Location,
		&e.Date, &e.CreatorEmail, &e.CreatedAt, &updatedNull,
	); err != nil {
		return nil, err
	}
	if updatedNull.Valid {
		e.UpdatedAt = &updatedNull.Time
	}
	return e, nil
}

func (r *eventRepository) queryEvents(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, description, event_type, thumbnail, location, date, creator_email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Title, e.Description, e.EventType, e.Thumbnail, e.Location, e.Date, e.CreatorEmail, e.CreatedAt,
	).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *eventRepository) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	var where []string
	var args []any
	if filter.EventType != "" {
		args = append(args, filter.EventType)
		where = append(where, fmt.Sprintf("lower(event_type) = lower($%d)", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		where = append(where, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	query := `SELECT ` + eventColumns + ` FROM events`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	return r.queryEvents(ctx, query, args...)
}

func (r *eventRepository) ListByCreatorEmail(ctx context.Context, email string) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE creator_email = $1
		ORDER BY created_at DESC
	`
	return r.queryEvents(ctx, query, email)
}

func (r *eventRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Event, error) {
	if len(ids) == 0 {
		return []*domain.Event{}, nil
	}
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = ANY($1)`
	return r.queryEvents(ctx, query, pq.Array(ids))
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET title = $1, description = $2, event_type = $3, thumbnail = $4, location = $5, date = $6, updated_at = $7
		WHERE id = $8
		  AND (title, description, event_type, thumbnail, location, date)
		      IS DISTINCT FROM ($1, $2, $3, $4, $5, $6)
	`
	result, err := r.DB.ExecContext(ctx, query,
		e.Title, e.Description, e.EventType, e.Thumbnail, e.Location, e.Date, e.UpdatedAt, e.ID,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return zeroRowsErr(ctx, r.DB, e.ID)
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM participations WHERE event_id = $1`, id); err != nil {
		return fmt.Errorf("delete participations: %w", err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return zeroRowsErr(ctx, tx, id)
	}
	return tx.Commit()
}

type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// zeroRowsErr explains a write that touched no event row: ErrNotFound when the
// row is gone (removed concurrently), ErrNoOp when it is still there.
func zeroRowsErr(ctx context.Context, q rowQuerier, id string) error {
	var exists bool
	if err := q.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("check event: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrNoOp
}
