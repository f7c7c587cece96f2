package postgres

import (
	"context"
	"database/sql"
	"errors"

	"civitas/internal/domain"
)

type participationRepository struct {
	DB *sql.DB
}

func NewParticipationRepository(db *sql.DB) domain.ParticipationRepository {
	return &participationRepository{
		DB: db,
	}
}

func (r *participationRepository) Create(ctx context.Context, p *domain.Participation) error {
	query := `
		INSERT INTO participations (user_email, event_id, joined_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, p.UserEmail, p.EventID, p.JoinedAt).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyJoined
		}
		return err
	}
	return nil
}

func (r *participationRepository) GetByUserAndEvent(ctx context.Context, userEmail, eventID string) (*domain.Participation, error) {
	query := `
		SELECT id, user_email, event_id, joined_at
		FROM participations
		WHERE user_email = $1 AND event_id = $2
	`
	p := &domain.Participation{}
	err := r.DB.QueryRowContext(ctx, query, userEmail, eventID).
		Scan(&p.ID, &p.UserEmail, &p.EventID, &p.JoinedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *participationRepository) ListByUserEmail(ctx context.Context, userEmail string) ([]*domain.Participation, error) {
	query := `
		SELECT id, user_email, event_id, joined_at
		FROM participations
		WHERE user_email = $1
		ORDER BY joined_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parts []*domain.Participation
	for rows.Next() {
		p := &domain.Participation{}
		if err := rows.Scan(&p.ID, &p.UserEmail, &p.EventID, &p.JoinedAt); err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if parts == nil {
		parts = []*domain.Participation{}
	}
	return parts, nil
}
