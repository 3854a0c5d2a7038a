package postgres

import (
	"context"
	"errors"
	"time"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type sessionRepo struct {
	db *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) domain.SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, session *domain.Session) error {
	query := `INSERT INTO sessions (user_id, token, expires_at, client_address, created_at)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING id`
	return r.db.QueryRow(ctx, query,
		session.UserID, session.Token, session.ExpiresAt,
		session.ClientAddress, session.CreatedAt,
	).Scan(&session.ID)
}

// FindLive matches a session only while expires_at is strictly in the
// future. Expired rows are never matched; there is no background reaper.
func (r *sessionRepo) FindLive(ctx context.Context, token string, now time.Time) (*domain.Session, error) {
	query := `SELECT id, user_id, token, expires_at, client_address, created_at
              FROM sessions
              WHERE token = $1 AND expires_at > $2`
	var s domain.Session
	err := r.db.QueryRow(ctx, query, token, now).Scan(
		&s.ID, &s.UserID, &s.Token, &s.ExpiresAt, &s.ClientAddress, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepo) ExtendExpiry(ctx context.Context, token string, now, newExpiry time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE sessions SET expires_at = $3 WHERE token = $1 AND expires_at > $2`,
		token, now, newExpiry,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *sessionRepo) Delete(ctx context.Context, token string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
