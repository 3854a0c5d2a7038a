package domain

import (
	"context"
	"time"
)

// Session is one issued bearer token persisted server-side. Liveness is
// decided here, not by the token's embedded exp claim: a session is valid
// iff ExpiresAt is strictly in the future at check time.
type Session struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Token         string    `json:"-"`
	ExpiresAt     time.Time `json:"expires_at"`
	ClientAddress string    `json:"client_address"`
	CreatedAt     time.Time `json:"created_at"`
}

type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	// FindLive returns the session matching token with expires_at > now,
	// or nil when no such row exists.
	FindLive(ctx context.Context, token string, now time.Time) (*Session, error)
	// ExtendExpiry moves expires_at forward for a live session. Reports
	// whether a row was updated.
	ExtendExpiry(ctx context.Context, token string, now, newExpiry time.Time) (bool, error)
	// Delete removes the session regardless of liveness. Reports whether a
	// row was deleted.
	Delete(ctx context.Context, token string) (bool, error)
}

type SessionUsecase interface {
	Create(ctx context.Context, userID int64, token, clientAddress string) (*Session, error)
	FindLive(ctx context.Context, token string) (*Session, error)
	Renew(ctx context.Context, token string) (bool, error)
	// Revoke deletes the session. Storage errors are swallowed and reported
	// as "not revoked"; logout never surfaces a 500.
	Revoke(ctx context.Context, token string) bool
}
